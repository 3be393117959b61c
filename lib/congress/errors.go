package congress

import (
	"fmt"
	"strings"
)

// MissingParameterError is returned by resources that refuse to resolve a
// request without a minimal identifying field.
type MissingParameterError struct {
	Parameters []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("the parameter %s is required", strings.Join(e.Parameters, " or "))
}

// MalformedIdentifierError is returned when a composite identifier does
// not match the grammar of its resource.
type MalformedIdentifierError struct {
	ID    string
	Parts int
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf(
		"composite identifier %q: want %d non-empty fields separated by %q",
		e.ID, e.Parts, compositeDelimiter,
	)
}

// UnrecognizedDetailError is returned when a detail keyword is not
// declared by the resource's detail map.
type UnrecognizedDetailError struct {
	Resource string
	Detail   string
}

func (e *UnrecognizedDetailError) Error() string {
	return fmt.Sprintf("unrecognized detail %q for resource %q", e.Detail, e.Resource)
}

// UnknownLawTypeError is returned when a law type keyword has no upstream
// type code.
type UnknownLawTypeError struct {
	LawType string
}

func (e *UnknownLawTypeError) Error() string {
	return fmt.Sprintf("unknown law type %q: want %q or %q", e.LawType, "public", "private")
}

// StatusError is a non-2xx response from congress.gov. The original
// status and body pass through untouched.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

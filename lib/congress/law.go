package congress

import "context"

var lawResource = resource{
	endpoint: "/law",
	grammar:  2,
}

// lawTypeCodes maps the caller-facing law type keyword to the code the
// upstream path expects.
var lawTypeCodes = map[string]string{
	"public":  "pub",
	"private": "priv",
}

type LawService struct {
	service
}

// LawRequest addresses laws through CompositeID ("117-123") or the
// discrete Congress and Law fields, with LawType narrowing the law class.
// One of CompositeID or Congress is required.
type LawRequest struct {
	CompositeID string
	Congress    *int
	Law         string
	LawType     string
	Filters
}

func (s LawService) Law(ctx context.Context, req LawRequest) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "Law")
	defer span.End()

	congress := intSegment(req.Congress)
	number := req.Law
	if req.CompositeID != "" {
		fields, err := splitComposite(req.CompositeID, s.res.grammar)
		if err != nil {
			return nil, spanError(span, err)
		}
		congress, number = fields[0], fields[1]
	}
	if congress == "" {
		return nil, spanError(span, &MissingParameterError{
			Parameters: []string{"composite_id", "congress"},
		})
	}

	code := ""
	if req.LawType != "" {
		var ok bool
		code, ok = lawTypeCodes[req.LawType]
		if !ok {
			return nil, spanError(span, &UnknownLawTypeError{LawType: req.LawType})
		}
	}

	body, err := s.get(ctx, s.res.path(congress, code, number), req.Filters.params())
	if err != nil {
		return nil, spanError(span, err)
	}
	return body, nil
}

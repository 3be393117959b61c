package congress

import "strings"

const compositeDelimiter = "-"

// splitComposite splits a composite identifier like "117-hamdt-123" into
// its positional fields. The field count must match the resource grammar
// exactly; mis-splitting would silently address the wrong entity.
func splitComposite(id string, parts int) ([]string, error) {
	fields := strings.Split(id, compositeDelimiter)
	if len(fields) != parts {
		return nil, &MalformedIdentifierError{ID: id, Parts: parts}
	}
	for _, f := range fields {
		if f == "" {
			return nil, &MalformedIdentifierError{ID: id, Parts: parts}
		}
	}
	return fields, nil
}

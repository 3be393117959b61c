package congress

import "context"

var amendmentResource = resource{
	endpoint: "/amendment",
	grammar:  3,
	details: map[string]string{
		"actions":    "actions",
		"amendments": "amendments",
		"cosponsors": "cosponsors",
		"summaries":  "summaries",
		"text":       "text",
		"titles":     "titles",
	},
}

type AmendmentService struct {
	service
}

// AmendmentRequest addresses an amendment either through CompositeID
// ("117-hamdt-123") or through the discrete Congress, AmendmentType and
// AmendmentNumber fields. CompositeID wins when both are given. With no
// identifying fields at all the request resolves to the collection.
type AmendmentRequest struct {
	CompositeID     string
	Congress        *int
	AmendmentType   string
	AmendmentNumber string
	Details         string
	Filters
}

func (s AmendmentService) Amendment(ctx context.Context, req AmendmentRequest) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "Amendment")
	defer span.End()

	congress := intSegment(req.Congress)
	amdtType := req.AmendmentType
	number := req.AmendmentNumber
	if req.CompositeID != "" {
		fields, err := splitComposite(req.CompositeID, s.res.grammar)
		if err != nil {
			return nil, spanError(span, err)
		}
		congress, amdtType, number = fields[0], fields[1], fields[2]
	}

	detail, err := s.res.detail(req.Details)
	if err != nil {
		return nil, spanError(span, err)
	}

	body, err := s.get(ctx, s.res.path(congress, amdtType, number, detail), req.Filters.params())
	if err != nil {
		return nil, spanError(span, err)
	}
	return body, nil
}

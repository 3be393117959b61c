package congress

import "context"

var treatyResource = resource{
	endpoint: "/treaty",
	grammar:  2,
	details: map[string]string{
		"actions":    "actions",
		"committees": "committees",
	},
}

type TreatyService struct {
	service
}

// TreatyRequest addresses a treaty through CompositeID ("117-456") or the
// discrete Congress and Treaty fields. TreatyPart is the letter suffix of
// a partitioned treaty; it is its own path segment, not a detail keyword.
type TreatyRequest struct {
	CompositeID string
	Congress    *int
	Treaty      *int
	TreatyPart  string
	Details     string
	Filters
}

func (s TreatyService) Treaty(ctx context.Context, req TreatyRequest) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "Treaty")
	defer span.End()

	congress := intSegment(req.Congress)
	number := intSegment(req.Treaty)
	if req.CompositeID != "" {
		fields, err := splitComposite(req.CompositeID, s.res.grammar)
		if err != nil {
			return nil, spanError(span, err)
		}
		congress, number = fields[0], fields[1]
	}

	detail, err := s.res.detail(req.Details)
	if err != nil {
		return nil, spanError(span, err)
	}

	body, err := s.get(ctx, s.res.path(congress, number, req.TreatyPart, detail), req.Filters.params())
	if err != nil {
		return nil, spanError(span, err)
	}
	return body, nil
}

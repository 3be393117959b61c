package congress

import "context"

var billResource = resource{
	endpoint: "/bill",
	grammar:  3,
	details: map[string]string{
		"actions":      "actions",
		"amendments":   "amendments",
		"committees":   "committees",
		"cosponsors":   "cosponsors",
		"relatedbills": "relatedbills",
		"subjects":     "subjects",
		"summaries":    "summaries",
		"text":         "text",
		"titles":       "titles",
	},
}

type BillService struct {
	service
}

// BillRequest addresses a bill either through CompositeID ("117-hr-123")
// or through the discrete Congress, BillType and Bill fields. CompositeID
// wins when both are given.
type BillRequest struct {
	CompositeID string
	Congress    *int
	BillType    string
	Bill        string
	Details     string
	Filters
}

func (s BillService) Bill(ctx context.Context, req BillRequest) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "Bill")
	defer span.End()

	congress := intSegment(req.Congress)
	billType := req.BillType
	number := req.Bill
	if req.CompositeID != "" {
		fields, err := splitComposite(req.CompositeID, s.res.grammar)
		if err != nil {
			return nil, spanError(span, err)
		}
		congress, billType, number = fields[0], fields[1], fields[2]
	}

	detail, err := s.res.detail(req.Details)
	if err != nil {
		return nil, spanError(span, err)
	}

	body, err := s.get(ctx, s.res.path(congress, billType, number, detail), req.Filters.params())
	if err != nil {
		return nil, spanError(span, err)
	}
	return body, nil
}

package congress

import "context"

var summaryResource = resource{
	endpoint: "/summaries",
}

type SummaryService struct {
	service
}

// SummaryRequest narrows bill summaries by Congress, then BillType.
type SummaryRequest struct {
	Congress *int
	BillType string
	Filters
}

func (s SummaryService) Summary(ctx context.Context, req SummaryRequest) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "Summary")
	defer span.End()

	path := s.res.path(intSegment(req.Congress), req.BillType)
	body, err := s.get(ctx, path, req.Filters.params())
	if err != nil {
		return nil, spanError(span, err)
	}
	return body, nil
}

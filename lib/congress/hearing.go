package congress

import "context"

var hearingResource = resource{
	endpoint: "/hearing",
}

type HearingService struct {
	service
}

// HearingRequest narrows hearings by Congress, then Chamber, then
// JacketNumber. No composite grammar and no detail map.
type HearingRequest struct {
	Congress     *int
	Chamber      string
	JacketNumber *int
	Filters
}

func (s HearingService) Hearing(ctx context.Context, req HearingRequest) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "Hearing")
	defer span.End()

	path := s.res.path(intSegment(req.Congress), req.Chamber, intSegment(req.JacketNumber))
	body, err := s.get(ctx, path, req.Filters.params())
	if err != nil {
		return nil, spanError(span, err)
	}
	return body, nil
}

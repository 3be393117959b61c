package congress

import "context"

var congressResource = resource{
	endpoint: "/congress",
}

type CongressService struct {
	service
}

// CongressRequest lists congress sessions, or one session when Congress
// is set. CurrentCongress addresses the sitting congress and overrides an
// explicit number.
type CongressRequest struct {
	Congress        *int
	CurrentCongress bool
	Filters
}

func (s CongressService) Congress(ctx context.Context, req CongressRequest) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "Congress")
	defer span.End()

	number := intSegment(req.Congress)
	if req.CurrentCongress {
		number = "current"
	}

	body, err := s.get(ctx, s.res.path(number), req.Filters.params())
	if err != nil {
		return nil, spanError(span, err)
	}
	return body, nil
}

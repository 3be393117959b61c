package congress

import "context"

var memberResource = resource{
	endpoint: "/member",
	details: map[string]string{
		"sponsor":   "sponsored-legislation",
		"cosponsor": "cosponsored-legislation",
	},
}

type MemberService struct {
	service
}

// MemberRequest addresses members in one of two mutually exclusive modes:
// by MemberID (bioguide id, checked first), or by Congress with optional
// State and District narrowing. With neither mode set the request
// resolves to the collection. Details applies to the MemberID mode only.
type MemberRequest struct {
	MemberID string
	Congress *int
	State    string
	District *int
	Details  string
	Filters
}

func (s MemberService) Member(ctx context.Context, req MemberRequest) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "Member")
	defer span.End()

	detail, err := s.res.detail(req.Details)
	if err != nil {
		return nil, spanError(span, err)
	}

	var path string
	switch {
	case req.MemberID != "":
		path = s.res.path(req.MemberID, detail)
	case req.Congress != nil:
		path = s.res.path("congress", intSegment(req.Congress), req.State, intSegment(req.District))
	default:
		path = s.res.path()
	}

	body, err := s.get(ctx, path, req.Filters.params())
	if err != nil {
		return nil, spanError(span, err)
	}
	return body, nil
}

package congress

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("lib/congress")

// resource is the fixed addressing shape of one API resource: its
// collection endpoint, the arity of its composite identifier grammar and
// the detail keywords it accepts. All services run the same resolution
// algorithm over one of these.
type resource struct {
	endpoint string
	grammar  int
	details  map[string]string
}

func (r resource) name() string {
	return strings.TrimPrefix(r.endpoint, "/")
}

// detail translates a caller-facing detail keyword into the literal path
// segment upstream expects.
func (r resource) detail(keyword string) (string, error) {
	if keyword == "" {
		return "", nil
	}
	segment, ok := r.details[keyword]
	if !ok {
		return "", &UnrecognizedDetailError{Resource: r.name(), Detail: keyword}
	}
	return segment, nil
}

// path joins the endpoint with the given segments in order, skipping the
// ones that were never set. Identifying fields consumed here must not
// reappear in the query parameters.
func (r resource) path(segments ...string) string {
	var b strings.Builder
	b.WriteString(r.endpoint)
	for _, s := range segments {
		if s == "" {
			continue
		}
		b.WriteString("/")
		b.WriteString(s)
	}
	return b.String()
}

type service struct {
	http *resty.Client
	res  resource
}

// get performs the resolved request and decodes the JSON body. A non-2xx
// status comes back as *StatusError; executor errors are never swallowed
// or reinterpreted.
func (s service) get(ctx context.Context, path string, query params) (map[string]any, error) {
	values := query.values()
	slog.DebugContext(ctx, "resolved request", "path", path, "query", values)

	res, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(values).
		Get(path)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, &StatusError{
			StatusCode: res.StatusCode(),
			Status:     res.Status(),
			URL:        res.Request.URL,
			Body:       res.Body(),
		}
	}

	var body map[string]any
	if len(res.Body()) > 0 {
		if err := json.Unmarshal(res.Body(), &body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func intSegment(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func spanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

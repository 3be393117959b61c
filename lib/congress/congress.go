// Package congress is a client for the congress.gov v3 API.
//
// Every resource service resolves its caller inputs into exactly one
// request path and query-parameter set before performing a GET. Services
// are stateless value types and safe for concurrent use.
package congress

import (
	"time"

	"congressgov/lib/restyutil"
	"congressgov/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://api.congress.gov/v3"

type ClientOptions struct {
	ApiKey string
	// defaults to DefaultBaseUrl
	BaseUrl string
	// defaults to 30 seconds
	Timeout time.Duration
}

// Client hands out the per-resource services. All of them share one
// transport carrying the API key header.
type Client struct {
	Http *resty.Client
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("X-API-Key", opts.ApiKey)
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "congress/http")

	return &Client{Http: client}
}

// SetDebugOutput dumps every raw HTTP exchange made by this client to the
// given output when debug logging is enabled.
func (c *Client) SetDebugOutput(output restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, output)
}

func (c *Client) Amendments() AmendmentService {
	return AmendmentService{service{http: c.Http, res: amendmentResource}}
}

func (c *Client) Bills() BillService {
	return BillService{service{http: c.Http, res: billResource}}
}

func (c *Client) Congresses() CongressService {
	return CongressService{service{http: c.Http, res: congressResource}}
}

func (c *Client) Hearings() HearingService {
	return HearingService{service{http: c.Http, res: hearingResource}}
}

func (c *Client) Laws() LawService {
	return LawService{service{http: c.Http, res: lawResource}}
}

func (c *Client) Members() MemberService {
	return MemberService{service{http: c.Http, res: memberResource}}
}

func (c *Client) Summaries() SummaryService {
	return SummaryService{service{http: c.Http, res: summaryResource}}
}

func (c *Client) Treaties() TreatyService {
	return TreatyService{service{http: c.Http, res: treatyResource}}
}

// Int returns a pointer to v, for the optional numeric request fields.
func Int(v int) *int { return &v }

// Time returns a pointer to t, for the optional datetime request fields.
func Time(t time.Time) *time.Time { return &t }

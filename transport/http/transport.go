// Package httptransport POSTs gatelog records as JSON to a remote collector.
//
// Importing the package registers it as the default gatelog transport:
//
//	import _ "github.com/trickstertwo/gatelog/transport/http"
package httptransport

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/trickstertwo/gatelog"
	"github.com/trickstertwo/gatelog/internal/json"
)

func init() {
	gatelog.RegisterDefaultTransport(func() gatelog.Transport { return New() })
}

// Transport implements gatelog.Transport over a resty client.
type Transport struct {
	client  *resty.Client
	headers http.Header
	st      stats
}

var _ gatelog.Transport = (*Transport)(nil)

type Option func(*Transport)

// WithClient sends through c instead of a fresh client with no timeout.
func WithClient(c *http.Client) Option {
	return func(t *Transport) {
		if c != nil {
			t.client = resty.NewWithClient(c)
		}
	}
}

// WithHeader adds a static header to every request, e.g. an API key.
func WithHeader(key, value string) Option {
	return func(t *Transport) { t.headers.Add(key, value) }
}

func New(opts ...Option) *Transport {
	t := &Transport{
		client:  resty.New(),
		headers: make(http.Header),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Response is what a successful send reports back.
type Response struct {
	StatusCode int `json:"status"`
	Body       any `json:"body,omitempty"`
}

// StatusError is returned for collector responses with status >= 400.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("collector responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("collector responded %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Send encodes rec and POSTs it to endpoint with Content-Type application/json.
func (t *Transport) Send(ctx context.Context, endpoint string, rec gatelog.Record) (any, error) {
	res, err := t.post(ctx, endpoint, rec)
	if err != nil {
		t.st.failed.Add(1)
		return nil, err
	}
	t.st.sent.Add(1)
	return res, nil
}

func (t *Transport) post(ctx context.Context, endpoint string, rec gatelog.Record) (*Response, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "encode log record")
	}
	req := t.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(t.headers).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := req.Post(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "post log record")
	}
	raw := resp.Body()
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Body: string(bytes.TrimSpace(raw))}
	}
	return &Response{StatusCode: resp.StatusCode(), Body: decodeBody(raw)}, nil
}

// decodeBody returns structured JSON when the body parses, else its text.
func decodeBody(raw []byte) any {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if json.Valid(raw) {
		var v any
		if err := json.Unmarshal(raw, &v); err == nil {
			return v
		}
	}
	return string(raw)
}

// Stats returns a snapshot of send counters.
func (t *Transport) Stats() StatsSnapshot { return t.st.snapshot() }

// ResetStats zeroes the send counters.
func (t *Transport) ResetStats() { t.st.reset() }

// Package rest is the JSON-over-HTTP plumbing shared by the auth and
// expenses service clients.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

// Config is satisfied by the per-service configuration.
type Config interface {
	BaseURL() string
	Timeout() time.Duration
}

// APIError is returned for every non-2xx response. Message holds the
// "message" field of the response body when the service sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

type errorBody struct {
	Message string `json:"message"`
}

type Client struct {
	service string
	baseURL string
	client  *http.Client
}

// New builds a client for the named service. A zero timeout leaves requests
// unbounded apart from the caller's context.
func New(service string, cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL(), "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, errors.Wrapf(err, "invalid %s url", service)
	}
	return &Client{
		service: service,
		baseURL: base,
		client:  &http.Client{Timeout: cfg.Timeout()},
	}, nil
}

// Request describes one call. Body is JSON-encoded when non-nil.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Do performs req and returns the raw response body of a 2xx response.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, c.service+" "+req.Method)
	defer span.Finish()

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	ext.SpanKindRPCClient.Set(span)
	ext.HTTPMethod.Set(span, req.Method)
	ext.HTTPUrl.Set(span, httpReq.URL.String())
	_ = span.Tracer().Inject(span.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(httpReq.Header))

	start := time.Now()
	res, err := c.client.Do(httpReq)
	if err != nil {
		observeRequest(c.service, "error", time.Since(start))
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "sending request")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	observeRequest(c.service, fmt.Sprint(res.StatusCode), time.Since(start))
	ext.HTTPStatusCode.Set(span, uint16(res.StatusCode))
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "reading response")
	}

	logger.Debug("response received",
		zap.String("service", c.service),
		zap.String("path", req.Path),
		zap.Int("status", res.StatusCode),
		zap.Int("bytes", len(body)),
	)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		ext.Error.Set(span, true)
		apiErr := &APIError{StatusCode: res.StatusCode}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Message = eb.Message
		}
		return nil, apiErr
	}
	return body, nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "marshalling request")
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return httpReq, nil
}

// IsEmpty reports whether a response body carries no payload at all.
func IsEmpty(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

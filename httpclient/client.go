// Package httpclient is the single pooled HTTP executor every provider
// request flows through (spec §4.7): request-id correlation, response
// size and content-type guards, status-to-taxonomy mapping, and streaming
// dispatch are handled here so adapters only ever deal in wire bytes.
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/relaymesh/llmgateway/gatewayerrors"
	"github.com/relaymesh/llmgateway/log"
	"github.com/relaymesh/llmgateway/reqcontext"
	"github.com/relaymesh/llmgateway/streams"
)

// DefaultMaxResponseSize bounds a single response body, per spec §4.7.
const DefaultMaxResponseSize int64 = 10 << 20

// Executor is the pooled HTTP client every provider call is issued
// through. Build one per process and share it read-only across routers
// (spec §5's resource-lifetime model).
type Executor struct {
	client          *http.Client
	maxResponseSize int64
	defaultTimeout  time.Duration
	logger          *log.Logger
}

// Option configures an Executor at construction time.
type Option func(*Executor)

// WithMaxResponseSize overrides DefaultMaxResponseSize.
func WithMaxResponseSize(bytes int64) Option {
	return func(e *Executor) { e.maxResponseSize = bytes }
}

// WithDefaultTimeout sets the per-call timeout used when a Request
// doesn't carry its own deadline via ctx.
func WithDefaultTimeout(d time.Duration) Option {
	return func(e *Executor) { e.defaultTimeout = d }
}

// WithLogger attaches a Logger that Execute reports each attempt through.
// Defaults to a no-op Logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Executor) { e.logger = logger }
}

// NewExecutor builds an Executor with a keep-alive, connection-reusing
// transport.
func NewExecutor(opts ...Option) *Executor {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	e := &Executor{
		client:          &http.Client{Transport: transport},
		maxResponseSize: DefaultMaxResponseSize,
		defaultTimeout:  60 * time.Second,
		logger:          log.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Execute issues one POST request and classifies any failure per the
// gateway error taxonomy (spec §4.7).
func (e *Executor) Execute(ctx context.Context, req *Request) (*Response, *gatewayerrors.Error) {
	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx = reqcontext.WithRequestID(ctx, requestID)
	ctx = reqcontext.WithOperationName(ctx, "httpclient.Execute")

	e.logger.Debug(ctx, "http attempt", log.Any("method", req.Method), log.Any("url", req.URL))

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && e.defaultTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, e.defaultTimeout)
		defer cancel()
	}

	rawReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return e.fail(ctx, gatewayerrors.InvalidRequest(requestID, fmt.Sprintf("build request: %s", err)))
	}

	rawReq.Header = req.Headers.Clone()
	if rawReq.Header == nil {
		rawReq.Header = make(http.Header)
	}

	rawReq.Header.Set("X-Request-ID", requestID)

	if req.IdempotencyKey != "" {
		rawReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}

	if req.Auth != nil {
		if err := applyAuth(rawReq.Header, req.Auth); err != nil {
			return e.fail(ctx, gatewayerrors.InvalidRequest(requestID, err.Error()))
		}
	}

	rawResp, err := e.client.Do(rawReq)
	if err != nil {
		if ctx.Err() != nil {
			return e.fail(ctx, gatewayerrors.Timeout(requestID))
		}

		return e.fail(ctx, gatewayerrors.Network(requestID, fmt.Sprintf("request %s: %s", requestID, err)))
	}
	defer rawResp.Body.Close()

	// Status is authoritative (spec §4.7): classify a failing response
	// from its status code alone before any content-type/size guard can
	// veto retry/fallback over a non-JSON or oversized error body (e.g. an
	// HTML page from an intermediary proxy).
	if rawResp.StatusCode >= 400 {
		errBody, readErr := io.ReadAll(io.LimitReader(rawResp.Body, e.maxResponseSize+1))
		if readErr != nil {
			return e.fail(ctx, gatewayerrors.Network(requestID, fmt.Sprintf("read error response body: %s", readErr)))
		}

		return e.fail(ctx, mapStatusCode(rawResp.StatusCode, requestID, errBody, rawResp.Header))
	}

	if rawResp.ContentLength > e.maxResponseSize {
		return e.fail(ctx, gatewayerrors.Custom(requestID, "response_too_large", fmt.Sprintf("response too large: %d bytes exceeds limit of %d", rawResp.ContentLength, e.maxResponseSize)))
	}

	contentType := rawResp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return e.fail(ctx, gatewayerrors.Custom(requestID, "invalid_content_type", fmt.Sprintf("expected application/json, got %q", contentType)))
	}

	limited := io.LimitReader(rawResp.Body, e.maxResponseSize+1)

	body, err := io.ReadAll(limited)
	if err != nil {
		return e.fail(ctx, gatewayerrors.Network(requestID, fmt.Sprintf("read response body: %s", err)))
	}

	if int64(len(body)) > e.maxResponseSize {
		return e.fail(ctx, gatewayerrors.Custom(requestID, "response_too_large", fmt.Sprintf("response too large: exceeds limit of %d bytes", e.maxResponseSize)))
	}

	e.logger.Debug(ctx, "http attempt succeeded", log.Any("status_code", rawResp.StatusCode))

	return &Response{
		StatusCode: rawResp.StatusCode,
		Headers:    rawResp.Header,
		Body:       body,
		RequestID:  requestID,
	}, nil
}

// fail logs a classified attempt failure with its cause attached before
// returning it, so every attempt is reported regardless of which guard
// rejected it.
func (e *Executor) fail(ctx context.Context, gerr *gatewayerrors.Error) (*Response, *gatewayerrors.Error) {
	e.logger.Error(ctx, "http attempt failed", log.Cause(gerr))
	return nil, gerr
}

// ExecuteStream is reserved for the streaming entrypoint (spec §9): the
// data model and dispatch surface type-check today, but no provider
// adapter emits SSE output yet.
func (e *Executor) ExecuteStream(ctx context.Context, req *Request) (streams.Stream[*streams.StreamEvent], *gatewayerrors.Error) {
	return nil, gatewayerrors.ErrStreamingNotImplemented(req.RequestID)
}

func applyAuth(headers http.Header, auth *AuthConfig) error {
	switch auth.Type {
	case AuthTypeBearer:
		if auth.APIKey == "" {
			return fmt.Errorf("bearer token is required")
		}

		headers.Set("Authorization", "Bearer "+auth.APIKey)
	case AuthTypeAPIKey:
		if auth.HeaderKey == "" {
			return fmt.Errorf("header key is required")
		}

		headers.Set(auth.HeaderKey, auth.APIKey)
	default:
		return fmt.Errorf("unsupported auth type: %s", auth.Type)
	}

	return nil
}

// Package gatewayerrors defines the closed error taxonomy the routing and
// retry engines classify provider failures into (spec §7), independent of
// any specific provider's wire error shape.
package gatewayerrors

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the closed set of error classifications the gateway core
// reasons about. It is a stable identifier, not a Go type name, so it
// round-trips onto the wire for observability.
type Kind string

const (
	KindRateLimit          Kind = "rate_limit"
	KindTimeout            Kind = "timeout"
	KindServerError        Kind = "server_error"
	KindInvalidRequest     Kind = "invalid_request"
	KindAuthentication     Kind = "authentication"
	KindModelNotAvailable  Kind = "model_not_available"
	KindNetwork            Kind = "network"
	KindCustom             Kind = "custom"
	KindAllProvidersFailed Kind = "all_providers_failed"
)

// Error is the gateway's uniform error value. Every user-facing error
// carries a request-id, per spec §7's propagation policy.
type Error struct {
	Kind      Kind
	Message   string
	RequestID string

	// RetryAfter is set for KindRateLimit when the provider supplied an
	// explicit delay hint.
	RetryAfter *time.Duration

	// StatusCode is set for KindServerError.
	StatusCode int

	// Model is set for KindModelNotAvailable.
	Model string

	// Code is a provider- or classifier-assigned short code, set for
	// KindCustom.
	Code string

	// ProviderErrors is set for KindAllProvidersFailed: the last error
	// string observed per provider name.
	ProviderErrors map[string]string
}

func (e *Error) Error() string {
	msg := e.Message
	if e.RequestID != "" {
		msg = fmt.Sprintf("%s (request_id=%s)", msg, e.RequestID)
	}

	return msg
}

// IsRetryable is a pure function of the error kind (spec §8 invariant 7):
// identical kinds always return the same value.
func (e *Error) IsRetryable() bool {
	return IsRetryable(e.Kind)
}

// IsRetryable reports whether errors of this kind are retryable across
// providers, per the fixed table in spec §4.6.
func IsRetryable(kind Kind) bool {
	switch kind {
	case KindRateLimit, KindTimeout, KindServerError, KindNetwork, KindModelNotAvailable:
		return true
	case KindInvalidRequest, KindAuthentication, KindCustom, KindAllProvidersFailed:
		return false
	default:
		return false
	}
}

// RetryDelay returns the provider-supplied retry hint, if any.
func (e *Error) RetryDelay() *time.Duration {
	if e.Kind != KindRateLimit {
		return nil
	}

	return e.RetryAfter
}

// New builds an Error of the given kind with a request-id already
// attached.
func New(kind Kind, requestID, message string) *Error {
	return &Error{Kind: kind, Message: message, RequestID: requestID}
}

// RateLimit builds a KindRateLimit error, optionally carrying a
// Retry-After hint.
func RateLimit(requestID string, retryAfter *time.Duration) *Error {
	return &Error{Kind: KindRateLimit, Message: "rate limit exceeded", RequestID: requestID, RetryAfter: retryAfter}
}

// Timeout builds a KindTimeout error.
func Timeout(requestID string) *Error {
	return &Error{Kind: KindTimeout, Message: "request timeout", RequestID: requestID}
}

// ServerError builds a KindServerError error.
func ServerError(requestID string, statusCode int, message string) *Error {
	return &Error{Kind: KindServerError, Message: message, RequestID: requestID, StatusCode: statusCode}
}

// InvalidRequest builds a KindInvalidRequest error.
func InvalidRequest(requestID, message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message, RequestID: requestID}
}

// Authentication builds a KindAuthentication error.
func Authentication(requestID string) *Error {
	return &Error{Kind: KindAuthentication, Message: "authentication failed", RequestID: requestID}
}

// ModelNotAvailable builds a KindModelNotAvailable error.
func ModelNotAvailable(requestID, model string) *Error {
	return &Error{Kind: KindModelNotAvailable, Message: fmt.Sprintf("model %q not available", model), RequestID: requestID, Model: model}
}

// Network builds a KindNetwork error.
func Network(requestID, message string) *Error {
	return &Error{Kind: KindNetwork, Message: message, RequestID: requestID}
}

// Custom builds a KindCustom error.
func Custom(requestID, code, message string) *Error {
	return &Error{Kind: KindCustom, Message: message, RequestID: requestID, Code: code}
}

// AllProvidersFailed builds the terminal aggregate error the router
// returns once every candidate has been exhausted.
func AllProvidersFailed(requestID string, providerErrors map[string]string) *Error {
	return &Error{
		Kind:           KindAllProvidersFailed,
		Message:        fmt.Sprintf("all %d providers failed", len(providerErrors)),
		RequestID:      requestID,
		ProviderErrors: providerErrors,
	}
}

// ErrStreamingNotImplemented marks the reserved streaming entrypoints
// (spec §9): the data model and dispatch surface type-check against the
// full contract, but no streaming transport is wired up yet.
func ErrStreamingNotImplemented(requestID string) *Error {
	return Custom(requestID, "streaming_not_implemented", "streaming is not implemented")
}

// ClassifyMessage maps a provider's verbatim error message onto the
// taxonomy using best-effort text matching, for providers whose failures
// don't arrive with a usable status code.
func ClassifyMessage(provider, requestID, message string) *Error {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "rate limit") || strings.Contains(lower, "too many requests"):
		return RateLimit(requestID, nil)
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "timed out"):
		return Timeout(requestID)
	case strings.Contains(lower, "unauthorized") || strings.Contains(lower, "authentication"):
		return Authentication(requestID)
	case strings.Contains(lower, "invalid request") || strings.Contains(lower, "bad request"):
		return InvalidRequest(requestID, message)
	case strings.Contains(lower, "model") && strings.Contains(lower, "not found"):
		return ModelNotAvailable(requestID, "unknown")
	}

	switch provider {
	case "openai":
		switch {
		case strings.Contains(lower, "insufficient_quota"):
			return RateLimit(requestID, nil)
		case strings.Contains(lower, "server_error"):
			return ServerError(requestID, 500, message)
		}
	case "anthropic":
		switch {
		case strings.Contains(lower, "overloaded"):
			return ServerError(requestID, 503, message)
		case strings.Contains(lower, "invalid_api_key"):
			return Authentication(requestID)
		}
	}

	return Custom(requestID, provider+"_error", message)
}

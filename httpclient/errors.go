package httpclient

import (
	"strconv"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"

	"github.com/relaymesh/llmgateway/gatewayerrors"
)

// mapStatusCode maps an HTTP status code to the gateway error taxonomy
// (spec §4.7/§7). Status is authoritative; a malformed or absent body
// never masks it.
func mapStatusCode(status int, requestID string, body []byte, headers map[string][]string) *gatewayerrors.Error {
	switch {
	case status == 401 || status == 403:
		return gatewayerrors.Authentication(requestID)
	case status == 429:
		return gatewayerrors.RateLimit(requestID, parseRetryAfter(headers, body))
	case status == 400:
		return gatewayerrors.InvalidRequest(requestID, extractMessage(body, "Bad request"))
	case status == 404:
		return gatewayerrors.ModelNotAvailable(requestID, extractModel(body))
	case status == 408 || status == 504:
		return gatewayerrors.Timeout(requestID)
	case status >= 500 && status <= 599:
		return gatewayerrors.ServerError(requestID, status, extractMessage(body, "Internal server error"))
	default:
		return gatewayerrors.Custom(requestID, strconv.Itoa(status), extractMessage(body, "Unknown error"))
	}
}

// repairedJSON returns body as-is if already valid JSON, else attempts a
// best-effort repair of a truncated/malformed error envelope before
// classification falls back to the raw status code alone.
func repairedJSON(body []byte) []byte {
	if len(body) == 0 || gjson.ValidBytes(body) {
		return body
	}

	repaired, err := jsonrepair.JSONRepair(string(body))
	if err != nil {
		return body
	}

	return []byte(repaired)
}

// extractMessage pulls a human-readable message out of the common error
// envelope shapes {"error":{"message":...}} and {"message":...}.
func extractMessage(body []byte, fallback string) string {
	repaired := repairedJSON(body)

	if msg := gjson.GetBytes(repaired, "error.message"); msg.Exists() {
		return msg.String()
	}

	if msg := gjson.GetBytes(repaired, "message"); msg.Exists() {
		return msg.String()
	}

	if len(body) > 0 {
		return string(body)
	}

	return fallback
}

// extractModel best-effort parses a model name out of a 404 error body.
func extractModel(body []byte) string {
	repaired := repairedJSON(body)

	for _, path := range []string{"error.param", "error.model", "model"} {
		if v := gjson.GetBytes(repaired, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}

	return "unknown"
}

// parseRetryAfter reads a Retry-After hint from the response headers
// first, then falls back to a best-effort scan of the error envelope.
func parseRetryAfter(headers map[string][]string, body []byte) *time.Duration {
	for name, values := range headers {
		if !strings.EqualFold(name, "Retry-After") || len(values) == 0 {
			continue
		}

		if seconds, err := strconv.Atoi(strings.TrimSpace(values[0])); err == nil && seconds >= 0 {
			d := time.Duration(seconds) * time.Second
			return &d
		}
	}

	repaired := repairedJSON(body)

	if v := gjson.GetBytes(repaired, "error.retry_after"); v.Exists() {
		d := time.Duration(v.Float() * float64(time.Second))
		return &d
	}

	return nil
}

// Package secret provides a narrow string wrapper for values that must
// never appear in logs or debug output but must still round-trip through
// JSON unchanged (API keys, bearer tokens).
package secret

import "encoding/json"

const redacted = "[REDACTED]"

// Secret wraps a sensitive string. Its zero value is an empty secret.
type Secret struct {
	value string
}

// New wraps value as a Secret.
func New(value string) Secret {
	return Secret{value: value}
}

// Expose returns the raw value. Callers should only do this at the edge
// where the value is actually needed (e.g. building an Authorization
// header), never for logging or error messages.
func (s Secret) Expose() string {
	return s.value
}

// IsEmpty reports whether the wrapped value is the empty string.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}

// String implements fmt.Stringer, so a Secret printed with %s, %v, or
// interpolated into an error message never leaks its value.
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer, so %#v and debuggers printing a
// Secret also see the redacted form rather than the raw field.
func (s Secret) GoString() string {
	return redacted
}

// MarshalJSON serializes the raw value, not the redacted form: secrets
// must round-trip through persisted configuration.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON restores the raw value from persisted configuration.
func (s *Secret) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.value)
}

// PartialRedact returns a value safe to include in diagnostic output: a
// short prefix/suffix for longer secrets, full redaction otherwise. It is
// never used by MarshalJSON/String/GoString — callers opt into it
// explicitly when a field-level redaction policy calls for "partial".
func (s Secret) PartialRedact() string {
	if s.value == "" {
		return "[EMPTY]"
	}

	n := len(s.value)
	if n <= 8 {
		return redacted
	}

	return s.value[:2] + "..." + s.value[n-2:]
}

// Package providers defines the adapter contract every provider-specific
// wire implementation satisfies (spec §4.4), and a small registry for
// looking adapters up by name.
package providers

import (
	"encoding/json"
	"fmt"

	"github.com/relaymesh/llmgateway/capability"
	"github.com/relaymesh/llmgateway/protocol"
)

// CallKind enumerates the provider operations this gateway core drives.
// Only chat completion is in scope (spec Non-goal: no provider admin APIs).
type CallKind int

const (
	CallKindChat CallKind = iota
)

//go:generate mockgen -source=adapter.go -destination=mock_adapter.go -package=providers

// Adapter bridges the canonical protocol to one provider's wire dialect.
// Implementations are looked up and dispatched dynamically — callers never
// type-switch on a concrete adapter type (spec §9: no downcasting).
type Adapter interface {
	// Name identifies the provider, e.g. "openai", "anthropic".
	Name() string

	// Capability is this provider's published capability set, used by the
	// comparator and the transformation engine.
	Capability() capability.Capability

	// BaseURL is the provider's API origin.
	BaseURL() string

	// Endpoint returns the path for the given call kind.
	Endpoint(kind CallKind) string

	// Headers returns the request headers this provider needs beyond
	// whatever the HTTP executor adds (request id, content type).
	// apiKey is passed through verbatim from the caller; the gateway core
	// never manages credential acquisition itself.
	Headers(apiKey string) map[string]string

	// FinalizeRequest applies this adapter's own wire-specific rewriting
	// after the transformation engine's generic rewrites have run. It is
	// used as the transform.Finalize hook.
	FinalizeRequest(req *protocol.Request) *protocol.Request

	// EncodeRequest serializes a (already-transformed) canonical request
	// into this provider's wire JSON body.
	EncodeRequest(req *protocol.Request) (json.RawMessage, error)

	// DecodeResponse parses this provider's wire JSON body into the
	// canonical Response shape.
	DecodeResponse(body json.RawMessage) (*protocol.Response, error)
}

// Registry looks adapters up by name, for the routing engine's ordered
// primary/fallback provider list.
type Registry struct {
	byName map[string]Adapter
}

// NewRegistry builds a Registry from a set of adapters.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{byName: make(map[string]Adapter, len(adapters))}

	for _, a := range adapters {
		r.byName[a.Name()] = a
	}

	return r
}

// Get looks an adapter up by name.
func (r *Registry) Get(name string) (Adapter, error) {
	a, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("providers: no adapter registered for %q", name)
	}

	return a, nil
}

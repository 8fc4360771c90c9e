package ai

import "context"

// Provider is the model-call boundary. It is the only operation in the engine
// expected to block for non-trivial latency, and the only one that talks to
// the network. Implementations must be safe for sequential reuse across
// rounds of a session; the engine never issues more than one outstanding
// Complete call per session.
type Provider interface {
	// Complete sends the full conversation to the model and returns the raw
	// response text. The text is unstructured: any tag-protocol segments it
	// carries are extracted by the caller, never by the provider. Returns an
	// error if the transport fails, the context is cancelled, or the response
	// cannot be decoded.
	Complete(ctx context.Context, request CompletionRequest) (string, error)
}

// ProviderFunc adapts a plain function to the [Provider] interface, the same
// way http.HandlerFunc adapts handlers. Useful for tests and middleware
// chains.
type ProviderFunc func(ctx context.Context, request CompletionRequest) (string, error)

// Complete calls f.
func (f ProviderFunc) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	return f(ctx, request)
}

// Package ai defines the model-call boundary of the engine: the [Message]
// and [CompletionRequest] value types, the [Provider] interface, and the
// [TransportError] type that classifies transport-level failures.
//
// The interface is deliberately a single method so that any HTTP client,
// SDK, or test double can satisfy it; see [ProviderFunc] for the adapter.
// Concrete transports live in subpackages (e.g.
// [github.com/leofalp/reagent/providers/ai/openai]); resilience wrappers
// (retry, timeout, logging) live in
// [github.com/leofalp/reagent/providers/ai/middleware].
package ai

// Package observability defines the interfaces and semantic conventions used
// for tracing and structured logging throughout the reagent engine.
//
// The central entry point is [Provider], which composes [Tracer] and [Logger]
// into a single injectable dependency. Callers propagate an active [Span]
// through a [context.Context] using [ContextWithSpan]; it can be retrieved
// with [SpanFromContext]. Every component treats the span as optional and
// nil-checks it, so the engine runs unchanged with observability disabled.
//
// The semconv.go file contains all standard attribute-key, span-name, and
// event-name constants that should be used when recording observations.
package observability

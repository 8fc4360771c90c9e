// Package tool provides the registry and argument-coercion layer of the
// engine: declared tool signatures, runtime validation of parsed tool calls,
// and dispatch to handler functions.
//
// A tool is built explicitly with [New] from a name, a parameter-kind map,
// and a [Handler]; the signature is derived once at registration time and is
// immutable afterwards. Parameter kinds are restricted to the four
// primitives in [Kind]; composite and optional parameters are a documented
// non-feature of the protocol.
//
// The [Catalog] type offers a thread-safe registry preserving registration
// order; [Catalog.Run] performs the full lookup → validate/coerce → execute
// dispatch for one [ToolCall]. Tools that want to reject domain input should
// return a descriptive string result rather than an error: dispatch then
// counts as successful and the text is surfaced to the model as an
// observation.
package tool

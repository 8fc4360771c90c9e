package tool

import "errors"

// Dispatch errors. All four are recoverable per tool call: the engine reports
// them, skips the offending call, and keeps the session running. They are
// distinct from soft errors, where a tool returns a descriptive string for
// bad domain input and dispatch counts as successful.
var (
	// ErrMalformedCall marks a tool_call payload whose JSON could not be
	// decoded even after repair, or that lacks a tool name.
	ErrMalformedCall = errors.New("malformed tool call")

	// ErrUnknownTool marks a call naming a tool absent from the catalog.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrUnknownArgument marks a call argument not present in the tool's
	// declared parameter set.
	ErrUnknownArgument = errors.New("unknown argument")

	// ErrTypeCoercion marks an argument value that cannot be converted to
	// its declared kind.
	ErrTypeCoercion = errors.New("cannot coerce argument")
)

package tool

import (
	"fmt"

	"github.com/leofalp/reagent/core/parse"
)

// ToolCall is one parsed tool_call payload. ID is caller-supplied: the model
// is instructed to make ids monotonically increasing, but the engine uses
// them only as observation-correlation keys and does not enforce
// monotonicity. Duplicate ids within a round overwrite earlier results under
// last-write-wins semantics.
type ToolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
	ID        int            `json:"id"`
}

// ParseToolCall decodes the JSON payload of a tool_call tag. Minor JSON
// damage is repaired automatically (see
// [github.com/leofalp/reagent/core/parse.Decode]); an undecodable payload or
// a missing tool name fails with an error wrapping [ErrMalformedCall].
func ParseToolCall(payload string) (ToolCall, error) {
	call, err := parse.Decode[ToolCall](payload)
	if err != nil {
		return ToolCall{}, fmt.Errorf("%w: %v", ErrMalformedCall, err)
	}
	if call.Name == "" {
		return ToolCall{}, fmt.Errorf("%w: payload has no tool name", ErrMalformedCall)
	}
	if call.Arguments == nil {
		call.Arguments = map[string]any{}
	}
	return call, nil
}

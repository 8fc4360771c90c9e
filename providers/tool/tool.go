package tool

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/leofalp/reagent/internal/jsonschema"
	"github.com/leofalp/reagent/internal/utils"
	"github.com/leofalp/reagent/providers/observability"
)

// Arguments carries the named, coerced argument values passed to a tool
// handler. After validation every value has its declared kind, so the typed
// getters can be used without further checks.
type Arguments map[string]any

// Int returns the named argument as an int, or 0 if absent.
func (a Arguments) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// Float returns the named argument as a float64, or 0 if absent.
func (a Arguments) Float(name string) float64 {
	switch v := a[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Bool returns the named argument as a bool, or false if absent.
func (a Arguments) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// String returns the named argument as a string, or "" if absent.
func (a Arguments) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Handler is the execution function bound to a tool. It receives validated,
// coerced arguments and returns the tool's result. Domain errors should be
// returned as descriptive result values (e.g. a string explaining why the
// input is out of range), not as a non-nil error: the error return is
// reserved for genuine execution failures.
type Handler func(ctx context.Context, args Arguments) (any, error)

// Signature is the declared, immutable schema of a tool: its name, an
// optional description, and the name→kind mapping of its parameters. It is
// derived once at registration time.
type Signature struct {
	Name        string
	Description string
	Parameters  map[string]Kind
}

// Schema serializes the signature into the stable JSON-object form advertised
// to the model: name, description, and a parameters object whose properties
// carry the primitive kind tags.
func (s Signature) Schema() map[string]any {
	properties := make(map[string]*jsonschema.Schema, len(s.Parameters))
	for name, kind := range s.Parameters {
		properties[name] = jsonschema.Primitive(string(kind))
	}

	return map[string]any{
		"name":        s.Name,
		"description": s.Description,
		"parameters":  jsonschema.Object(properties),
	}
}

// ValidateAndCoerce checks every argument of call against the signature and
// returns a copy of the call whose argument values all have their declared
// kinds. An argument name outside the parameter set fails with
// [ErrUnknownArgument]; an inconvertible value fails with [ErrTypeCoercion].
// The input call is never mutated.
func (s Signature) ValidateAndCoerce(call ToolCall) (ToolCall, error) {
	coerced := ToolCall{
		Name:      call.Name,
		ID:        call.ID,
		Arguments: make(map[string]any, len(call.Arguments)),
	}

	// Deterministic argument order keeps error messages reproducible.
	names := make([]string, 0, len(call.Arguments))
	for name := range call.Arguments {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		kind, ok := s.Parameters[name]
		if !ok {
			return ToolCall{}, fmt.Errorf("%w: %q is not a parameter of tool %q", ErrUnknownArgument, name, s.Name)
		}
		value, err := kind.Coerce(call.Arguments[name])
		if err != nil {
			return ToolCall{}, fmt.Errorf("argument %q of tool %q: %w", name, s.Name, err)
		}
		coerced.Arguments[name] = value
	}

	return coerced, nil
}

// Tool binds a [Signature] to a [Handler]. Construct tools with [New]; there
// is no hidden global registry and no reflection over the handler.
type Tool struct {
	signature Signature
	handler   Handler
}

// toolOptions holds optional configuration for a tool created via [New].
type toolOptions struct {
	Description string
}

// Option configures a tool at registration time.
type Option func(*toolOptions)

// WithDescription sets a human-readable description for the tool. The
// description is surfaced to the language model to help it decide when and
// how to invoke the tool.
func WithDescription(description string) Option {
	return func(o *toolOptions) {
		o.Description = description
	}
}

// New constructs a [Tool] from a name, an explicit parameter-kind map, and a
// handler function. The signature is built once here and is immutable
// afterwards. New panics if a declared kind is not one of the four primitive
// kinds, since that is a programming error, not a runtime condition.
//
// Example:
//
//	sum := tool.New("sum", map[string]tool.Kind{"a": tool.KindInt, "b": tool.KindInt},
//	    func(ctx context.Context, args tool.Arguments) (any, error) {
//	        return args.Int("a") + args.Int("b"), nil
//	    },
//	    tool.WithDescription("Adds two integers."),
//	)
func New(name string, params map[string]Kind, handler Handler, options ...Option) *Tool {
	opts := &toolOptions{}
	for _, option := range options {
		option(opts)
	}

	parameters := make(map[string]Kind, len(params))
	for param, kind := range params {
		if !kind.Valid() {
			panic(fmt.Sprintf("tool %q: parameter %q has unsupported kind %q", name, param, kind))
		}
		parameters[param] = kind
	}

	return &Tool{
		signature: Signature{
			Name:        name,
			Description: opts.Description,
			Parameters:  parameters,
		},
		handler: handler,
	}
}

// Signature returns the tool's declared signature.
func (t *Tool) Signature() Signature {
	return t.signature
}

// Call invokes the tool's handler with already-coerced arguments.
// Observability span events are emitted at the start and end of execution
// when a span is present in ctx. The result is whatever the handler returns,
// including descriptive soft-error strings.
func (t *Tool) Call(ctx context.Context, args Arguments) (any, error) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.signature.Name),
			observability.String(observability.AttrToolInput, utils.JSONToString(args)),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()
	result, err := t.handler(ctx, args)
	duration := time.Since(start)

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
				observability.Duration(observability.AttrToolDuration, duration),
			)
		}
		return nil, err
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrToolOutput, observability.TruncateString(utils.JSONToString(result), observability.DefaultMaxStringLength)),
			observability.Duration(observability.AttrToolDuration, duration),
		)
	}

	return result, nil
}

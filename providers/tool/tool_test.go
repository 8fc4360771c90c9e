package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func newSumTool() *Tool {
	return New("sum", map[string]Kind{"a": KindInt, "b": KindInt},
		func(ctx context.Context, args Arguments) (any, error) {
			return args.Int("a") + args.Int("b"), nil
		},
		WithDescription("Adds two integers."),
	)
}

func TestNew_Signature(t *testing.T) {
	sum := newSumTool()
	sig := sum.Signature()

	if sig.Name != "sum" {
		t.Errorf("expected name sum, got %q", sig.Name)
	}
	if sig.Description != "Adds two integers." {
		t.Errorf("unexpected description %q", sig.Description)
	}
	if len(sig.Parameters) != 2 || sig.Parameters["a"] != KindInt || sig.Parameters["b"] != KindInt {
		t.Errorf("unexpected parameters %v", sig.Parameters)
	}
}

func TestNew_PanicsOnUnsupportedKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unsupported kind")
		}
	}()
	New("bad", map[string]Kind{"x": Kind("list")}, nil)
}

func TestSignature_Schema(t *testing.T) {
	sig := newSumTool().Signature()

	encoded, err := json.Marshal(sig.Schema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"description":"Adds two integers.","name":"sum","parameters":{"type":"object","properties":{"a":{"type":"int"},"b":{"type":"int"}},"required":["a","b"]}}`
	if string(encoded) != want {
		t.Errorf("schema mismatch:\n got %s\nwant %s", encoded, want)
	}
}

func TestSignature_ValidateAndCoerce(t *testing.T) {
	sig := newSumTool().Signature()

	call := ToolCall{
		Name:      "sum",
		Arguments: map[string]any{"a": "3", "b": float64(4)},
		ID:        7,
	}

	coerced, err := sig.ValidateAndCoerce(call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coerced.Arguments["a"] != 3 || coerced.Arguments["b"] != 4 {
		t.Errorf("expected integers 3 and 4, got %v", coerced.Arguments)
	}
	if coerced.ID != 7 {
		t.Errorf("id must be preserved, got %d", coerced.ID)
	}

	// The input call must not be mutated.
	if call.Arguments["a"] != "3" {
		t.Errorf("input call was mutated: %v", call.Arguments)
	}
}

func TestSignature_ValidateAndCoerce_UnknownArgument(t *testing.T) {
	sig := newSumTool().Signature()

	_, err := sig.ValidateAndCoerce(ToolCall{
		Name:      "sum",
		Arguments: map[string]any{"a": 1, "c": 2},
	})
	if !errors.Is(err, ErrUnknownArgument) {
		t.Errorf("expected ErrUnknownArgument, got %v", err)
	}
}

func TestSignature_ValidateAndCoerce_CoercionFailure(t *testing.T) {
	sig := newSumTool().Signature()

	_, err := sig.ValidateAndCoerce(ToolCall{
		Name:      "sum",
		Arguments: map[string]any{"a": "abc"},
	})
	if !errors.Is(err, ErrTypeCoercion) {
		t.Errorf("expected ErrTypeCoercion, got %v", err)
	}
}

// TestTool_RoundTrip reproduces the full registration → serialization →
// parse → coerce → invoke cycle and checks it matches a direct call.
func TestTool_RoundTrip(t *testing.T) {
	sum := newSumTool()
	catalog := NewCatalogWithTools(sum)

	call, err := ParseToolCall(`{"name":"sum","arguments":{"a":"3","b":"4"},"id":0}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := catalog.Run(context.Background(), call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	direct, err := sum.Call(context.Background(), Arguments{"a": 3, "b": 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != direct {
		t.Errorf("dispatched result %v differs from direct call %v", result, direct)
	}
	if result != 7 {
		t.Errorf("expected 7, got %v", result)
	}
}

func TestTool_SoftErrorResult(t *testing.T) {
	guard := New("guard", map[string]Kind{"x": KindFloat},
		func(ctx context.Context, args Arguments) (any, error) {
			if args.Float("x") <= 0 {
				return "invalid input: x must be positive", nil
			}
			return args.Float("x"), nil
		},
	)

	result, err := guard.Call(context.Background(), Arguments{"x": -1.0})
	if err != nil {
		t.Fatalf("soft errors must not surface as execution failures: %v", err)
	}
	if result != "invalid input: x must be positive" {
		t.Errorf("unexpected result %v", result)
	}
}

func TestArguments_TypedGetters(t *testing.T) {
	args := Arguments{"n": 3, "f": 1.5, "b": true, "s": "text"}

	if args.Int("n") != 3 {
		t.Errorf("Int getter failed: %v", args.Int("n"))
	}
	if args.Float("f") != 1.5 {
		t.Errorf("Float getter failed: %v", args.Float("f"))
	}
	if args.Float("n") != 3.0 {
		t.Errorf("Float getter must widen ints: %v", args.Float("n"))
	}
	if !args.Bool("b") {
		t.Error("Bool getter failed")
	}
	if args.String("s") != "text" {
		t.Errorf("String getter failed: %v", args.String("s"))
	}
	if args.Int("missing") != 0 {
		t.Errorf("missing argument must yield zero value: %v", args.Int("missing"))
	}
}

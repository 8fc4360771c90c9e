// Package mathtools provides ready-made arithmetic tools: sum, multiply, and
// natural logarithm. They are small enough to double as wiring examples for
// custom tools.
package mathtools

import (
	"context"
	"fmt"
	"math"

	"github.com/leofalp/reagent/providers/tool"
)

// NewSumTool returns a tool adding two integers.
func NewSumTool() *tool.Tool {
	return tool.New("sum",
		map[string]tool.Kind{"a": tool.KindInt, "b": tool.KindInt},
		func(ctx context.Context, args tool.Arguments) (any, error) {
			return args.Int("a") + args.Int("b"), nil
		},
		tool.WithDescription("Adds two integers a and b and returns their sum."),
	)
}

// NewMultiplyTool returns a tool multiplying two integers.
func NewMultiplyTool() *tool.Tool {
	return tool.New("multiply",
		map[string]tool.Kind{"a": tool.KindInt, "b": tool.KindInt},
		func(ctx context.Context, args tool.Arguments) (any, error) {
			return args.Int("a") * args.Int("b"), nil
		},
		tool.WithDescription("Multiplies two integers a and b and returns their product."),
	)
}

// NewLogTool returns a tool computing the natural logarithm of x. A
// non-positive input yields a descriptive string rather than an execution
// error, so the model can read the problem in its observation and adjust.
func NewLogTool() *tool.Tool {
	return tool.New("log",
		map[string]tool.Kind{"x": tool.KindFloat},
		func(ctx context.Context, args tool.Arguments) (any, error) {
			x := args.Float("x")
			if x <= 0 {
				return fmt.Sprintf("cannot take the logarithm of %v: input must be positive", x), nil
			}
			return math.Log(x), nil
		},
		tool.WithDescription("Returns the natural logarithm of x. x must be positive."),
	)
}

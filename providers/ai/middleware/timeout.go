package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/leofalp/reagent/providers/ai"
)

// NewTimeoutMiddleware creates a [Middleware] that enforces a per-call
// deadline on completion requests. The context is wrapped with
// context.WithTimeout and canceled once the provider returns or the deadline
// expires; a deadline hit surfaces as an [ai.TransportError] so the engine
// treats it like any other transport failure.
//
// If the caller supplies a context that already has a shorter deadline, that
// shorter deadline wins as per normal context semantics.
func NewTimeoutMiddleware(timeout time.Duration) Middleware {
	return func(next CompleteFunc) CompleteFunc {
		return func(ctx context.Context, request ai.CompletionRequest) (string, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			response, err := next(ctx, request)
			if err != nil && errors.Is(err, context.DeadlineExceeded) && !ai.IsTransport(err) {
				return "", ai.NewTransportError("completion timeout", err)
			}
			return response, err
		}
	}
}

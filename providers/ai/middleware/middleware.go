package middleware

import (
	"context"

	"github.com/leofalp/reagent/providers/ai"
)

// CompleteFunc is the function form of the completion boundary that
// middleware wraps.
type CompleteFunc func(ctx context.Context, request ai.CompletionRequest) (string, error)

// Middleware decorates a CompleteFunc with cross-cutting behavior such as
// retries, deadlines, or logging.
type Middleware func(next CompleteFunc) CompleteFunc

// Chain composes middlewares so the first one listed is the outermost: a
// request passes through middlewares[0] first and reaches the provider last.
func Chain(next CompleteFunc, middlewares ...Middleware) CompleteFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		next = middlewares[i](next)
	}
	return next
}

// Wrap decorates provider with the given middlewares and returns it as an
// [ai.Provider] again, so a wrapped provider drops into any engine unchanged.
func Wrap(provider ai.Provider, middlewares ...Middleware) ai.Provider {
	return ai.ProviderFunc(Chain(provider.Complete, middlewares...))
}

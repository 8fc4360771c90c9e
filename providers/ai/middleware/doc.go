// Package middleware provides composable decorators for the completion
// boundary: retries with exponential backoff, per-call deadlines, and
// structured request/response logging. Middlewares wrap an [ai.Provider]
// without the engine knowing, so retry policy stays a caller concern.
//
// Example:
//
//	provider := middleware.Wrap(openaiProvider,
//	    middleware.NewRetryMiddleware(middleware.RetryConfig{}),
//	    middleware.NewTimeoutMiddleware(30*time.Second),
//	)
package middleware

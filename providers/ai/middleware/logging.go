package middleware

import (
	"context"
	"time"

	"github.com/leofalp/reagent/providers/ai"
	"github.com/leofalp/reagent/providers/observability"
)

// LogLevel controls how much detail the logging middleware emits per call.
type LogLevel int

const (
	// LogLevelMinimal logs only the model name and total duration. Use this
	// when you want lightweight audit trails without noise.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard logs everything in Minimal plus the message count and
	// response length. This is the recommended default for most applications.
	LogLevelStandard

	// LogLevelVerbose logs everything in Standard plus the first message
	// content and the full response content, each truncated to 500
	// characters.
	//
	// WARNING: DO NOT use LogLevelVerbose in production. It will log raw
	// prompt and response text, which may contain sensitive user data,
	// secrets, or PII. It is intended solely for local debugging and
	// development.
	LogLevelVerbose
)

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware creates a [Middleware] that emits structured log
// entries before and after every completion call. The logger must not be
// nil; use a slogobs observer if you have not configured anything else.
func NewLoggingMiddleware(logger observability.Logger, level LogLevel) Middleware {
	return func(next CompleteFunc) CompleteFunc {
		return func(ctx context.Context, request ai.CompletionRequest) (string, error) {
			logger.Info(ctx, "model complete", requestAttrs(request, level)...)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.Error(ctx, "model complete failed",
					observability.String(observability.AttrModel, request.Model),
					observability.Duration(observability.AttrDuration, elapsed),
					observability.Error(err),
				)
				return "", err
			}

			logger.Info(ctx, "model complete done", responseAttrs(request, response, elapsed, level)...)
			return response, nil
		}
	}
}

func requestAttrs(request ai.CompletionRequest, level LogLevel) []observability.Attribute {
	attrs := []observability.Attribute{
		observability.String(observability.AttrModel, request.Model),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs, observability.Int(observability.AttrModelMessagesCount, len(request.Messages)))
	}

	if level >= LogLevelVerbose && len(request.Messages) > 0 {
		first := request.Messages[0]
		attrs = append(attrs,
			observability.String("first_message_role", string(first.Role)),
			observability.String("first_message_content", observability.TruncateString(first.Content, truncateLen)),
		)
	}

	return attrs
}

func responseAttrs(request ai.CompletionRequest, response string, elapsed time.Duration, level LogLevel) []observability.Attribute {
	attrs := []observability.Attribute{
		observability.String(observability.AttrModel, request.Model),
		observability.Duration(observability.AttrDuration, elapsed),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs, observability.Int(observability.AttrModelResponseLength, len(response)))
	}

	if level >= LogLevelVerbose && response != "" {
		attrs = append(attrs,
			observability.String("response_content", observability.TruncateString(response, truncateLen)),
		)
	}

	return attrs
}

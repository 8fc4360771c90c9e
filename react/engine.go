package react

import (
	"context"
	"errors"

	"github.com/leofalp/reagent/core/prompt"
	"github.com/leofalp/reagent/core/tag"
	"github.com/leofalp/reagent/internal/utils"
	"github.com/leofalp/reagent/providers/ai"
	"github.com/leofalp/reagent/providers/memory"
	"github.com/leofalp/reagent/providers/observability"
	"github.com/leofalp/reagent/providers/tool"
)

const defaultMaxRounds = 10

// Engine drives one or more reason-act sessions against a completion
// provider. Each Run call owns a fresh history; the catalog and the provider
// are read-only after construction, so a single Engine may serve concurrent
// sessions.
type Engine struct {
	provider   ai.Provider
	catalog    *tool.Catalog
	model      string
	maxRounds  int
	template   string
	observer   observability.Provider
	newHistory func() memory.History
}

// New builds an engine around provider. The zero configuration gives an
// empty catalog, ten rounds, the default template, and an unbounded
// pinned-first history per session.
func New(provider ai.Provider, options ...Option) (*Engine, error) {
	if provider == nil {
		return nil, errors.New("react: provider is required")
	}

	e := &Engine{
		provider:  provider,
		catalog:   tool.NewCatalog(),
		maxRounds: defaultMaxRounds,
		template:  prompt.DefaultTemplate,
		newHistory: func() memory.History {
			return memory.NewPinnedWindow(nil, memory.Unbounded)
		},
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes one full session for question and returns the final textual
// answer. Termination is either an explicit response tag, or round-budget
// exhaustion, in which case one last completion is issued and its raw text
// returned as-is. Transport failures from the provider propagate immediately;
// per-call tool failures are reported to the observer and skipped.
func (e *Engine) Run(ctx context.Context, question string) (string, error) {
	ctx, session := e.startSpan(ctx, observability.SpanSession,
		observability.String(observability.AttrQuestion, observability.TruncateString(question, observability.DefaultMaxStringLength)),
		observability.Int(observability.AttrMaxRounds, e.maxRounds),
		observability.Int(observability.AttrToolsCount, e.catalog.Size()),
	)
	defer e.endSpan(session)

	signatures := e.catalog.Signatures()
	history := e.newHistory()
	history.Append(prompt.SystemPrompt(e.template, signatures))
	history.Append(prompt.Build(question, ai.RoleUser, tag.Question))

	for round := 0; round < e.maxRounds && e.catalog.Size() > 0; round++ {
		if err := ctx.Err(); err != nil {
			e.recordError(session, err)
			return "", err
		}

		ctx, roundSpan := e.startSpan(ctx, observability.SpanRound,
			observability.Int(observability.AttrRound, round),
		)
		if roundSpan != nil {
			roundSpan.AddEvent(observability.EventRoundStart,
				observability.Int(observability.AttrRound, round),
			)
		}
		answer, done, err := e.round(ctx, history)
		e.endSpan(roundSpan)

		if err != nil {
			e.recordError(session, err)
			return "", err
		}
		if done {
			e.setStatus(session, observability.StatusOK, "")
			return answer, nil
		}
	}

	// Budget exhausted, or no tools to loop over: one completion decides.
	if session != nil && e.catalog.Size() > 0 && e.maxRounds > 0 {
		session.AddEvent(observability.EventBudgetExhausted,
			observability.Int(observability.AttrMaxRounds, e.maxRounds),
		)
	}

	raw, err := e.complete(ctx, history)
	if err != nil {
		e.recordError(session, err)
		return "", err
	}
	e.setStatus(session, observability.StatusOK, "")
	return raw, nil
}

// round performs one model call and processes its output. done reports that
// a response tag was found and answer holds its first occurrence; err is
// reserved for transport failures.
func (e *Engine) round(ctx context.Context, history memory.History) (answer string, done bool, err error) {
	raw, err := e.complete(ctx, history)
	if err != nil {
		return "", false, err
	}

	if response := tag.Extract(raw, tag.Response); response.Found {
		e.logInfo(ctx, "session finished",
			observability.String(observability.AttrResponse, observability.TruncateString(response.Content[0], observability.DefaultMaxStringLength)),
		)
		return response.Content[0], true, nil
	}

	if thought := tag.Extract(raw, tag.Thought); thought.Found {
		e.addEvent(ctx, observability.EventThought,
			observability.String(observability.AttrThought, observability.TruncateString(thought.Content[0], observability.DefaultMaxStringLength)),
		)
	}

	// The raw assistant text goes into history whether or not it carried
	// any recognized tags; a tagless round relies on the model
	// self-correcting next turn.
	history.Append(prompt.Build(raw, ai.RoleAssistant, ""))

	calls := tag.Extract(raw, tag.ToolCall)
	if !calls.Found {
		return "", false, nil
	}

	observations := e.dispatch(ctx, calls.Content)
	if len(observations) > 0 {
		e.addEvent(ctx, observability.EventObservation,
			observability.Int(observability.AttrObservations, len(observations)),
		)
		history.Append(prompt.Build(utils.JSONToString(observations), ai.RoleUser, tag.Observation))
	}
	return "", false, nil
}

// dispatch runs each tool-call payload in order of appearance and collects
// results by call id. A payload that fails to parse, names an unknown tool,
// or carries inconvertible arguments is skipped; the remaining calls still
// run. Duplicate ids overwrite, last occurrence wins.
func (e *Engine) dispatch(ctx context.Context, payloads []string) map[int]any {
	observations := make(map[int]any, len(payloads))

	for _, payload := range payloads {
		call, err := tool.ParseToolCall(payload)
		if err != nil {
			e.skipCall(ctx, payload, err)
			continue
		}

		callCtx, span := e.startSpan(ctx, observability.SpanToolExecution,
			observability.String(observability.AttrToolName, call.Name),
			observability.Int(observability.AttrToolCallID, call.ID),
		)
		result, err := e.catalog.Run(callCtx, call)
		e.endSpan(span)

		if err != nil {
			e.skipCall(ctx, payload, err)
			continue
		}
		observations[call.ID] = result
	}

	return observations
}

// complete sends the full current history to the provider.
func (e *Engine) complete(ctx context.Context, history memory.History) (string, error) {
	messages := history.Messages()

	ctx, span := e.startSpan(ctx, observability.SpanModelComplete,
		observability.String(observability.AttrModel, e.model),
		observability.Int(observability.AttrModelMessagesCount, len(messages)),
	)
	defer e.endSpan(span)

	raw, err := e.provider.Complete(ctx, ai.CompletionRequest{
		Model:    e.model,
		Messages: messages,
	})
	if err != nil {
		e.recordError(span, err)
		return "", err
	}

	if span != nil {
		span.SetAttributes(observability.Int(observability.AttrModelResponseLength, len(raw)))
	}
	return raw, nil
}

func (e *Engine) skipCall(ctx context.Context, payload string, err error) {
	e.addEvent(ctx, observability.EventToolCallSkipped,
		observability.String(observability.AttrToolInput, observability.TruncateString(payload, observability.DefaultMaxStringLength)),
		observability.Error(err),
	)
	e.logWarn(ctx, "tool call skipped", observability.Error(err))
}

func (e *Engine) startSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	if e.observer == nil {
		return ctx, nil
	}
	ctx, span := e.observer.StartSpan(ctx, name, attrs...)
	return observability.ContextWithSpan(ctx, span), span
}

func (e *Engine) endSpan(span observability.Span) {
	if span != nil {
		span.End()
	}
}

func (e *Engine) setStatus(span observability.Span, code observability.StatusCode, description string) {
	if span != nil {
		span.SetStatus(code, description)
	}
}

func (e *Engine) recordError(span observability.Span, err error) {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
	}
}

func (e *Engine) addEvent(ctx context.Context, name string, attrs ...observability.Attribute) {
	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(name, attrs...)
	}
}

func (e *Engine) logInfo(ctx context.Context, msg string, attrs ...observability.Attribute) {
	if e.observer != nil {
		e.observer.Info(ctx, msg, attrs...)
	}
}

func (e *Engine) logWarn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	if e.observer != nil {
		e.observer.Warn(ctx, msg, attrs...)
	}
}

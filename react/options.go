package react

import (
	"github.com/leofalp/reagent/providers/memory"
	"github.com/leofalp/reagent/providers/observability"
	"github.com/leofalp/reagent/providers/tool"
)

// Option configures an [Engine] at construction time.
type Option func(*Engine)

// WithTools registers tools into the engine's catalog.
func WithTools(tools ...*tool.Tool) Option {
	return func(e *Engine) {
		e.catalog.Register(tools...)
	}
}

// WithCatalog replaces the engine's catalog. The catalog may be shared across
// engines as long as it is no longer mutated.
func WithCatalog(catalog *tool.Catalog) Option {
	return func(e *Engine) {
		if catalog != nil {
			e.catalog = catalog
		}
	}
}

// WithModel sets the model identifier forwarded on every completion request.
func WithModel(model string) Option {
	return func(e *Engine) {
		e.model = model
	}
}

// WithMaxRounds bounds the number of reasoning rounds per session. Zero means
// no rounds: a single completion call whose raw output is returned verbatim.
func WithMaxRounds(maxRounds int) Option {
	return func(e *Engine) {
		e.maxRounds = maxRounds
	}
}

// WithHistory sets the factory producing each session's conversation buffer.
// The default is an unbounded pinned-first window.
func WithHistory(factory func() memory.History) Option {
	return func(e *Engine) {
		if factory != nil {
			e.newHistory = factory
		}
	}
}

// WithTemplate replaces the session template. The template must carry the
// tool-block substitution slot if the engine is to advertise its tools.
func WithTemplate(template string) Option {
	return func(e *Engine) {
		e.template = template
	}
}

// WithObserver attaches an observability provider. Without one the engine is
// silent.
func WithObserver(observer observability.Provider) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

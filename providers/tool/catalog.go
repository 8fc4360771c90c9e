package tool

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Catalog manages a collection of tools with thread-safe operations. Lookup
// is case-insensitive; registration order is preserved, because the order in
// which signatures are rendered into the system prompt must match the order
// in which tools were registered.
//
// A Catalog is intended to be populated once at session construction and
// treated as read-only afterwards, which makes it safe to share across
// concurrent sessions.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]*Tool
	order []string
}

// NewCatalog creates a new empty tool catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tools: make(map[string]*Tool),
	}
}

// NewCatalogWithTools creates a new catalog pre-populated with the given tools.
func NewCatalogWithTools(tools ...*Tool) *Catalog {
	catalog := NewCatalog()
	catalog.Register(tools...)
	return catalog
}

// Register adds tools to the catalog. Names are stored lowercase; if a tool
// with the same name already exists it is replaced while keeping its
// original position in the registration order.
func (c *Catalog) Register(tools ...*Tool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		name := strings.ToLower(t.Signature().Name)
		if _, exists := c.tools[name]; !exists {
			c.order = append(c.order, name)
		}
		c.tools[name] = t
	}
}

// Get retrieves a tool by name (case-insensitive).
// Returns the tool and true if found, nil and false otherwise.
func (c *Catalog) Get(name string) (*Tool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, exists := c.tools[strings.ToLower(name)]
	return t, exists
}

// Has checks if a tool with the given name exists (case-insensitive).
func (c *Catalog) Has(name string) bool {
	_, exists := c.Get(name)
	return exists
}

// Size returns the number of tools in the catalog.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}

// Signatures returns the signatures of all registered tools in registration
// order.
func (c *Catalog) Signatures() []Signature {
	c.mu.RLock()
	defer c.mu.RUnlock()

	signatures := make([]Signature, 0, len(c.order))
	for _, name := range c.order {
		signatures = append(signatures, c.tools[name].Signature())
	}
	return signatures
}

// Run dispatches a parsed tool call: it looks the tool up by name, validates
// and coerces the call's arguments against the tool's signature, and invokes
// the handler. A name absent from the catalog fails with [ErrUnknownTool]
// before any callable is invoked; validation failures propagate
// [ErrUnknownArgument] or [ErrTypeCoercion]. The returned result is whatever
// the tool produced, descriptive soft-error strings included.
func (c *Catalog) Run(ctx context.Context, call ToolCall) (any, error) {
	t, exists := c.Get(call.Name)
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, call.Name)
	}

	coerced, err := t.Signature().ValidateAndCoerce(call)
	if err != nil {
		return nil, err
	}

	return t.Call(ctx, Arguments(coerced.Arguments))
}

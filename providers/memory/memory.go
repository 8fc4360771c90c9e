package memory

import "github.com/leofalp/reagent/providers/ai"

// History is the conversation buffer owned by one reasoning session. The
// interface is intentionally minimal: the engine only ever appends and reads
// the full ordered window.
type History interface {
	// Append stores message at the end of the history, evicting an older
	// entry first if the buffer is at capacity.
	Append(message ai.Message)

	// Messages returns the current window as an independent slice, in
	// original relative order.
	Messages() []ai.Message

	// Len returns the number of messages currently stored.
	Len() int
}

package memory

import (
	"sync"

	"github.com/leofalp/reagent/providers/ai"
)

// Unbounded is the capacity sentinel disabling eviction. Any non-positive
// capacity behaves the same way.
const Unbounded = -1

// EvictionPolicy selects which index to drop when a full window needs room
// for one more message. length is the current number of stored messages. A
// returned index outside [0, length) means nothing can be evicted and the
// incoming message is discarded instead.
//
// Only two policies are admissible: [EvictOldest] and [EvictAfterFirst].
// Relevance-based or any other reordering eviction is out of scope.
type EvictionPolicy func(length int) int

// EvictOldest always drops index 0, producing a sliding window of the most
// recent messages.
func EvictOldest(length int) int {
	return 0
}

// EvictAfterFirst always drops index 1, pinning the first message (normally
// the system preamble) for the lifetime of the window while the rest slides.
func EvictAfterFirst(length int) int {
	return 1
}

// Window is a concurrency-safe, slice-backed conversation buffer with an
// optional fixed capacity and an injected eviction policy. It uses RWMutex to
// guard access and is efficient for the engine's read-heavy usage (the full
// window is read once per round).
type Window struct {
	mu       sync.RWMutex
	messages []ai.Message
	capacity int
	evict    EvictionPolicy
}

// Ensure Window implements History at compile time.
var _ History = (*Window)(nil)

// NewWindow returns a bounded sliding-window history seeded with initial
// messages. When full it evicts the oldest message. capacity <= 0 means
// unbounded.
func NewWindow(initial []ai.Message, capacity int) *Window {
	return newWindow(initial, capacity, EvictOldest)
}

// NewPinnedWindow returns a bounded history that never evicts its first
// message: once an entry occupies index 0 it stays there for the lifetime of
// the window, and eviction removes the second-oldest message instead.
// capacity <= 0 means unbounded.
func NewPinnedWindow(initial []ai.Message, capacity int) *Window {
	return newWindow(initial, capacity, EvictAfterFirst)
}

func newWindow(initial []ai.Message, capacity int, evict EvictionPolicy) *Window {
	messages := make([]ai.Message, len(initial))
	copy(messages, initial)
	return &Window{
		messages: messages,
		capacity: capacity,
		evict:    evict,
	}
}

// Append stores message at the end of the window. When the window is at
// capacity the eviction policy picks the entry to drop first; if the policy
// yields no evictable index the incoming message is discarded, preserving
// the capacity invariant.
func (w *Window) Append(message ai.Message) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.capacity > 0 && len(w.messages) >= w.capacity {
		i := w.evict(len(w.messages))
		if i < 0 || i >= len(w.messages) {
			return
		}
		w.messages = append(w.messages[:i], w.messages[i+1:]...)
	}

	w.messages = append(w.messages, message)
}

// Messages returns a copy of the window to avoid external mutation of
// internal state.
func (w *Window) Messages() []ai.Message {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]ai.Message, len(w.messages))
	copy(out, w.messages)
	return out
}

// Len returns the number of messages stored.
func (w *Window) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.messages)
}

package memory

import (
	"fmt"
	"testing"

	"github.com/leofalp/reagent/providers/ai"
)

func msg(i int) ai.Message {
	return ai.Message{Role: ai.RoleUser, Content: fmt.Sprintf("message %d", i)}
}

func contents(messages []ai.Message) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.Content)
	}
	return out
}

func TestWindow_SlidingEviction(t *testing.T) {
	const capacity = 3
	window := NewWindow(nil, capacity)

	// Append capacity+k messages; the window must hold the last 3 in order.
	for i := 0; i < capacity+2; i++ {
		window.Append(msg(i))
	}

	if window.Len() != capacity {
		t.Fatalf("expected length %d, got %d", capacity, window.Len())
	}

	got := contents(window.Messages())
	want := []string{"message 2", "message 3", "message 4"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("window = %v, want %v", got, want)
		}
	}
}

func TestWindow_UnboundedNeverEvicts(t *testing.T) {
	window := NewWindow(nil, Unbounded)
	for i := 0; i < 100; i++ {
		window.Append(msg(i))
	}
	if window.Len() != 100 {
		t.Errorf("unbounded window evicted: length %d", window.Len())
	}
}

func TestWindow_InitialMessagesCopied(t *testing.T) {
	initial := []ai.Message{msg(0), msg(1)}
	window := NewWindow(initial, Unbounded)

	initial[0].Content = "mutated"
	if window.Messages()[0].Content != "message 0" {
		t.Error("window must copy its initial messages")
	}
}

func TestWindow_MessagesReturnsCopy(t *testing.T) {
	window := NewWindow([]ai.Message{msg(0)}, Unbounded)

	out := window.Messages()
	out[0].Content = "mutated"

	if window.Messages()[0].Content != "message 0" {
		t.Error("Messages must return an independent slice")
	}
}

func TestPinnedWindow_FirstMessageNeverEvicted(t *testing.T) {
	const capacity = 3
	window := NewPinnedWindow(nil, capacity)

	first := ai.Message{Role: ai.RoleSystem, Content: "system preamble"}
	window.Append(first)
	for i := 1; i < capacity+4; i++ {
		window.Append(msg(i))
	}

	if window.Len() != capacity {
		t.Fatalf("expected length %d, got %d", capacity, window.Len())
	}

	got := contents(window.Messages())
	if got[0] != "system preamble" {
		t.Errorf("first message was evicted: %v", got)
	}
	want := []string{"system preamble", "message 5", "message 6"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("window = %v, want %v", got, want)
		}
	}
}

func TestPinnedWindow_CapacityOneDiscardsNewcomers(t *testing.T) {
	window := NewPinnedWindow(nil, 1)
	window.Append(msg(0))
	window.Append(msg(1))

	if window.Len() != 1 {
		t.Fatalf("expected length 1, got %d", window.Len())
	}
	if window.Messages()[0].Content != "message 0" {
		t.Errorf("pinned entry must survive: %v", contents(window.Messages()))
	}
}

func TestWindow_CapacityWithInitialMessages(t *testing.T) {
	initial := []ai.Message{msg(0), msg(1), msg(2)}
	window := NewWindow(initial, 3)

	window.Append(msg(3))

	got := contents(window.Messages())
	want := []string{"message 1", "message 2", "message 3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("window = %v, want %v", got, want)
		}
	}
}

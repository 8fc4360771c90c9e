package utils

import (
	"strings"
	"testing"
)

func TestJSONToString(t *testing.T) {
	tests := []struct {
		name   string
		object interface{}
		want   string
	}{
		{"simple map", map[string]int{"a": 1}, `{"a":1}`},
		{"integer-keyed map", map[int]string{2: "b", 1: "a"}, `{"1":"a","2":"b"}`},
		{"string", "hello", `"hello"`},
		{"nil", nil, `null`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := JSONToString(tc.object); got != tc.want {
				t.Errorf("JSONToString(%v) = %q, want %q", tc.object, got, tc.want)
			}
		})
	}
}

func TestJSONToString_Indent(t *testing.T) {
	got := JSONToString(map[string]int{"a": 1}, true)
	if !strings.Contains(got, "\n") {
		t.Errorf("expected indented output, got %q", got)
	}
}

func TestJSONToString_MarshalFailure(t *testing.T) {
	got := JSONToString(make(chan int))
	if !strings.Contains(got, "failed to marshal") {
		t.Errorf("expected error string, got %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	long := strings.Repeat("x", 600)
	got := TruncateString(long, 0)
	if len(got) >= 600 {
		t.Errorf("expected truncation with default max length, got %d chars", len(got))
	}
	if !strings.Contains(got, "total: 600 chars") {
		t.Errorf("expected original length in suffix, got %q", got)
	}

	if got := TruncateString("short", 100); got != "short" {
		t.Errorf("short strings must pass through, got %q", got)
	}
}

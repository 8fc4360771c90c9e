package parse

import "testing"

type callPayload struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
	ID        int            `json:"id"`
}

func TestDecode_ValidJSON(t *testing.T) {
	payload, err := Decode[callPayload](`{"name":"sum","arguments":{"a":1,"b":2},"id":0}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Name != "sum" {
		t.Errorf("expected name sum, got %q", payload.Name)
	}
	if payload.Arguments["a"] != float64(1) {
		t.Errorf("expected argument a=1, got %v", payload.Arguments["a"])
	}
}

func TestDecode_RepairsDamagedJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"single quotes", `{'name': 'sum', 'arguments': {'a': 1}, 'id': 0}`},
		{"unquoted keys", `{name: "sum", arguments: {a: 1}, id: 0}`},
		{"trailing comma", `{"name": "sum", "arguments": {"a": 1}, "id": 0,}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := Decode[callPayload](tc.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if payload.Name != "sum" {
				t.Errorf("expected name sum, got %q", payload.Name)
			}
		})
	}
}

func TestDecode_UnrecoverableInput(t *testing.T) {
	if _, err := Decode[callPayload](`this is not json at all {{{`); err == nil {
		t.Fatal("expected error for unrecoverable input")
	}
}

func TestDecode_Primitives(t *testing.T) {
	n, err := Decode[int]("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
}

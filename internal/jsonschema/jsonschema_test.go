package jsonschema

import (
	"encoding/json"
	"testing"
)

func TestObject_MarksAllPropertiesRequired(t *testing.T) {
	schema := Object(map[string]*Schema{
		"b": Primitive("int"),
		"a": Primitive("str"),
	})

	if schema.Type != "object" {
		t.Errorf("expected object type, got %q", schema.Type)
	}
	if len(schema.Required) != 2 || schema.Required[0] != "a" || schema.Required[1] != "b" {
		t.Errorf("expected sorted required [a b], got %v", schema.Required)
	}
}

func TestSchema_MarshalStable(t *testing.T) {
	schema := Object(map[string]*Schema{
		"x": Primitive("float"),
	})

	encoded, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"type":"object","properties":{"x":{"type":"float"}},"required":["x"]}`
	if string(encoded) != want {
		t.Errorf("got %s, want %s", encoded, want)
	}
}

func TestObject_Empty(t *testing.T) {
	schema := Object(nil)
	if len(schema.Required) != 0 {
		t.Errorf("expected no required properties, got %v", schema.Required)
	}
}

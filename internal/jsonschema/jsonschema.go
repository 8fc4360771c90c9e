package jsonschema

import "sort"

// Schema is a minimal JSON Schema value used to serialize tool signatures for
// the system prompt. Tool parameters are restricted to four primitive kinds,
// so the full JSON Schema vocabulary (composition, references, arrays) is
// deliberately absent.
type Schema struct {
	// Type specifies the data type (e.g. "object", "int", "str", "bool", "float")
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	// Properties of the parameters, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Required lists the property names that must be supplied
	Required []string `json:"required,omitempty"`
}

// Object returns an object schema with the given property schemas. All
// properties are marked required; the tag-protocol coercion layer has no
// notion of optional parameters.
func Object(properties map[string]*Schema) *Schema {
	required := make([]string, 0, len(properties))
	for name := range properties {
		required = append(required, name)
	}
	sort.Strings(required)

	return &Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// Primitive returns a leaf schema carrying only a type tag.
func Primitive(typeName string) *Schema {
	return &Schema{Type: typeName}
}

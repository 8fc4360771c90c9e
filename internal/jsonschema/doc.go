// Package jsonschema provides the minimal JSON Schema value used to describe
// tool parameters when rendering tool signatures into the system prompt.
// Schemas are built explicitly from declared parameter kinds at registration
// time; there is no reflection.
package jsonschema

// Package prompt assembles the role-tagged messages of a reasoning session:
// it wraps content in protocol tags, renders registered tool signatures into
// a JSON block, and substitutes that block into the session template.
package prompt

// Package utils contains small helpers shared across the module: JSON
// stringification that never panics, string truncation for log output, and a
// defer-friendly closer.
package utils

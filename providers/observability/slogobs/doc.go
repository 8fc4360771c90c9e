// Package slogobs provides an [observability.Provider] implementation backed
// by the standard library's log/slog package. Spans are rendered as paired
// start/end debug log lines with a duration, events as debug lines, and the
// Logger methods map directly onto slog levels.
//
// The main entry point is [New]; configure it with [WithLogger], [WithLevel],
// [WithJSON], and [WithOutput].
package slogobs

// Package memory provides the conversation buffer for reasoning sessions: an
// ordered, role-tagged message log with an optional fixed capacity and an
// injected eviction policy.
//
// [NewWindow] builds a plain sliding window (evict oldest); [NewPinnedWindow]
// builds the fixed-first variant whose index-0 entry, once present, is never
// evicted. Both are safe for concurrent use, though the engine accesses a
// session's history strictly sequentially.
package memory

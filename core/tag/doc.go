// Package tag implements the tag protocol: the convention of delimiting
// semantic segments of free-form model text with <tag>...</tag> markers.
// [Extract] pulls all occurrences of one tag kind out of a text blob; [Wrap]
// produces a tagged segment. The recognized tag names are exported as
// constants ([Question], [Thought], [ToolCall], [Observation], [Response]).
package tag

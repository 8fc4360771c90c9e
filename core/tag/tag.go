package tag

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Recognized tag names of the wire protocol. The set is fixed: model output
// is free to contain other angle-bracketed text, but only these names carry
// protocol meaning.
const (
	Question    = "question"    // wraps the user's task on the first turn
	Thought     = "thought"     // free-form reasoning, informational only
	ToolCall    = "tool_call"   // JSON payload requesting a tool execution
	Observation = "observation" // serialized tool results fed back to the model
	Response    = "response"    // the final answer, terminating the session
)

// Result holds the outcome of extracting one tag kind from one text blob.
// It is created fresh per extraction call and never retained.
type Result struct {
	// Content contains the trimmed inner text of each match, in
	// left-to-right order of appearance.
	Content []string
	// Found reports whether at least one match exists.
	Found bool
}

// patterns caches one compiled expression per tag name. Extraction runs once
// or more per round, always with names from a small fixed set, so compiling
// on first use and caching is enough.
var patterns struct {
	mu sync.RWMutex
	m  map[string]*regexp.Regexp
}

func pattern(name string) *regexp.Regexp {
	patterns.mu.RLock()
	re, ok := patterns.m[name]
	patterns.mu.RUnlock()
	if ok {
		return re
	}

	patterns.mu.Lock()
	defer patterns.mu.Unlock()
	if patterns.m == nil {
		patterns.m = make(map[string]*regexp.Regexp)
	}
	if re, ok = patterns.m[name]; ok {
		return re
	}

	quoted := regexp.QuoteMeta(name)
	// (?s) lets matches span newlines; the non-greedy body stops at the
	// nearest closing tag.
	re = regexp.MustCompile(fmt.Sprintf(`(?s)<%s>(.*?)</%s>`, quoted, quoted))
	patterns.m[name] = re
	return re
}

// Extract returns every non-overlapping substring of text enclosed between
// <name> and </name>, in order of appearance. Matches may span multiple
// lines; each is trimmed of leading and trailing whitespace. Unmatched or
// partial tags are ignored silently. Extract is a pure function of its
// inputs and is safe for concurrent use.
func Extract(text, name string) Result {
	matches := pattern(name).FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return Result{Content: []string{}, Found: false}
	}

	content := make([]string, 0, len(matches))
	for _, match := range matches {
		content = append(content, strings.TrimSpace(match[1]))
	}
	return Result{Content: content, Found: true}
}

// Wrap encloses content between <name> and </name>. An empty name returns
// content verbatim.
func Wrap(content, name string) string {
	if name == "" {
		return content
	}
	return fmt.Sprintf("<%s>%s</%s>", name, content, name)
}

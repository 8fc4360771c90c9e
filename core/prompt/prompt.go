package prompt

import (
	"strings"

	"github.com/leofalp/reagent/core/tag"
	"github.com/leofalp/reagent/internal/utils"
	"github.com/leofalp/reagent/providers/ai"
	"github.com/leofalp/reagent/providers/tool"
)

// ToolsPlaceholder is the single substitution slot of a session template. The
// rendered tool block replaces its first occurrence; any further occurrences
// are left untouched.
const ToolsPlaceholder = "{{tools}}"

// DefaultTemplate instructs the model to follow the tag protocol. It carries
// exactly one ToolsPlaceholder slot.
const DefaultTemplate = `You are an assistant that solves tasks by reasoning step by step and calling tools when needed.

You have access to the following tools, each described by a JSON signature:

{{tools}}

Protocol, to be followed strictly on every turn:
1. Think about the task inside <thought>...</thought> tags.
2. To use a tool, emit <tool_call>{"name": "<tool name>", "arguments": {"<param>": <value>}, "id": <integer>}</tool_call>. The id must be unique within your message. You may emit several tool_call tags in one message; they run in order.
3. Tool results come back in the next message inside <observation>...</observation> tags, as a JSON object mapping each id to its result.
4. When you know the final answer, emit it inside <response>...</response> tags and nothing else.

Never invent observations. Never answer inside a thought tag. The only way to finish is a response tag.`

// Build attaches role to content, wrapping content as <tagName>content</tagName>
// first when tagName is non-empty.
func Build(content string, role ai.Role, tagName string) ai.Message {
	return ai.Message{
		Role:    role,
		Content: tag.Wrap(content, tagName),
	}
}

// RenderToolBlock serializes each signature to its stable JSON form and joins
// them with newlines, preserving the given order. An empty slice renders to
// an empty string.
func RenderToolBlock(signatures []tool.Signature) string {
	blocks := make([]string, 0, len(signatures))
	for _, signature := range signatures {
		blocks = append(blocks, utils.JSONToString(signature.Schema()))
	}
	return strings.Join(blocks, "\n")
}

// Render substitutes the rendered tool block into the first ToolsPlaceholder
// occurrence of template. Substitution happens exactly once; a template
// without the placeholder is returned unchanged.
func Render(template string, signatures []tool.Signature) string {
	return strings.Replace(template, ToolsPlaceholder, RenderToolBlock(signatures), 1)
}

// SystemPrompt builds the session's system message from template and the
// registered tool signatures.
func SystemPrompt(template string, signatures []tool.Signature) ai.Message {
	return Build(Render(template, signatures), ai.RoleSystem, "")
}

package ai

/*
	##### PROVIDER INPUT #####
*/

// CompletionRequest represents a single request to a language model.
type CompletionRequest struct {
	Model    string    `json:"model,omitempty"` // Model name or identifier
	Messages []Message `json:"messages"`        // Full conversation in order, system prompt included
}

// Message represents a single message in a conversation.
// Once appended to a history it is treated as immutable; insertion order is
// the conversation order and the only ordering guarantee.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

/*
	##### ENUMS #####
*/

// Role represents the author of a message; compatible with string.
type Role string

const (
	RoleSystem    Role = "system"    // System instructions/configuration
	RoleUser      Role = "user"      // End-user input (questions, tool observations)
	RoleAssistant Role = "assistant" // Raw model output
)

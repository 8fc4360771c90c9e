package openai

import "github.com/leofalp/reagent/providers/ai"

// completionRequest is the wire form of a chat-completions request. Only the
// fields the engine needs are modeled; the protocol carries plain text, so
// native tool-calling fields are deliberately absent.
type completionRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message message `json:"message"`
}

func messagesFromGeneric(messages []ai.Message) []message {
	out := make([]message, 0, len(messages))
	for _, m := range messages {
		out = append(out, message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}

// Package openai implements the completion boundary against the OpenAI
// chat-completions API. Any OpenAI-compatible endpoint works by overriding
// the base URL, which covers most local inference servers as well.
package openai

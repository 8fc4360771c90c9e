package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/leofalp/reagent/internal/utils"
	"github.com/leofalp/reagent/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	defaultModel            = "gpt-4o-mini"
	chatCompletionsEndpoint = "/chat/completions"
)

// Provider implements the completion boundary against the OpenAI
// chat-completions API, or any API that speaks the same wire format.
type Provider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var _ ai.Provider = (*Provider)(nil)

// New creates a provider configured from the environment: OPENAI_API_KEY and,
// optionally, OPENAI_API_BASE_URL.
func New() *Provider {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		model:   defaultModel,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider.
func (p *Provider) WithAPIKey(apiKey string) *Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.baseURL = baseURL
	return p
}

// WithModel sets the default model used when a request leaves Model empty.
func (p *Provider) WithModel(model string) *Provider {
	p.model = model
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *Provider) WithHttpClient(httpClient *http.Client) *Provider {
	p.client = httpClient
	return p
}

// Complete implements [ai.Provider]. Every failure mode of the HTTP exchange
// is wrapped as an [ai.TransportError]: the engine never retries internally,
// so the caller must be able to recognize transport failures uniformly.
func (p *Provider) Complete(ctx context.Context, request ai.CompletionRequest) (string, error) {
	if p.apiKey == "" {
		return "", ai.NewTransportError("chat completion", fmt.Errorf("API key is not set"))
	}

	model := request.Model
	if model == "" {
		model = p.model
	}

	body, err := json.Marshal(completionRequest{
		Model:    model,
		Messages: messagesFromGeneric(request.Messages),
	})
	if err != nil {
		return "", ai.NewTransportError("chat completion", fmt.Errorf("encode request: %w", err))
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+chatCompletionsEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", ai.NewTransportError("chat completion", err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Authorization", "Bearer "+p.apiKey)

	httpResponse, err := p.client.Do(httpRequest)
	if err != nil {
		return "", ai.NewTransportError("chat completion", err)
	}
	defer utils.CloseWithLog(httpResponse.Body)

	payload, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return "", ai.NewTransportError("chat completion", fmt.Errorf("read response: %w", err))
	}

	if httpResponse.StatusCode != http.StatusOK {
		return "", ai.NewTransportError("chat completion",
			fmt.Errorf("unexpected status %d: %s", httpResponse.StatusCode, utils.TruncateString(string(payload), 200)))
	}

	var decoded completionResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", ai.NewTransportError("chat completion", fmt.Errorf("decode response: %w", err))
	}
	if len(decoded.Choices) == 0 {
		return "", ai.NewTransportError("chat completion", fmt.Errorf("no choices in response"))
	}

	return decoded.Choices[0].Message.Content, nil
}

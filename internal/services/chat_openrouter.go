package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultOpenRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterModel    = "google/gemini-pro"
	maxChatResponseBytes      = 4 * 1024 * 1024
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type OpenRouterConfig struct {
	APIKey      string
	Endpoint    string
	Model       string
	SiteURL     string
	SiteName    string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// OpenRouterProvider talks to an OpenAI-compatible chat completions endpoint.
type OpenRouterProvider struct {
	config OpenRouterConfig
	client HTTPClient
}

func NewOpenRouterProvider(config OpenRouterConfig, client HTTPClient) (*OpenRouterProvider, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		return nil, errors.New("openrouter api key is required")
	}
	config.Endpoint = normalizeChatCompletionsEndpoint(config.Endpoint)
	if strings.TrimSpace(config.Model) == "" {
		config.Model = defaultOpenRouterModel
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = 1000
	}
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}
	return &OpenRouterProvider{config: config, client: client}, nil
}

type openRouterRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// Upstreams disagree on where the reply lives; every known shape is accepted.
type chatCompletionEnvelope struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Text string `json:"text"`
	} `json:"choices"`
	Content string `json:"content"`
	Message *struct {
		Content string `json:"content"`
	} `json:"message"`
	Text  string `json:"text"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (provider *OpenRouterProvider) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	body, err := json.Marshal(openRouterRequest{
		Model:       provider.config.Model,
		Messages:    messages,
		Temperature: provider.config.Temperature,
		MaxTokens:   provider.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, provider.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+provider.config.APIKey)
	if provider.config.SiteURL != "" {
		req.Header.Set("HTTP-Referer", provider.config.SiteURL)
	}
	if provider.config.SiteName != "" {
		req.Header.Set("X-Title", provider.config.SiteName)
	}

	resp, err := provider.client.Do(req)
	if err != nil {
		return "", &ChatError{Status: http.StatusBadGateway, Message: "failed to connect to AI service", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxChatResponseBytes))
	if err != nil {
		return "", &ChatError{Status: http.StatusBadGateway, Message: "failed to read AI response", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ChatError{
			Status:         http.StatusBadGateway,
			Message:        fmt.Sprintf("API request failed with status %d", resp.StatusCode),
			UpstreamStatus: resp.StatusCode,
		}
	}

	content, err := ExtractAssistantContent(raw)
	if err != nil {
		return "", &ChatError{Status: http.StatusBadGateway, Message: "invalid AI response", UpstreamStatus: resp.StatusCode, Err: err}
	}
	return content, nil
}

// ExtractAssistantContent pulls the reply text out of a chat completion body,
// trying choices[0].message.content, content, message.content and text.
func ExtractAssistantContent(raw []byte) (string, error) {
	var envelope chatCompletionEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if envelope.Error != nil && strings.TrimSpace(envelope.Error.Message) != "" {
		return "", fmt.Errorf("upstream error: %s", envelope.Error.Message)
	}

	if len(envelope.Choices) > 0 {
		if content := strings.TrimSpace(envelope.Choices[0].Message.Content); content != "" {
			return content, nil
		}
		if text := strings.TrimSpace(envelope.Choices[0].Text); text != "" {
			return text, nil
		}
	}
	if content := strings.TrimSpace(envelope.Content); content != "" {
		return content, nil
	}
	if envelope.Message != nil {
		if content := strings.TrimSpace(envelope.Message.Content); content != "" {
			return content, nil
		}
	}
	if text := strings.TrimSpace(envelope.Text); text != "" {
		return text, nil
	}
	return "", errors.New("no completion returned")
}

func normalizeChatCompletionsEndpoint(base string) string {
	endpoint := strings.TrimRight(strings.TrimSpace(base), "/")
	switch {
	case endpoint == "":
		return defaultOpenRouterEndpoint
	case strings.HasSuffix(endpoint, "/chat/completions"):
		return endpoint
	case strings.HasSuffix(endpoint, "/v1"):
		return endpoint + "/chat/completions"
	default:
		return endpoint + "/v1/chat/completions"
	}
}

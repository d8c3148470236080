package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

func NewGeminiProvider(ctx context.Context, apiKey string, model string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: 0.7,
		maxTokens:   1000,
	}, nil
}

// Complete maps system turns to the system instruction and assistant turns
// to the model role.
func (provider *GeminiProvider) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	systemParts := make([]string, 0, 1)
	contents := make([]*genai.Content, 0, len(messages))
	for _, message := range messages {
		switch message.Role {
		case ChatRoleSystem:
			systemParts = append(systemParts, message.Content)
		case ChatRoleAssistant:
			contents = append(contents, genai.NewContentFromText(message.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(message.Content, genai.RoleUser))
		}
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(provider.temperature),
		MaxOutputTokens: provider.maxTokens,
	}
	if len(systemParts) > 0 {
		config.SystemInstruction = genai.NewContentFromText(strings.Join(systemParts, "\n\n"), genai.RoleUser)
	}

	result, err := provider.client.Models.GenerateContent(ctx, provider.model, contents, config)
	if err != nil {
		return "", &ChatError{Status: http.StatusBadGateway, Message: "failed to connect to AI service", Err: err}
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", &ChatError{Status: http.StatusBadGateway, Message: "no completion returned"}
	}
	return text, nil
}

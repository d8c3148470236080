package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

const (
	maxChatHistoryMessages = 30
	maxChatMessageLength   = 4000
	chatQuotaWindow        = 24 * time.Hour
)

const healthAssistantPrompt = `You are a health assistant that provides information about natural remedies and general health advice.
Important rules:
- Always provide disclaimers for medical advice
- Recommend seeking professional medical help for serious conditions
- Focus on evidence-based natural remedies
- Be clear about the limitations of natural treatments
- If the user describes symptoms that could be serious, advise them to seek immediate medical attention
- Format your responses with clear sections and bullet points when appropriate
- Be empathetic and supportive in your responses`

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatProvider sends a full conversation, system message included, to an LLM
// and returns the assistant reply.
type ChatProvider interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

// ChatError carries the HTTP status the caller should surface.
type ChatError struct {
	Status         int
	Message        string
	UpstreamStatus int
	Err            error
}

func (err *ChatError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("%s: %v", err.Message, err.Err)
	}
	return err.Message
}

func (err *ChatError) Unwrap() error {
	return err.Err
}

type ChatService struct {
	provider   ChatProvider
	quota      *attemptLimiter
	dailyLimit int
	now        func() time.Time
	logger     *zap.Logger
}

// NewChatService builds the chat proxy. A nil provider leaves the assistant
// unconfigured; dailyLimit <= 0 disables the per-profile quota.
func NewChatService(provider ChatProvider, dailyLimit int, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		provider:   provider,
		quota:      newAttemptLimiter(),
		dailyLimit: dailyLimit,
		now:        time.Now,
		logger:     logger,
	}
}

func (service *ChatService) Configured() bool {
	return service != nil && service.provider != nil
}

func SystemPrompt() string {
	return healthAssistantPrompt
}

// Reply forwards the conversation with the health-assistant system prompt
// prepended. Failures are returned as *ChatError; nothing is retried.
func (service *ChatService) Reply(ctx context.Context, profileID string, messages []ChatMessage) (string, error) {
	if !service.Configured() {
		return "", &ChatError{Status: http.StatusServiceUnavailable, Message: "chat assistant is not configured"}
	}

	conversation, err := NormalizeChatMessages(messages)
	if err != nil {
		return "", &ChatError{Status: http.StatusBadRequest, Message: err.Error()}
	}

	now := service.now()
	if service.dailyLimit > 0 {
		if !service.quota.allow(profileID, now, service.dailyLimit, chatQuotaWindow) {
			return "", &ChatError{Status: http.StatusTooManyRequests, Message: "daily chat limit reached"}
		}
	}

	outbound := make([]ChatMessage, 0, len(conversation)+1)
	outbound = append(outbound, ChatMessage{Role: ChatRoleSystem, Content: healthAssistantPrompt})
	outbound = append(outbound, conversation...)

	started := service.now()
	reply, err := service.provider.Complete(ctx, outbound)
	if err != nil {
		service.logger.Warn("chat completion failed", zap.String("profile_id", profileID), zap.Error(err))
		var chatErr *ChatError
		if errors.As(err, &chatErr) {
			return "", chatErr
		}
		return "", &ChatError{Status: http.StatusBadGateway, Message: "failed to connect to AI service", Err: err}
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", &ChatError{Status: http.StatusBadGateway, Message: "empty response from AI service"}
	}

	service.logger.Debug("chat completion finished",
		zap.String("profile_id", profileID),
		zap.Int("messages", len(outbound)),
		zap.Duration("elapsed", service.now().Sub(started)),
	)
	return reply, nil
}

// NormalizeChatMessages validates caller-supplied turns and keeps the most
// recent ones. Callers may not inject system messages.
func NormalizeChatMessages(messages []ChatMessage) ([]ChatMessage, error) {
	if len(messages) == 0 {
		return nil, errors.New("messages are required")
	}

	normalized := make([]ChatMessage, 0, len(messages))
	for _, message := range messages {
		role := strings.ToLower(strings.TrimSpace(message.Role))
		if role != ChatRoleUser && role != ChatRoleAssistant {
			return nil, fmt.Errorf("unsupported message role %q", message.Role)
		}
		content := strings.TrimSpace(message.Content)
		if content == "" {
			return nil, errors.New("message content is required")
		}
		if len(content) > maxChatMessageLength {
			return nil, errors.New("message content is too long")
		}
		normalized = append(normalized, ChatMessage{Role: role, Content: content})
	}

	if len(normalized) > maxChatHistoryMessages {
		normalized = normalized[len(normalized)-maxChatHistoryMessages:]
	}
	return normalized, nil
}

// RemainingQuota reports how many chat requests profileID may still send in
// the current window, or -1 when no quota applies.
func (service *ChatService) RemainingQuota(profileID string) int {
	if service.dailyLimit <= 0 {
		return -1
	}
	return service.quota.remaining(profileID, service.now(), service.dailyLimit, chatQuotaWindow)
}

package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/services"
)

type chatChoice struct {
	Message services.ChatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// Chat forwards the conversation to the configured assistant and answers in
// the chat-completions shape the client already understands.
func (handler *Handler) Chat(c *fiber.Ctx) error {
	var input chatInput
	if err := decodeJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	messages := make([]services.ChatMessage, 0, len(input.Messages))
	for _, message := range input.Messages {
		messages = append(messages, services.ChatMessage{Role: message.Role, Content: message.Content})
	}

	profileID := currentProfileID(c)
	reply, err := handler.chat.Reply(c.UserContext(), profileID, messages)
	if remaining := handler.chat.RemainingQuota(profileID); remaining >= 0 {
		c.Set("X-Chat-Remaining", strconv.Itoa(remaining))
	}
	if err != nil {
		var chatErr *services.ChatError
		if errors.As(err, &chatErr) {
			return apiError(c, chatErr.Status, chatErr.Message)
		}
		return apiError(c, fiber.StatusBadGateway, "failed to connect to AI service")
	}

	return c.JSON(chatResponse{
		Choices: []chatChoice{{
			Message: services.ChatMessage{Role: services.ChatRoleAssistant, Content: reply},
		}},
	})
}

package api

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/models"
)

type profileExport struct {
	ExportedAt string                    `json:"exportedAt"`
	State      models.HealthProfileState `json:"state"`
}

func BuildProfileExport(state models.HealthProfileState, now time.Time) ([]byte, error) {
	return json.MarshalIndent(profileExport{
		ExportedAt: now.Format(time.RFC3339),
		State:      state,
	}, "", "  ")
}

func (handler *Handler) ExportProfile(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}

	now := handler.now().In(handler.location)
	serialized, err := BuildProfileExport(store.State(), now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now))
	return c.Send(serialized)
}

package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentStore(c *fiber.Ctx) (*services.ProfileStore, bool) {
	store, ok := c.Locals(contextStoreKey).(*services.ProfileStore)
	return store, ok && store != nil
}

func currentProfileID(c *fiber.Ctx) string {
	profileID, _ := c.Locals(contextProfileKey).(string)
	return profileID
}

// decodeJSONBody rejects empty bodies and unknown fields.
func decodeJSONBody(c *fiber.Ctx, target interface{}) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("request body is required")
	}

	decoder := json.NewDecoder(strings.NewReader(string(body)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid request body")
	}
	return nil
}

func setAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set(fiber.HeaderCacheControl, "no-store")
}

func buildExportFilename(now time.Time) string {
	return fmt.Sprintf("remedywhisper-profile-%s.json", now.Format("2006-01-02"))
}

package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "not found")
}

func (handler *Handler) storeFailure(c *fiber.Ctx, action string, err error) error {
	handler.logger.Sugar().Errorw("profile store failure", "action", action, "profile_id", currentProfileID(c), "error", err)
	return apiError(c, fiber.StatusInternalServerError, "failed to "+action)
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/services"
)

func (handler *Handler) ListRemedies(c *fiber.Ctx) error {
	return c.JSON(services.SearchRemedies(c.Query("q"), c.Query("category")))
}

func (handler *Handler) ListRemedyCategories(c *fiber.Ctx) error {
	return c.JSON(services.RemedyCategories())
}

// GetRemedy returns one remedy and counts it as viewed for the caller.
func (handler *Handler) GetRemedy(c *fiber.Ctx) error {
	remedy, ok := services.RemedyByID(c.Params("id"))
	if !ok {
		return apiError(c, fiber.StatusNotFound, "remedy not found")
	}

	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}
	if _, err := store.RecordRemedyView(remedy.ID); err != nil {
		return handler.storeFailure(c, "record remedy view", err)
	}
	return c.JSON(remedy)
}

func (handler *Handler) ListConditions(c *fiber.Ctx) error {
	return c.JSON(services.Conditions())
}

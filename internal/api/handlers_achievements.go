package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/services"
)

func (handler *Handler) ListAchievements(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}
	return c.JSON(services.AchievementStatuses(store.State().Profile))
}

func (handler *Handler) GrantAchievement(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}

	var input achievementInput
	if err := decodeJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	key, err := services.ParseAchievementKey(input.Key)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unknown achievement")
	}

	state, err := store.GrantAchievement(key)
	if errors.Is(err, services.ErrUnknownAchievement) {
		return apiError(c, fiber.StatusBadRequest, "unknown achievement")
	}
	if err != nil {
		return handler.storeFailure(c, "grant achievement", err)
	}
	return c.JSON(services.AchievementStatuses(state.Profile))
}

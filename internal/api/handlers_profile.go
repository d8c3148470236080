package api

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}
	return c.JSON(store.State())
}

// UpdateProfile patches the fields present in the body. Achievements are
// not accepted here.
func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}

	var update services.ProfileUpdate
	if err := decodeJSONBody(c, &update); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if len(trimmed) > maxTextFieldLength {
			return apiError(c, fiber.StatusBadRequest, "name is too long")
		}
		update.Name = &trimmed
	}
	if update.Allergies != nil {
		cleaned := cleanStringList(*update.Allergies)
		update.Allergies = &cleaned
	}
	if update.Conditions != nil {
		cleaned := cleanStringList(*update.Conditions)
		update.Conditions = &cleaned
	}
	if update.Preferences != nil {
		for _, remedyID := range *update.Preferences {
			if !services.IsKnownRemedy(remedyID) {
				return apiError(c, fiber.StatusBadRequest, "unknown remedy in preferences")
			}
		}
		cleaned := cleanStringList(*update.Preferences)
		update.Preferences = &cleaned
	}
	if update.MyIngredients != nil {
		cleaned := cleanStringList(*update.MyIngredients)
		update.MyIngredients = &cleaned
	}

	state, err := store.UpdateProfile(update)
	if err != nil {
		return handler.storeFailure(c, "update profile", err)
	}
	return c.JSON(state)
}

func (handler *Handler) AddFavorite(c *fiber.Ctx) error {
	return handler.changeFavorite(c, true)
}

func (handler *Handler) RemoveFavorite(c *fiber.Ctx) error {
	return handler.changeFavorite(c, false)
}

func (handler *Handler) changeFavorite(c *fiber.Ctx, favorite bool) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}

	state, err := store.SetFavorite(c.Params("id"), favorite)
	if errors.Is(err, services.ErrUnknownRemedy) {
		return apiError(c, fiber.StatusNotFound, "remedy not found")
	}
	if err != nil {
		return handler.storeFailure(c, "update favorites", err)
	}
	return c.JSON(state)
}

func (handler *Handler) AddIngredient(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}

	var input ingredientInput
	if err := decodeJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "ingredient name is required")
	}
	if len(name) > maxTextFieldLength {
		return apiError(c, fiber.StatusBadRequest, "ingredient name is too long")
	}

	state, err := store.AddIngredient(name)
	if err != nil {
		return handler.storeFailure(c, "add ingredient", err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

func (handler *Handler) RemoveIngredient(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}

	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || strings.TrimSpace(name) == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid ingredient name")
	}

	state, err := store.RemoveIngredient(name)
	if err != nil {
		return handler.storeFailure(c, "remove ingredient", err)
	}
	return c.JSON(state)
}

func (handler *Handler) ClearProfile(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}

	state, err := store.ClearAllData()
	if err != nil {
		return handler.storeFailure(c, "clear profile", err)
	}
	handler.directory.Forget(currentProfileID(c))
	return c.JSON(state)
}

func cleanStringList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		key := strings.ToLower(value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, value)
	}
	return cleaned
}

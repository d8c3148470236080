package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/models"
	"github.com/terraincognita07/remedywhisper/internal/services"
)

func (handler *Handler) ListReminders(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}
	return c.JSON(store.State().Reminders)
}

func (handler *Handler) CreateReminder(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}

	var input models.Reminder
	if err := decodeJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	reminder, err := normalizeReminder(input)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	current := store.State().Reminders
	if reminder.ID != "" && hasReminder(current, reminder.ID) {
		return apiError(c, fiber.StatusConflict, "reminder already exists")
	}
	if len(current) >= maxRemindersPerProfile {
		return apiError(c, fiber.StatusUnprocessableEntity, "reminder limit reached")
	}

	state, err := store.AddReminder(reminder)
	if err != nil {
		return handler.storeFailure(c, "save reminder", err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

func (handler *Handler) UpdateReminder(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}
	id := c.Params("id")
	if !hasReminder(store.State().Reminders, id) {
		return apiError(c, fiber.StatusNotFound, "reminder not found")
	}

	var update services.ReminderUpdate
	if err := decodeJSONBody(c, &update); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" || len(title) > maxTextFieldLength {
			return apiError(c, fiber.StatusBadRequest, "invalid reminder title")
		}
		update.Title = &title
	}
	if update.Time != nil {
		clock, err := normalizeReminderTime(*update.Time)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		update.Time = &clock
	}
	if update.Days != nil {
		days, err := normalizeWeekdays(*update.Days)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		update.Days = &days
	}

	state, err := store.UpdateReminder(id, update)
	if err != nil {
		return handler.storeFailure(c, "update reminder", err)
	}
	return c.JSON(state)
}

func (handler *Handler) DeleteReminder(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}
	id := c.Params("id")
	if !hasReminder(store.State().Reminders, id) {
		return apiError(c, fiber.StatusNotFound, "reminder not found")
	}

	state, err := store.DeleteReminder(id)
	if err != nil {
		return handler.storeFailure(c, "delete reminder", err)
	}
	return c.JSON(state)
}

func hasReminder(reminders []models.Reminder, id string) bool {
	for _, reminder := range reminders {
		if reminder.ID == id {
			return true
		}
	}
	return false
}

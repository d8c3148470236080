package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/models"
)

func (handler *Handler) ListHistory(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}
	return c.JSON(store.State().SymptomHistory)
}

func (handler *Handler) AddHistoryRecord(c *fiber.Ctx) error {
	store, ok := currentStore(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "profile session required")
	}

	var input symptomRecordInput
	if err := decodeJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	symptoms, err := normalizeDetailedSymptoms(input.Symptoms)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	notes, err := validateNotes(input.Notes)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	record := models.SymptomHistory{Symptoms: symptoms, Notes: notes}
	if input.Date != nil {
		if input.Date.After(handler.now()) {
			return apiError(c, fiber.StatusBadRequest, "date must not be in the future")
		}
		record.Date = input.Date.In(handler.location)
	}

	state, err := store.AddSymptomRecord(record)
	if err != nil {
		return handler.storeFailure(c, "save symptom record", err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

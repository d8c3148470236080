package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/models"
	"github.com/terraincognita07/remedywhisper/internal/services"
)

type symptomCheckResponse struct {
	services.SymptomCheckResult
	Saved        bool                    `json:"saved"`
	Achievements []models.AchievementKey `json:"achievements,omitempty"`
}

// CheckSymptoms ranks conditions for the submitted symptoms using the
// caller's allergies and conditions. With save=true (body or query) the
// session is appended to the symptom history.
func (handler *Handler) CheckSymptoms(c *fiber.Ctx) error {
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

	state := store.State()
	response := symptomCheckResponse{
		SymptomCheckResult: services.CheckSession(symptoms, state.Profile),
	}

	if input.Save || c.QueryBool("save") {
		record := models.SymptomHistory{Symptoms: symptoms, Notes: notes}
		if input.Date != nil {
			record.Date = input.Date.In(handler.location)
		}
		state, err = store.AddSymptomRecord(record)
		if err != nil {
			return handler.storeFailure(c, "save symptom record", err)
		}
		response.Saved = true
		response.Achievements = state.Profile.Achievements
	}

	return c.JSON(response)
}

func (handler *Handler) CheckEmergency(c *fiber.Ctx) error {
	var input emergencyInput
	if err := decodeJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{
		"emergency": services.CheckForEmergencySymptoms(input.Symptoms),
	})
}

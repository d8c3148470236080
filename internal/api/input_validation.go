package api

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/remedywhisper/internal/models"
)

const (
	maxSymptomsPerCheck = 50
	maxNotesLength      = 2000
	maxTextFieldLength  = 200

	maxRemindersPerProfile = 20
)

var weekdayTags = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type symptomRecordInput struct {
	Date     *time.Time               `json:"date"`
	Symptoms []models.DetailedSymptom `json:"symptoms"`
	Notes    string                   `json:"notes"`
	Save     bool                     `json:"save"`
}

type emergencyInput struct {
	Symptoms []string `json:"symptoms"`
}

type ingredientInput struct {
	Name string `json:"name"`
}

type achievementInput struct {
	Key string `json:"key"`
}

type chatInput struct {
	Messages []chatMessageInput `json:"messages"`
}

type chatMessageInput struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// normalizeDetailedSymptoms trims names, drops blank entries and checks the
// optional intensity and duration against their closed sets.
func normalizeDetailedSymptoms(raw []models.DetailedSymptom) ([]models.DetailedSymptom, error) {
	if len(raw) > maxSymptomsPerCheck {
		return nil, errors.New("too many symptoms")
	}

	symptoms := make([]models.DetailedSymptom, 0, len(raw))
	for _, symptom := range raw {
		symptom.Name = strings.TrimSpace(symptom.Name)
		if symptom.Name == "" {
			continue
		}
		if len(symptom.Name) > maxTextFieldLength {
			return nil, errors.New("symptom name is too long")
		}
		symptom.Intensity = strings.ToLower(strings.TrimSpace(symptom.Intensity))
		if symptom.Intensity != "" && !models.IsValidIntensity(symptom.Intensity) {
			return nil, errors.New("invalid symptom intensity")
		}
		symptom.Duration = strings.TrimSpace(symptom.Duration)
		if symptom.Duration != "" && !models.IsValidDuration(symptom.Duration) {
			return nil, errors.New("invalid symptom duration")
		}
		symptoms = append(symptoms, symptom)
	}

	if len(symptoms) == 0 {
		return nil, errors.New("at least one symptom is required")
	}
	return symptoms, nil
}

func validateNotes(notes string) (string, error) {
	notes = strings.TrimSpace(notes)
	if len(notes) > maxNotesLength {
		return "", errors.New("notes are too long")
	}
	return notes, nil
}

func normalizeReminder(reminder models.Reminder) (models.Reminder, error) {
	reminder.ID = strings.TrimSpace(reminder.ID)
	reminder.Title = strings.TrimSpace(reminder.Title)
	reminder.Description = strings.TrimSpace(reminder.Description)
	if reminder.Title == "" {
		return models.Reminder{}, errors.New("reminder title is required")
	}
	if len(reminder.Title) > maxTextFieldLength || len(reminder.Description) > maxNotesLength {
		return models.Reminder{}, errors.New("reminder text is too long")
	}

	clock, err := normalizeReminderTime(reminder.Time)
	if err != nil {
		return models.Reminder{}, err
	}
	reminder.Time = clock

	days, err := normalizeWeekdays(reminder.Days)
	if err != nil {
		return models.Reminder{}, err
	}
	reminder.Days = days
	return reminder, nil
}

func normalizeReminderTime(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	parsed, err := time.Parse("15:04", raw)
	if err != nil || len(raw) != len("15:04") {
		return "", errors.New("reminder time must be HH:MM")
	}
	return parsed.Format("15:04"), nil
}

// normalizeWeekdays maps "Mon" or "Monday" style names to Mon..Sun tags,
// de-duplicated in week order.
func normalizeWeekdays(raw []string) ([]string, error) {
	selected := make(map[string]struct{}, len(raw))
	for _, value := range raw {
		tag, ok := weekdayTag(value)
		if !ok {
			return nil, errors.New("invalid reminder day")
		}
		selected[tag] = struct{}{}
	}

	days := make([]string, 0, len(selected))
	for _, tag := range weekdayTags {
		if _, ok := selected[tag]; ok {
			days = append(days, tag)
		}
	}
	return days, nil
}

func weekdayTag(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for day := time.Sunday; day <= time.Saturday; day++ {
		full := day.String()
		if strings.EqualFold(value, full) || strings.EqualFold(value, full[:3]) {
			return full[:3], true
		}
	}
	return "", false
}

package services

import (
	"errors"

	"github.com/terraincognita07/remedywhisper/internal/models"
)

var ErrUnknownAchievement = errors.New("unknown achievement")

const (
	viewedRemediesForAchievement = 5
	trackedDaysForAchievement    = 7
)

type AchievementStatus struct {
	models.AchievementDefinition
	Unlocked bool `json:"unlocked"`
}

func ParseAchievementKey(raw string) (models.AchievementKey, error) {
	key := models.AchievementKey(raw)
	if !models.IsKnownAchievement(key) {
		return "", ErrUnknownAchievement
	}
	return key, nil
}

// AchievementStatuses pairs every definition with whether the profile holds it.
func AchievementStatuses(profile models.HealthProfile) []AchievementStatus {
	definitions := models.AchievementDefinitions()
	statuses := make([]AchievementStatus, 0, len(definitions))
	for _, definition := range definitions {
		statuses = append(statuses, AchievementStatus{
			AchievementDefinition: definition,
			Unlocked:              hasAchievement(profile, definition.Key),
		})
	}
	return statuses
}

func hasAchievement(profile models.HealthProfile, key models.AchievementKey) bool {
	for _, held := range profile.Achievements {
		if held == key {
			return true
		}
	}
	return false
}

// grantAchievement appends key once; it reports whether the set changed.
func grantAchievement(state *models.HealthProfileState, key models.AchievementKey) bool {
	if hasAchievement(state.Profile, key) {
		return false
	}
	state.Profile.Achievements = append(state.Profile.Achievements, key)
	return true
}

func distinctHistoryDays(history []models.SymptomHistory) int {
	days := make(map[string]struct{}, len(history))
	for _, record := range history {
		days[record.Date.Format("2006-01-02")] = struct{}{}
	}
	return len(days)
}

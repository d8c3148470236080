package models

type AchievementKey string

const (
	AchievementFirstSymptomCheck   AchievementKey = "FIRST_SYMPTOM_CHECK"
	AchievementFirstFavorite       AchievementKey = "FIRST_FAVORITE"
	AchievementViewedFiveRemedies  AchievementKey = "VIEWED_5_REMEDIES"
	AchievementTrackedSymptomsWeek AchievementKey = "TRACKED_SYMPTOMS_WEEK"
	AchievementDownloadedGuide     AchievementKey = "DOWNLOADED_GUIDE"
	AchievementAddedIngredient     AchievementKey = "ADDED_INGREDIENT"
)

type AchievementDefinition struct {
	Key         AchievementKey `json:"key"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
}

// AchievementDefinitions lists every unlockable badge in display order.
func AchievementDefinitions() []AchievementDefinition {
	return []AchievementDefinition{
		{Key: AchievementFirstSymptomCheck, Title: "Health Detective", Description: "Used the Symptom Checker for the first time."},
		{Key: AchievementFirstFavorite, Title: "Saved a Gem", Description: "Added your first remedy to Favorites."},
		{Key: AchievementAddedIngredient, Title: "Pantry Stocker", Description: "Added your first ingredient to 'My Ingredients'."},
		{Key: AchievementDownloadedGuide, Title: "Offline Ready", Description: "Downloaded your first offline guide."},
		{Key: AchievementViewedFiveRemedies, Title: "Remedy Explorer", Description: "Viewed the details of 5 different remedies."},
		{Key: AchievementTrackedSymptomsWeek, Title: "Consistent Tracker", Description: "Tracked symptoms at least once for 7 days."},
	}
}

func IsKnownAchievement(key AchievementKey) bool {
	for _, definition := range AchievementDefinitions() {
		if definition.Key == key {
			return true
		}
	}
	return false
}

package models

// StateStorageKey is the storage key of the persisted aggregate.
const StateStorageKey = "healthProfile"

type HealthProfile struct {
	Name           string           `json:"name"`
	Age            string           `json:"age"`
	Allergies      []string         `json:"allergies"`
	Conditions     []string         `json:"conditions"`
	Preferences    []string         `json:"preferences"`
	MyIngredients  []string         `json:"myIngredients"`
	Achievements   []AchievementKey `json:"achievements"`
	ViewedRemedies []string         `json:"viewedRemedies,omitempty"`
}

type Reminder struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Time        string   `json:"time"`
	Days        []string `json:"days"`
	IsActive    bool     `json:"isActive"`
}

// HealthProfileState is the single aggregate written to storage as one unit.
type HealthProfileState struct {
	Profile        HealthProfile    `json:"profile"`
	SymptomHistory []SymptomHistory `json:"symptomHistory"`
	Reminders      []Reminder       `json:"reminders"`
}

func DefaultHealthProfileState() HealthProfileState {
	return HealthProfileState{
		Profile: HealthProfile{
			Allergies:     []string{},
			Conditions:    []string{},
			Preferences:   []string{},
			MyIngredients: []string{},
			Achievements: []AchievementKey{
				AchievementFirstSymptomCheck,
				AchievementFirstFavorite,
				AchievementAddedIngredient,
			},
		},
		SymptomHistory: []SymptomHistory{},
		Reminders:      []Reminder{},
	}
}

// Clone returns a deep copy so callers never share slices with the store.
func (state HealthProfileState) Clone() HealthProfileState {
	cloned := HealthProfileState{
		Profile: HealthProfile{
			Name:           state.Profile.Name,
			Age:            state.Profile.Age,
			Allergies:      cloneStrings(state.Profile.Allergies),
			Conditions:     cloneStrings(state.Profile.Conditions),
			Preferences:    cloneStrings(state.Profile.Preferences),
			MyIngredients:  cloneStrings(state.Profile.MyIngredients),
			Achievements:   append([]AchievementKey{}, state.Profile.Achievements...),
			ViewedRemedies: nil,
		},
		SymptomHistory: make([]SymptomHistory, 0, len(state.SymptomHistory)),
		Reminders:      make([]Reminder, 0, len(state.Reminders)),
	}
	if len(state.Profile.ViewedRemedies) > 0 {
		cloned.Profile.ViewedRemedies = cloneStrings(state.Profile.ViewedRemedies)
	}
	for _, record := range state.SymptomHistory {
		cloned.SymptomHistory = append(cloned.SymptomHistory, SymptomHistory{
			Date:     record.Date,
			Symptoms: append([]DetailedSymptom{}, record.Symptoms...),
			Notes:    record.Notes,
		})
	}
	for _, reminder := range state.Reminders {
		reminder.Days = cloneStrings(reminder.Days)
		cloned.Reminders = append(cloned.Reminders, reminder)
	}
	return cloned
}

func cloneStrings(values []string) []string {
	return append([]string{}, values...)
}

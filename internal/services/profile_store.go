package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/remedywhisper/internal/models"
)

// CorruptStateError reports a stored aggregate that could not be decoded.
// The store that accompanies it holds the default aggregate.
type CorruptStateError struct {
	Key string
	Err error
}

func (err *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt profile state under %q: %v", err.Key, err.Err)
}

func (err *CorruptStateError) Unwrap() error {
	return err.Err
}

type ProfileUpdate struct {
	Name          *string   `json:"name"`
	Age           *string   `json:"age"`
	Allergies     *[]string `json:"allergies"`
	Conditions    *[]string `json:"conditions"`
	Preferences   *[]string `json:"preferences"`
	MyIngredients *[]string `json:"myIngredients"`
}

type ReminderUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Time        *string   `json:"time"`
	Days        *[]string `json:"days"`
	IsActive    *bool     `json:"isActive"`
}

// ProfileStore owns one persisted HealthProfileState. Every mutation builds
// the next aggregate, writes it whole and only then makes it visible.
type ProfileStore struct {
	storage StateStorage
	key     string
	now     func() time.Time
	newID   func() string

	mu    sync.Mutex
	state models.HealthProfileState
}

// OpenProfileStore loads the aggregate stored under key. A missing entry
// yields the defaults. An undecodable entry also yields the defaults, and the
// returned store is accompanied by a *CorruptStateError the caller may log.
func OpenProfileStore(storage StateStorage, key string) (*ProfileStore, error) {
	store := &ProfileStore{
		storage: storage,
		key:     key,
		now:     time.Now,
		newID:   uuid.NewString,
		state:   models.DefaultHealthProfileState(),
	}

	payload, found, err := storage.Read(key)
	if err != nil {
		return nil, fmt.Errorf("read profile state: %w", err)
	}
	if !found {
		return store, nil
	}

	state, err := decodeProfileState(payload)
	if err != nil {
		return store, &CorruptStateError{Key: key, Err: err}
	}
	store.state = state
	return store, nil
}

func (store *ProfileStore) Key() string {
	return store.key
}

func (store *ProfileStore) State() models.HealthProfileState {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.Clone()
}

// UpdateProfile replaces the fields set in update. Going from no favorites to
// some favorites unlocks FIRST_FAVORITE.
func (store *ProfileStore) UpdateProfile(update ProfileUpdate) (models.HealthProfileState, error) {
	return store.mutate(func(state *models.HealthProfileState) bool {
		previousFavorites := len(state.Profile.Preferences)

		if update.Name != nil {
			state.Profile.Name = *update.Name
		}
		if update.Age != nil {
			state.Profile.Age = *update.Age
		}
		if update.Allergies != nil {
			state.Profile.Allergies = nonNilStrings(*update.Allergies)
		}
		if update.Conditions != nil {
			state.Profile.Conditions = nonNilStrings(*update.Conditions)
		}
		if update.Preferences != nil {
			state.Profile.Preferences = nonNilStrings(*update.Preferences)
		}
		if update.MyIngredients != nil {
			state.Profile.MyIngredients = nonNilStrings(*update.MyIngredients)
		}

		if previousFavorites == 0 && len(state.Profile.Preferences) > 0 {
			grantAchievement(state, models.AchievementFirstFavorite)
		}
		return true
	})
}

// SetFavorite adds or removes a catalog remedy from the favorites. The
// catalog's own id string is stored, never the caller's.
func (store *ProfileStore) SetFavorite(remedyID string, favorite bool) (models.HealthProfileState, error) {
	remedy, ok := RemedyByID(strings.TrimSpace(remedyID))
	if !ok {
		return store.State(), ErrUnknownRemedy
	}

	return store.mutate(func(state *models.HealthProfileState) bool {
		index := indexOf(state.Profile.Preferences, remedy.ID)
		if !favorite {
			if index < 0 {
				return false
			}
			state.Profile.Preferences = append(state.Profile.Preferences[:index], state.Profile.Preferences[index+1:]...)
			return true
		}

		if index >= 0 {
			return false
		}
		if len(state.Profile.Preferences) == 0 {
			grantAchievement(state, models.AchievementFirstFavorite)
		}
		state.Profile.Preferences = append(state.Profile.Preferences, remedy.ID)
		return true
	})
}

func (store *ProfileStore) GrantAchievement(key models.AchievementKey) (models.HealthProfileState, error) {
	if !models.IsKnownAchievement(key) {
		return store.State(), ErrUnknownAchievement
	}
	return store.mutate(func(state *models.HealthProfileState) bool {
		return grantAchievement(state, key)
	})
}

// AddIngredient stores the trimmed name unless it is blank or already present
// in any letter case.
func (store *ProfileStore) AddIngredient(name string) (models.HealthProfileState, error) {
	name = strings.TrimSpace(name)
	return store.mutate(func(state *models.HealthProfileState) bool {
		if name == "" || indexFold(state.Profile.MyIngredients, name) >= 0 {
			return false
		}
		state.Profile.MyIngredients = append(state.Profile.MyIngredients, name)
		grantAchievement(state, models.AchievementAddedIngredient)
		return true
	})
}

func (store *ProfileStore) RemoveIngredient(name string) (models.HealthProfileState, error) {
	name = strings.TrimSpace(name)
	return store.mutate(func(state *models.HealthProfileState) bool {
		index := indexFold(state.Profile.MyIngredients, name)
		if index < 0 {
			return false
		}
		state.Profile.MyIngredients = append(state.Profile.MyIngredients[:index], state.Profile.MyIngredients[index+1:]...)
		return true
	})
}

// AddSymptomRecord appends a history entry. The first record unlocks
// FIRST_SYMPTOM_CHECK; records on seven distinct days unlock
// TRACKED_SYMPTOMS_WEEK.
func (store *ProfileStore) AddSymptomRecord(record models.SymptomHistory) (models.HealthProfileState, error) {
	if record.Date.IsZero() {
		record.Date = store.now()
	}
	record.Symptoms = append([]models.DetailedSymptom{}, record.Symptoms...)

	return store.mutate(func(state *models.HealthProfileState) bool {
		state.SymptomHistory = append(state.SymptomHistory, record)
		grantAchievement(state, models.AchievementFirstSymptomCheck)
		if distinctHistoryDays(state.SymptomHistory) >= trackedDaysForAchievement {
			grantAchievement(state, models.AchievementTrackedSymptomsWeek)
		}
		return true
	})
}

func (store *ProfileStore) RecordRemedyView(remedyID string) (models.HealthProfileState, error) {
	remedyID = strings.TrimSpace(remedyID)
	return store.mutate(func(state *models.HealthProfileState) bool {
		if remedyID == "" || containsString(state.Profile.ViewedRemedies, remedyID) {
			return false
		}
		state.Profile.ViewedRemedies = append(state.Profile.ViewedRemedies, remedyID)
		if len(state.Profile.ViewedRemedies) >= viewedRemediesForAchievement {
			grantAchievement(state, models.AchievementViewedFiveRemedies)
		}
		return true
	})
}

// AddReminder appends reminder, assigning a fresh id when it has none. A
// reminder whose id is already taken is ignored.
func (store *ProfileStore) AddReminder(reminder models.Reminder) (models.HealthProfileState, error) {
	if strings.TrimSpace(reminder.ID) == "" {
		reminder.ID = store.newID()
	}
	reminder.Days = nonNilStrings(reminder.Days)

	return store.mutate(func(state *models.HealthProfileState) bool {
		if reminderIndex(state.Reminders, reminder.ID) >= 0 {
			return false
		}
		state.Reminders = append(state.Reminders, reminder)
		return true
	})
}

func (store *ProfileStore) UpdateReminder(id string, update ReminderUpdate) (models.HealthProfileState, error) {
	return store.mutate(func(state *models.HealthProfileState) bool {
		index := reminderIndex(state.Reminders, id)
		if index < 0 {
			return false
		}

		reminder := &state.Reminders[index]
		if update.Title != nil {
			reminder.Title = *update.Title
		}
		if update.Description != nil {
			reminder.Description = *update.Description
		}
		if update.Time != nil {
			reminder.Time = *update.Time
		}
		if update.Days != nil {
			reminder.Days = nonNilStrings(*update.Days)
		}
		if update.IsActive != nil {
			reminder.IsActive = *update.IsActive
		}
		return true
	})
}

func (store *ProfileStore) DeleteReminder(id string) (models.HealthProfileState, error) {
	return store.mutate(func(state *models.HealthProfileState) bool {
		index := reminderIndex(state.Reminders, id)
		if index < 0 {
			return false
		}
		state.Reminders = append(state.Reminders[:index], state.Reminders[index+1:]...)
		return true
	})
}

// ClearAllData resets the aggregate to its defaults and removes the stored
// entry.
func (store *ProfileStore) ClearAllData() (models.HealthProfileState, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.storage.Remove(store.key); err != nil {
		return store.state.Clone(), fmt.Errorf("remove profile state: %w", err)
	}
	store.state = models.DefaultHealthProfileState()
	return store.state.Clone(), nil
}

func (store *ProfileStore) mutate(apply func(state *models.HealthProfileState) bool) (models.HealthProfileState, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	next := store.state.Clone()
	if !apply(&next) {
		return store.state.Clone(), nil
	}

	payload, err := json.Marshal(next)
	if err != nil {
		return store.state.Clone(), fmt.Errorf("encode profile state: %w", err)
	}
	if err := store.storage.Write(store.key, payload); err != nil {
		return store.state.Clone(), fmt.Errorf("write profile state: %w", err)
	}

	store.state = next
	return next.Clone(), nil
}

func decodeProfileState(payload []byte) (models.HealthProfileState, error) {
	var state models.HealthProfileState
	if err := json.Unmarshal(payload, &state); err != nil {
		return models.HealthProfileState{}, err
	}

	state.Profile.Allergies = nonNilStrings(state.Profile.Allergies)
	state.Profile.Conditions = nonNilStrings(state.Profile.Conditions)
	state.Profile.Preferences = nonNilStrings(state.Profile.Preferences)
	state.Profile.MyIngredients = nonNilStrings(state.Profile.MyIngredients)
	if state.Profile.Achievements == nil {
		state.Profile.Achievements = []models.AchievementKey{}
	}
	if state.SymptomHistory == nil {
		state.SymptomHistory = []models.SymptomHistory{}
	}
	if state.Reminders == nil {
		state.Reminders = []models.Reminder{}
	}
	return state, nil
}

func reminderIndex(reminders []models.Reminder, id string) int {
	for index, reminder := range reminders {
		if reminder.ID == id {
			return index
		}
	}
	return -1
}

func indexOf(values []string, target string) int {
	for index, value := range values {
		if value == target {
			return index
		}
	}
	return -1
}

func indexFold(values []string, target string) int {
	for index, value := range values {
		if strings.EqualFold(value, target) {
			return index
		}
	}
	return -1
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

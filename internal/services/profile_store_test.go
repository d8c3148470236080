package services

import (
	"errors"
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/terraincognita07/remedywhisper/internal/models"
)

type failingStateStorage struct {
	*MemoryStateStorage
	writeErr  error
	removeErr error
	readErr   error
	writes    int
}

func (storage *failingStateStorage) Read(key string) ([]byte, bool, error) {
	if storage.readErr != nil {
		return nil, false, storage.readErr
	}
	return storage.MemoryStateStorage.Read(key)
}

func (storage *failingStateStorage) Write(key string, payload []byte) error {
	storage.writes++
	if storage.writeErr != nil {
		return storage.writeErr
	}
	return storage.MemoryStateStorage.Write(key, payload)
}

func (storage *failingStateStorage) Remove(key string) error {
	if storage.removeErr != nil {
		return storage.removeErr
	}
	return storage.MemoryStateStorage.Remove(key)
}

func openTestStore(t *testing.T, storage StateStorage) *ProfileStore {
	t.Helper()

	store, err := OpenProfileStore(storage, models.StateStorageKey)
	if err != nil {
		t.Fatalf("OpenProfileStore() unexpected error: %v", err)
	}
	store.now = func() time.Time {
		return time.Date(2026, time.March, 3, 9, 30, 0, 0, time.UTC)
	}
	return store
}

func TestOpenProfileStoreDefaultsWhenEmpty(t *testing.T) {
	store := openTestStore(t, NewMemoryStateStorage())

	state := store.State()
	if diff := cmp.Diff(models.DefaultHealthProfileState(), state); diff != "" {
		t.Fatalf("default state mismatch (-want +got):\n%s", diff)
	}
	if state.Profile.Allergies == nil || state.SymptomHistory == nil || state.Reminders == nil {
		t.Fatal("expected empty, non-nil collections")
	}
}

func TestProfileStoreStateSurvivesReopen(t *testing.T) {
	storage := NewMemoryStateStorage()
	store := openTestStore(t, storage)

	name := "Ana"
	age := "34"
	if _, err := store.UpdateProfile(ProfileUpdate{
		Name:      &name,
		Age:       &age,
		Allergies: &[]string{"honey"},
	}); err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	if _, err := store.AddIngredient("Ginger"); err != nil {
		t.Fatalf("AddIngredient() unexpected error: %v", err)
	}
	if _, err := store.AddSymptomRecord(models.SymptomHistory{
		Date:     time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC),
		Symptoms: []models.DetailedSymptom{{Name: "Cough", Intensity: models.IntensityMild, Duration: models.DurationOneToThree}},
		Notes:    "dry",
	}); err != nil {
		t.Fatalf("AddSymptomRecord() unexpected error: %v", err)
	}
	if _, err := store.AddReminder(models.Reminder{ID: "r1", Title: "Tea", Time: "08:00", Days: []string{"Mon"}, IsActive: true}); err != nil {
		t.Fatalf("AddReminder() unexpected error: %v", err)
	}

	want := store.State()
	reopened := openTestStore(t, storage)
	if diff := cmp.Diff(want, reopened.State()); diff != "" {
		t.Fatalf("reopened state mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenProfileStoreCorruptPayload(t *testing.T) {
	storage := NewMemoryStateStorage()
	if err := storage.Write(models.StateStorageKey, []byte("{not json")); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	store, err := OpenProfileStore(storage, models.StateStorageKey)
	var corrupt *CorruptStateError
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected CorruptStateError, got %v", err)
	}
	if corrupt.Key != models.StateStorageKey {
		t.Fatalf("expected key %q, got %q", models.StateStorageKey, corrupt.Key)
	}
	if store == nil {
		t.Fatal("expected a usable store next to the corrupt state error")
	}
	if diff := cmp.Diff(models.DefaultHealthProfileState(), store.State()); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestOpenProfileStoreReadFailure(t *testing.T) {
	storage := &failingStateStorage{MemoryStateStorage: NewMemoryStateStorage(), readErr: errors.New("disk gone")}

	store, err := OpenProfileStore(storage, models.StateStorageKey)
	if err == nil || store != nil {
		t.Fatalf("expected read failure, got store=%v err=%v", store, err)
	}
}

func TestOpenProfileStoreFillsMissingCollections(t *testing.T) {
	storage := NewMemoryStateStorage()
	if err := storage.Write(models.StateStorageKey, []byte(`{"profile":{"name":"Ana"}}`)); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	state := openTestStore(t, storage).State()
	if state.Profile.Name != "Ana" {
		t.Fatalf("expected stored name, got %q", state.Profile.Name)
	}
	if state.Profile.Allergies == nil || state.Profile.Achievements == nil || state.SymptomHistory == nil || state.Reminders == nil {
		t.Fatalf("expected empty collections, got %#v", state)
	}
}

func TestProfileStoreFailedWriteKeepsState(t *testing.T) {
	storage := &failingStateStorage{MemoryStateStorage: NewMemoryStateStorage()}
	store := openTestStore(t, storage)
	before := store.State()

	storage.writeErr = errors.New("quota exceeded")
	name := "Ana"
	state, err := store.UpdateProfile(ProfileUpdate{Name: &name})
	if err == nil {
		t.Fatal("expected write error")
	}
	if !errors.Is(err, storage.writeErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
	if diff := cmp.Diff(before, state); diff != "" {
		t.Fatalf("returned state changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, store.State()); diff != "" {
		t.Fatalf("in-memory state changed (-want +got):\n%s", diff)
	}
}

func TestProfileStoreUpdateProfileKeepsUnsetFields(t *testing.T) {
	store := openTestStore(t, NewMemoryStateStorage())

	name := "Ana"
	if _, err := store.UpdateProfile(ProfileUpdate{Name: &name, Conditions: &[]string{"asthma"}}); err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	age := "40"
	state, err := store.UpdateProfile(ProfileUpdate{Age: &age})
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	if state.Profile.Name != "Ana" || state.Profile.Age != "40" {
		t.Fatalf("unexpected profile: %#v", state.Profile)
	}
	if diff := cmp.Diff([]string{"asthma"}, state.Profile.Conditions); diff != "" {
		t.Fatalf("conditions changed (-want +got):\n%s", diff)
	}
}

func TestProfileStoreIngredients(t *testing.T) {
	store := openTestStore(t, NewMemoryStateStorage())

	for _, name := range []string{"Ginger", "  honey ", "ginger", ""} {
		if _, err := store.AddIngredient(name); err != nil {
			t.Fatalf("AddIngredient(%q) unexpected error: %v", name, err)
		}
	}
	state := store.State()
	if diff := cmp.Diff([]string{"Ginger", "honey"}, state.Profile.MyIngredients); diff != "" {
		t.Fatalf("ingredients mismatch (-want +got):\n%s", diff)
	}

	state, err := store.RemoveIngredient("GINGER")
	if err != nil {
		t.Fatalf("RemoveIngredient() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"honey"}, state.Profile.MyIngredients); diff != "" {
		t.Fatalf("ingredients after remove mismatch (-want +got):\n%s", diff)
	}

	if _, err := store.RemoveIngredient("turmeric"); err != nil {
		t.Fatalf("RemoveIngredient() of a missing name unexpected error: %v", err)
	}
}

func TestProfileStoreNoOpDoesNotWrite(t *testing.T) {
	storage := &failingStateStorage{MemoryStateStorage: NewMemoryStateStorage()}
	store := openTestStore(t, storage)

	if _, err := store.RemoveIngredient("nothing"); err != nil {
		t.Fatalf("RemoveIngredient() unexpected error: %v", err)
	}
	if _, err := store.DeleteReminder("missing"); err != nil {
		t.Fatalf("DeleteReminder() unexpected error: %v", err)
	}
	if storage.writes != 0 {
		t.Fatalf("expected no writes, got %d", storage.writes)
	}
}

func TestProfileStoreAchievementsFromHistory(t *testing.T) {
	storage := NewMemoryStateStorage()
	payload := []byte(`{"profile":{"achievements":[]},"symptomHistory":[],"reminders":[]}`)
	if err := storage.Write(models.StateStorageKey, payload); err != nil {
		t.Fatalf("seed storage: %v", err)
	}
	store := openTestStore(t, storage)

	var state models.HealthProfileState
	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for day := 0; day < 7; day++ {
		var err error
		state, err = store.AddSymptomRecord(models.SymptomHistory{
			Date:     start.AddDate(0, 0, day),
			Symptoms: []models.DetailedSymptom{{Name: "Cough"}},
		})
		if err != nil {
			t.Fatalf("AddSymptomRecord() unexpected error: %v", err)
		}
		if day == 0 && !hasAchievement(state.Profile, models.AchievementFirstSymptomCheck) {
			t.Fatal("expected FIRST_SYMPTOM_CHECK after the first record")
		}
		if day < 6 && hasAchievement(state.Profile, models.AchievementTrackedSymptomsWeek) {
			t.Fatalf("TRACKED_SYMPTOMS_WEEK granted after %d days", day+1)
		}
	}
	if !hasAchievement(state.Profile, models.AchievementTrackedSymptomsWeek) {
		t.Fatal("expected TRACKED_SYMPTOMS_WEEK after seven distinct days")
	}

	want := []models.AchievementKey{models.AchievementFirstSymptomCheck, models.AchievementTrackedSymptomsWeek}
	if diff := cmp.Diff(want, state.Profile.Achievements); diff != "" {
		t.Fatalf("achievements mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileStoreSymptomRecordDefaultsDate(t *testing.T) {
	store := openTestStore(t, NewMemoryStateStorage())

	state, err := store.AddSymptomRecord(models.SymptomHistory{Symptoms: []models.DetailedSymptom{{Name: "Cough"}}})
	if err != nil {
		t.Fatalf("AddSymptomRecord() unexpected error: %v", err)
	}
	if len(state.SymptomHistory) != 1 {
		t.Fatalf("expected one record, got %d", len(state.SymptomHistory))
	}
	if !state.SymptomHistory[0].Date.Equal(store.now()) {
		t.Fatalf("expected record dated now, got %v", state.SymptomHistory[0].Date)
	}
}

func TestProfileStoreRemedyViewsUnlockAchievement(t *testing.T) {
	store := openTestStore(t, NewMemoryStateStorage())

	var state models.HealthProfileState
	for _, remedy := range ListRemedies()[:5] {
		var err error
		state, err = store.RecordRemedyView(remedy.ID)
		if err != nil {
			t.Fatalf("RecordRemedyView() unexpected error: %v", err)
		}
		if _, err := store.RecordRemedyView(remedy.ID); err != nil {
			t.Fatalf("RecordRemedyView() repeat unexpected error: %v", err)
		}
	}
	if len(state.Profile.ViewedRemedies) != 5 {
		t.Fatalf("expected 5 distinct views, got %v", state.Profile.ViewedRemedies)
	}
	if !hasAchievement(state.Profile, models.AchievementViewedFiveRemedies) {
		t.Fatal("expected VIEWED_5_REMEDIES")
	}
}

func TestProfileStoreGrantAchievementIsIdempotent(t *testing.T) {
	store := openTestStore(t, NewMemoryStateStorage())

	if _, err := store.GrantAchievement(models.AchievementDownloadedGuide); err != nil {
		t.Fatalf("GrantAchievement() unexpected error: %v", err)
	}
	state, err := store.GrantAchievement(models.AchievementDownloadedGuide)
	if err != nil {
		t.Fatalf("GrantAchievement() unexpected error: %v", err)
	}

	count := 0
	for _, key := range state.Profile.Achievements {
		if key == models.AchievementDownloadedGuide {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected achievement once, got %d", count)
	}

	if _, err := store.GrantAchievement("MADE_UP"); !errors.Is(err, ErrUnknownAchievement) {
		t.Fatalf("expected ErrUnknownAchievement, got %v", err)
	}
}

func TestProfileStoreFirstFavoriteAchievement(t *testing.T) {
	storage := NewMemoryStateStorage()
	if err := storage.Write(models.StateStorageKey, []byte(`{"profile":{"achievements":[]}}`)); err != nil {
		t.Fatalf("seed storage: %v", err)
	}
	store := openTestStore(t, storage)

	state, err := store.UpdateProfile(ProfileUpdate{Preferences: &[]string{"ginger-tea"}})
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	if !hasAchievement(state.Profile, models.AchievementFirstFavorite) {
		t.Fatal("expected FIRST_FAVORITE after the first favorite")
	}
}

func TestProfileStoreSetFavorite(t *testing.T) {
	storage := NewMemoryStateStorage()
	if err := storage.Write(models.StateStorageKey, []byte(`{"profile":{"achievements":[]}}`)); err != nil {
		t.Fatalf("seed storage: %v", err)
	}
	store := openTestStore(t, storage)

	state, err := store.SetFavorite(" ginger-tea ", true)
	if err != nil {
		t.Fatalf("SetFavorite() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"ginger-tea"}, state.Profile.Preferences); diff != "" {
		t.Fatalf("favorites mismatch (-want +got):\n%s", diff)
	}
	if !hasAchievement(state.Profile, models.AchievementFirstFavorite) {
		t.Fatal("expected FIRST_FAVORITE after the first favorite")
	}

	state, _ = store.SetFavorite("ginger-tea", true)
	if len(state.Profile.Preferences) != 1 {
		t.Fatalf("expected favorite once, got %v", state.Profile.Preferences)
	}
	state, _ = store.SetFavorite("ginger-tea", false)
	if len(state.Profile.Preferences) != 0 {
		t.Fatalf("expected favorite removed, got %v", state.Profile.Preferences)
	}

	if _, err := store.SetFavorite("snake-oil", true); !errors.Is(err, ErrUnknownRemedy) {
		t.Fatalf("expected ErrUnknownRemedy, got %v", err)
	}
}

func TestProfileStoreSetFavoriteStoresCatalogID(t *testing.T) {
	store := openTestStore(t, NewMemoryStateStorage())

	buffer := []byte("ginger-tea")
	requestID := unsafe.String(&buffer[0], len(buffer))
	if _, err := store.SetFavorite(requestID, true); err != nil {
		t.Fatalf("SetFavorite() unexpected error: %v", err)
	}
	copy(buffer, "xxxxxxxxxx")

	if diff := cmp.Diff([]string{"ginger-tea"}, store.State().Profile.Preferences); diff != "" {
		t.Fatalf("stored favorite changed with the caller's buffer (-want +got):\n%s", diff)
	}
}

func TestProfileStoreConcurrentFavoritesKeepEveryAdd(t *testing.T) {
	store := openTestStore(t, NewMemoryStateStorage())
	remedies := ListRemedies()

	var wg sync.WaitGroup
	for _, remedy := range remedies {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := store.SetFavorite(id, true); err != nil {
				t.Errorf("SetFavorite(%q) unexpected error: %v", id, err)
			}
		}(remedy.ID)
	}
	wg.Wait()

	if got := len(store.State().Profile.Preferences); got != len(remedies) {
		t.Fatalf("expected %d favorites, got %d: %v", len(remedies), got, store.State().Profile.Preferences)
	}
}

func TestProfileStoreReminders(t *testing.T) {
	store := openTestStore(t, NewMemoryStateStorage())
	store.newID = func() string { return "generated-id" }

	state, err := store.AddReminder(models.Reminder{Title: "Tea", Time: "08:00", IsActive: true})
	if err != nil {
		t.Fatalf("AddReminder() unexpected error: %v", err)
	}
	if len(state.Reminders) != 1 || state.Reminders[0].ID != "generated-id" {
		t.Fatalf("unexpected reminders: %#v", state.Reminders)
	}
	if state.Reminders[0].Days == nil {
		t.Fatal("expected non-nil days")
	}

	state, err = store.AddReminder(models.Reminder{ID: "generated-id", Title: "Duplicate"})
	if err != nil {
		t.Fatalf("AddReminder() duplicate unexpected error: %v", err)
	}
	if len(state.Reminders) != 1 || state.Reminders[0].Title != "Tea" {
		t.Fatalf("duplicate id should be ignored: %#v", state.Reminders)
	}

	active := false
	state, err = store.UpdateReminder("generated-id", ReminderUpdate{IsActive: &active, Days: &[]string{"Mon", "Wed"}})
	if err != nil {
		t.Fatalf("UpdateReminder() unexpected error: %v", err)
	}
	want := models.Reminder{ID: "generated-id", Title: "Tea", Time: "08:00", Days: []string{"Mon", "Wed"}, IsActive: false}
	if diff := cmp.Diff(want, state.Reminders[0]); diff != "" {
		t.Fatalf("reminder mismatch (-want +got):\n%s", diff)
	}

	state, err = store.DeleteReminder("generated-id")
	if err != nil {
		t.Fatalf("DeleteReminder() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]models.Reminder{}, state.Reminders, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("expected no reminders (-want +got):\n%s", diff)
	}
}

func TestProfileStoreClearAllData(t *testing.T) {
	storage := NewMemoryStateStorage()
	store := openTestStore(t, storage)

	if _, err := store.AddIngredient("Ginger"); err != nil {
		t.Fatalf("AddIngredient() unexpected error: %v", err)
	}
	state, err := store.ClearAllData()
	if err != nil {
		t.Fatalf("ClearAllData() unexpected error: %v", err)
	}
	if diff := cmp.Diff(models.DefaultHealthProfileState(), state); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
	if _, found, _ := storage.Read(models.StateStorageKey); found {
		t.Fatal("expected stored entry to be removed")
	}
}

func TestProfileStoreClearAllDataFailure(t *testing.T) {
	storage := &failingStateStorage{MemoryStateStorage: NewMemoryStateStorage()}
	store := openTestStore(t, storage)
	if _, err := store.AddIngredient("Ginger"); err != nil {
		t.Fatalf("AddIngredient() unexpected error: %v", err)
	}

	storage.removeErr = errors.New("locked")
	state, err := store.ClearAllData()
	if err == nil {
		t.Fatal("expected remove error")
	}
	if diff := cmp.Diff([]string{"Ginger"}, state.Profile.MyIngredients); diff != "" {
		t.Fatalf("state should be unchanged (-want +got):\n%s", diff)
	}
}

func TestProfileStoreStateIsACopy(t *testing.T) {
	store := openTestStore(t, NewMemoryStateStorage())
	if _, err := store.AddIngredient("Ginger"); err != nil {
		t.Fatalf("AddIngredient() unexpected error: %v", err)
	}

	state := store.State()
	state.Profile.MyIngredients[0] = "changed"
	if store.State().Profile.MyIngredients[0] != "Ginger" {
		t.Fatal("mutating a returned snapshot changed the store")
	}
}

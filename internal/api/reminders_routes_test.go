package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/terraincognita07/remedywhisper/internal/models"
)

func TestReminderLifecycle(t *testing.T) {
	fixture := newTestApp(t)
	cookie := fixture.session(t)

	response := fixture.do(t, http.MethodPost, "/api/profile/reminders", `{"title":" Ginger tea ","time":"08:00","days":["monday","Wed","Mon"],"isActive":true}`, cookie)
	assertStatus(t, response, http.StatusCreated)
	state := readState(t, response)
	if len(state.Reminders) != 1 {
		t.Fatalf("expected one reminder, got %#v", state.Reminders)
	}
	created := state.Reminders[0]
	if created.ID == "" || created.Title != "Ginger tea" {
		t.Fatalf("unexpected reminder: %#v", created)
	}
	if diff := cmp.Diff([]string{"Mon", "Wed"}, created.Days); diff != "" {
		t.Fatalf("days mismatch (-want +got):\n%s", diff)
	}

	response = fixture.do(t, http.MethodPatch, "/api/profile/reminders/"+created.ID, `{"time":"09:30","isActive":false}`, cookie)
	assertStatus(t, response, http.StatusOK)
	updated := readState(t, response).Reminders[0]
	want := models.Reminder{ID: created.ID, Title: "Ginger tea", Time: "09:30", Days: []string{"Mon", "Wed"}, IsActive: false}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("updated reminder mismatch (-want +got):\n%s", diff)
	}

	listed := fixture.do(t, http.MethodGet, "/api/profile/reminders", "", cookie)
	assertStatus(t, listed, http.StatusOK)
	var reminders []models.Reminder
	decodeJSON(t, listed.Body, &reminders)
	if len(reminders) != 1 {
		t.Fatalf("expected one listed reminder, got %d", len(reminders))
	}

	assertStatus(t, fixture.do(t, http.MethodDelete, "/api/profile/reminders/"+created.ID, "", cookie), http.StatusOK)
	assertStatus(t, fixture.do(t, http.MethodDelete, "/api/profile/reminders/"+created.ID, "", cookie), http.StatusNotFound)
}

func TestReminderValidation(t *testing.T) {
	fixture := newTestApp(t)
	cookie := fixture.session(t)

	cases := map[string]string{
		`{"title":"","time":"08:00"}`:                      "reminder title is required",
		`{"title":"Tea","time":"8am"}`:                     "reminder time must be HH:MM",
		`{"title":"Tea","time":"24:00"}`:                   "reminder time must be HH:MM",
		`{"title":"Tea","time":"08:00","days":["Funday"]}`: "invalid reminder day",
	}
	for body, want := range cases {
		response := fixture.do(t, http.MethodPost, "/api/profile/reminders", body, cookie)
		assertStatus(t, response, http.StatusBadRequest)
		if message := readAPIError(t, response.Body); message != want {
			t.Fatalf("body %s: expected %q, got %q", body, want, message)
		}
	}

	assertStatus(t, fixture.do(t, http.MethodPatch, "/api/profile/reminders/missing", `{"time":"10:00"}`, cookie), http.StatusNotFound)
}

func TestReminderDuplicateID(t *testing.T) {
	fixture := newTestApp(t)
	cookie := fixture.session(t)

	body := `{"id":"walk","title":"Walk","time":"18:00"}`
	assertStatus(t, fixture.do(t, http.MethodPost, "/api/profile/reminders", body, cookie), http.StatusCreated)
	assertStatus(t, fixture.do(t, http.MethodPost, "/api/profile/reminders", body, cookie), http.StatusConflict)
}

func TestReminderLimitPerProfile(t *testing.T) {
	fixture := newTestApp(t)
	cookie := fixture.session(t)

	for index := 0; index < maxRemindersPerProfile; index++ {
		body := fmt.Sprintf(`{"title":"Tea %d","time":"08:00"}`, index)
		assertStatus(t, fixture.do(t, http.MethodPost, "/api/profile/reminders", body, cookie), http.StatusCreated)
	}

	response := fixture.do(t, http.MethodPost, "/api/profile/reminders", `{"title":"One more","time":"08:00"}`, cookie)
	assertStatus(t, response, http.StatusUnprocessableEntity)
	if message := readAPIError(t, response.Body); message != "reminder limit reached" {
		t.Fatalf("unexpected error %q", message)
	}
}

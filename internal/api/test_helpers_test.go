package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/db"
	"github.com/terraincognita07/remedywhisper/internal/security"
	"github.com/terraincognita07/remedywhisper/internal/services"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

type stubChatProvider struct {
	reply string
	err   error
	calls int
}

func (stub *stubChatProvider) Complete(context.Context, []services.ChatMessage) (string, error) {
	stub.calls++
	return stub.reply, stub.err
}

type testApp struct {
	app       *fiber.App
	directory *services.ProfileDirectory
	handler   *Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWithChat(t, services.NewChatService(nil, 0, nil))
}

func newTestAppWithChat(t *testing.T, chat *services.ChatService) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "remedywhisper-api-test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	sessions, err := security.NewSessionSigner(testSecretKey, time.Hour)
	if err != nil {
		t.Fatalf("init session signer: %v", err)
	}
	directory := services.NewProfileDirectory(db.NewStateRepository(database), nil)

	handler, err := NewHandler(Dependencies{
		Directory: directory,
		Chat:      chat,
		Sessions:  sessions,
		Location:  time.UTC,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return &testApp{app: app, directory: directory, handler: handler}
}

// do sends a JSON request. A non-empty cookie is attached as the profile
// session.
func (fixture *testApp) do(t *testing.T, method string, path string, body string, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Accept", "application/json")
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.AddCookie(&http.Cookie{Name: profileCookieName, Value: cookie})
	}

	response, err := fixture.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

// session starts a profile session and returns its cookie value.
func (fixture *testApp) session(t *testing.T) string {
	t.Helper()

	response := fixture.do(t, http.MethodGet, "/api/profile", "", "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	cookie := responseCookie(response.Cookies(), profileCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected profile session cookie")
	}
	return cookie.Value
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}

func decodeJSON(t *testing.T, body io.Reader, target interface{}) {
	t.Helper()

	if err := json.NewDecoder(body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func assertStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()

	if response.StatusCode != want {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, raw)
	}
}

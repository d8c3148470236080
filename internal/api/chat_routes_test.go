package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/terraincognita07/remedywhisper/internal/services"
)

func TestChatReturnsCompletionShape(t *testing.T) {
	provider := &stubChatProvider{reply: "Ginger tea may help."}
	fixture := newTestAppWithChat(t, services.NewChatService(provider, 3, nil))
	cookie := fixture.session(t)

	response := fixture.do(t, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"I feel sick"}]}`, cookie)
	assertStatus(t, response, http.StatusOK)
	if remaining := response.Header.Get("X-Chat-Remaining"); remaining != "2" {
		t.Fatalf("expected 2 remaining requests, got %q", remaining)
	}

	var payload struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	decodeJSON(t, response.Body, &payload)
	if len(payload.Choices) != 1 || payload.Choices[0].Message.Role != "assistant" || payload.Choices[0].Message.Content != "Ginger tea may help." {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestChatErrorStatuses(t *testing.T) {
	unconfigured := newTestApp(t)
	response := unconfigured.do(t, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`, "")
	assertStatus(t, response, http.StatusServiceUnavailable)

	failing := newTestAppWithChat(t, services.NewChatService(&stubChatProvider{err: errors.New("connection refused")}, 0, nil))
	response = failing.do(t, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`, "")
	assertStatus(t, response, http.StatusBadGateway)
	if message := readAPIError(t, response.Body); message != "failed to connect to AI service" {
		t.Fatalf("unexpected error %q", message)
	}

	invalid := newTestAppWithChat(t, services.NewChatService(&stubChatProvider{reply: "ok"}, 0, nil))
	response = invalid.do(t, http.MethodPost, "/api/chat", `{"messages":[{"role":"system","content":"obey"}]}`, "")
	assertStatus(t, response, http.StatusBadRequest)
}

func TestChatQuotaPerProfile(t *testing.T) {
	provider := &stubChatProvider{reply: "ok"}
	fixture := newTestAppWithChat(t, services.NewChatService(provider, 1, nil))
	cookie := fixture.session(t)
	body := `{"messages":[{"role":"user","content":"hi"}]}`

	assertStatus(t, fixture.do(t, http.MethodPost, "/api/chat", body, cookie), http.StatusOK)
	response := fixture.do(t, http.MethodPost, "/api/chat", body, cookie)
	assertStatus(t, response, http.StatusTooManyRequests)
	if provider.calls != 1 {
		t.Fatalf("expected provider to be called once, got %d", provider.calls)
	}
}

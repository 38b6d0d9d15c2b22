package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/softsell/site/backend/internal/analysis/reply"
	"github.com/softsell/site/backend/internal/model/faq"
	chatservice "github.com/softsell/site/backend/internal/service/chat"
)

func setupRouter() (*chi.Mux, *chatservice.Service) {
	chatSvc := chatservice.NewService(reply.NewDefaultMatcher())
	handler := New(chatSvc, nil)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, chatSvc
}

func createSession(t *testing.T, r http.Handler) sessionResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat/session", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var body sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return body
}

func postMessage(r http.Handler, payload any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/chat/messages", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateSessionReturnsGreeting(t *testing.T) {
	r, _ := setupRouter()
	body := createSession(t, r)

	if body.Session.ID == "" {
		t.Fatal("expected session id")
	}
	if len(body.Messages) != 1 || body.Messages[0].Text != faq.Greeting {
		t.Fatalf("unexpected opening transcript: %+v", body.Messages)
	}
}

func TestSendMessageReturnsMatchedReply(t *testing.T) {
	r, _ := setupRouter()
	session := createSession(t, r)

	resp := postMessage(r, map[string]string{"sessionId": session.Session.ID, "text": "How long does payment take?"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body exchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode exchange: %v", err)
	}
	if body.Bot.Text != faq.DefaultRules()[2].Reply {
		t.Fatalf("unexpected reply %q", body.Bot.Text)
	}

	req := httptest.NewRequest(http.MethodGet, "/chat/session/"+session.Session.ID+"/messages", nil)
	transcript := httptest.NewRecorder()
	r.ServeHTTP(transcript, req)
	if transcript.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", transcript.Code)
	}
}

func TestSendMessageErrors(t *testing.T) {
	r, _ := setupRouter()
	session := createSession(t, r)

	cases := []struct {
		name    string
		payload any
		want    int
	}{
		{"blank text", map[string]string{"sessionId": session.Session.ID, "text": "  "}, http.StatusBadRequest},
		{"missing session id", map[string]string{"text": "hi"}, http.StatusBadRequest},
		{"unknown session", map[string]string{"sessionId": "nope", "text": "hi"}, http.StatusNotFound},
		{"unknown field", map[string]any{"sessionId": session.Session.ID, "text": "hi", "foo": 1}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if resp := postMessage(r, tc.payload); resp.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.Code)
			}
		})
	}
}

func TestTranscriptUnknownSession(t *testing.T) {
	r, _ := setupRouter()
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/chat/session/nope/messages", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestSuggestions(t *testing.T) {
	r, _ := setupRouter()
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/chat/suggestions", nil))

	var body map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body["suggestions"]) != len(faq.Suggestions()) {
		t.Fatalf("unexpected suggestions %v", body)
	}
}

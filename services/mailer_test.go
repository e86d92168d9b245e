package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMailerSend(t *testing.T) {
	var gotAuth string
	var gotBody sgMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	mailer := NewMailer("sg-key", "noreply@felt2felt.com")
	mailer.BaseURL = server.URL

	err := mailer.Send("player@example.com", "Verify your email", "<h1>Hello</h1>")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if gotAuth != "Bearer sg-key" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer sg-key")
	}
	if len(gotBody.Personalizations) != 1 || len(gotBody.Personalizations[0].To) != 1 {
		t.Fatalf("unexpected personalizations: %+v", gotBody.Personalizations)
	}
	if to := gotBody.Personalizations[0].To[0].Email; to != "player@example.com" {
		t.Errorf("to = %q, want %q", to, "player@example.com")
	}
	if gotBody.From.Email != "noreply@felt2felt.com" {
		t.Errorf("from = %q, want %q", gotBody.From.Email, "noreply@felt2felt.com")
	}
	if gotBody.Subject != "Verify your email" {
		t.Errorf("subject = %q, want %q", gotBody.Subject, "Verify your email")
	}
	if len(gotBody.Content) != 1 || gotBody.Content[0].Type != "text/html" {
		t.Errorf("unexpected content: %+v", gotBody.Content)
	}
}

func TestMailerSendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	mailer := NewMailer("sg-key", "noreply@felt2felt.com")
	mailer.BaseURL = server.URL

	if err := mailer.Send("player@example.com", "Hi", "body"); err == nil {
		t.Error("expected error for 500 response, got nil")
	}
}

func TestMailerSendWithoutAPIKey(t *testing.T) {
	mailer := NewMailer("", "noreply@felt2felt.com")
	if err := mailer.Send("player@example.com", "Hi", "body"); err == nil {
		t.Error("expected error without API key, got nil")
	}
}

package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Mailer sends transactional email through the SendGrid v3 API.
type Mailer struct {
	APIKey    string
	FromEmail string
	BaseURL   string
	Client    *http.Client
}

func NewMailer(apiKey, fromEmail string) *Mailer {
	return &Mailer{
		APIKey:    apiKey,
		FromEmail: fromEmail,
		BaseURL:   "https://api.sendgrid.com",
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sgAddress struct {
	Email string `json:"email"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgMessage struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

// Send delivers a single HTML email. Bounded by the client timeout; callers
// decide whether a failure is fatal to their flow.
func (m *Mailer) Send(to, subject, html string) error {
	if m.APIKey == "" {
		return fmt.Errorf("sendgrid API key not configured")
	}

	msg := sgMessage{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: to}}}},
		From:             sgAddress{Email: m.FromEmail},
		Subject:          subject,
		Content:          []sgContent{{Type: "text/html", Value: html}},
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", m.BaseURL+"/v3/mail/send", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.APIKey)

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("[MAIL] ❌ SendGrid returned %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("mail send failed: %d", resp.StatusCode)
	}

	return nil
}

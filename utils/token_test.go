package utils

import (
	"testing"
	"time"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-123", "user", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-123")
	}
	if claims.Role != "user" {
		t.Errorf("Role = %q, want %q", claims.Role, "user")
	}
}

func TestTokenPreservesAdminRole(t *testing.T) {
	token, err := GenerateToken("admin-1", "admin", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want %q", claims.Role, "admin")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-123", "user", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken(token, "some-other-secret"); err == nil {
		t.Error("expected error for wrong secret, got nil")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(token, testSecret); err == nil {
			t.Errorf("ParseToken(%q) expected error, got nil", token)
		}
	}
}

func TestTokenExpiryWithinTTL(t *testing.T) {
	before := time.Now()
	token, err := GenerateToken("user-123", "user", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("token has no expiry")
	}

	maxExpiry := before.Add(TokenTTL + time.Minute)
	if claims.ExpiresAt.Time.After(maxExpiry) {
		t.Errorf("expiry %v exceeds TTL window ending %v", claims.ExpiresAt.Time, maxExpiry)
	}
	if !claims.ExpiresAt.Time.After(before) {
		t.Errorf("expiry %v is not in the future", claims.ExpiresAt.Time)
	}
}

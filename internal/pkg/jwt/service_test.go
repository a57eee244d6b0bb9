package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_GenerateValidate_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	userID := uuid.New()
	tok, err := svc.Generate(userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tok == "" {
		t.Fatalf("generate: empty token")
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
}

func TestHMACService_Validate_Expired(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	tok, err := svc.Generate(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Validate(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_Validate_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("secret-a", time.Hour).Generate(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).Validate(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Validate_Garbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.Validate("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

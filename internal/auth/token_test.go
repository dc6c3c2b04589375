package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager("test_secret_key_12345", "HS256", ttl)
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}
	return tm
}

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, time.Hour)

	tok, err := tm.Issue("roby", 42, "admin")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := tm.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Username != "roby" || claims.UserID != 42 || claims.Role != "admin" {
		t.Fatalf("claims mismatch: got %+v", claims)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, -1*time.Second)

	tok, err := tm.Issue("roby", 1, "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := tm.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, time.Hour)
	other, err := NewTokenManager("a-different-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}

	tok, err := other.Issue("roby", 1, "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := tm.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, time.Hour)
	if _, err := tm.Verify("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestVerify_MissingClaims(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, time.Hour)

	// Signed with the right key but without the role claim.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "roby",
		"id":  1,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tok, err := raw.SignedString([]byte("test_secret_key_12345"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := tm.Verify(tok); !errors.Is(err, ErrMissingClaims) {
		t.Fatalf("expected ErrMissingClaims, got %v", err)
	}
}

func TestNewTokenManager_UnknownAlgorithm(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenManager("secret", "HS9000", time.Hour); err == nil {
		t.Fatal("expected error for unknown algorithm, got nil")
	}
}

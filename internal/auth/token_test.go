package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	t.Parallel()

	tokens := NewTokens([]byte("super-secret"), time.Hour)

	tok, err := tokens.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	uid, err := tokens.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if uid != "user-123" {
		t.Fatalf("user id mismatch: got %q want %q", uid, "user-123")
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	tokens := NewTokens([]byte("secret"), -1*time.Second)
	tok, err := tokens.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := tokens.Validate(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidate_WrongKey(t *testing.T) {
	t.Parallel()

	tok, err := NewTokens([]byte("right-key"), time.Hour).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := NewTokens([]byte("wrong-key"), time.Hour).Validate(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong key, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	tokens := NewTokens([]byte("k"), time.Hour)
	for _, s := range []string{"", "not.a.jwt", "a.b"} {
		if _, err := tokens.Validate(s); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", s, err)
		}
	}
}

func TestValidate_Tampered(t *testing.T) {
	t.Parallel()

	tokens := NewTokens([]byte("k"), time.Hour)
	tok, err := tokens.Issue("u3")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip one character in the payload segment; the signature must stop verifying.
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := tokens.Validate(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

package tokens

import (
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := New("secret", "camphub", time.Hour)

	signed, err := svc.Issue("student@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email != "student@example.com" {
		t.Errorf("email claim: got %q, want %q", claims.Email, "student@example.com")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := New("secret", "camphub", -time.Minute)

	signed, err := svc.Issue("student@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(signed); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	signer := New("secret-a", "camphub", time.Hour)
	verifier := New("secret-b", "camphub", time.Hour)

	signed, err := signer.Issue("student@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(signed); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := New("secret", "camphub", time.Hour)

	if _, err := svc.Verify("not-a-token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

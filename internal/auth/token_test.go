package auth

import (
	"testing"
	"time"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", "marketplace-service", time.Hour)

	token, err := m.Issue("amina@example.com", "Student")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Email != "amina@example.com" {
		t.Errorf("wrong email claim: %s", claims.Email)
	}
	if claims.Role != "Student" {
		t.Errorf("wrong role claim: %s", claims.Role)
	}
	if claims.Issuer != "marketplace-service" {
		t.Errorf("wrong issuer: %s", claims.Issuer)
	}
	if claims.Subject != "amina@example.com" {
		t.Errorf("wrong subject: %s", claims.Subject)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", "marketplace-service", time.Hour)
	verifier := NewTokenManager("secret-b", "marketplace-service", time.Hour)

	token, err := issuer.Issue("amina@example.com", "Student")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("token signed with a different secret must not verify")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", "marketplace-service", -time.Minute)

	token, err := m.Issue("amina@example.com", "Student")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Error("expired token must not verify")
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager("secret", "marketplace-service", time.Hour)

	if _, err := m.Verify("not.a.token"); err == nil {
		t.Error("garbage input must not verify")
	}
}

package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, err := tm.Generate("user-1", "a@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "user-1" || claims.Email != "a@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenWrongKeyRejected(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate("u", "e")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewTokenManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Error("token signed with a different key should not verify")
	}
}

func TestTokenExpiry(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute)
	token, err := tm.Generate("u", "e")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tm.Verify(token); err == nil {
		t.Error("expired token should not verify")
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := tm.Verify(tok); err == nil {
			t.Errorf("Verify(%q) should fail", tok)
		}
	}
}

package auth

import (
	"testing"
)

func TestTokenRoundtrip(t *testing.T) {
	access, err := NewAccessToken(42)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}
	claims, err := ParseToken(access)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("claims.TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}

	refresh, err := NewRefreshToken(42)
	if err != nil {
		t.Fatalf("NewRefreshToken() error = %v", err)
	}
	claims, err = ParseToken(refresh)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Errorf("claims.TokenType = %q, want %q", claims.TokenType, TokenTypeRefresh)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("ParseToken() accepted garbage input")
	}
}

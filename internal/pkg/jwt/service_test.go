package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	s := NewHMACService("secret", time.Hour)

	token, err := s.GenerateAdminToken("admin@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.TokenType != TokenTypeAdmin {
		t.Errorf("token type = %q, want %q", claims.TokenType, TokenTypeAdmin)
	}
	if claims.ID == "" {
		t.Error("token must carry a JTI")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	s := NewHMACService("secret", time.Hour)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := s.GenerateAdminToken("admin@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s.now = time.Now
	if _, err := s.ValidateToken(token); err != ErrTokenExpired {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewHMACService("secret-a", time.Hour)
	verifier := NewHMACService("secret-b", time.Hour)

	token, err := issuer.GenerateAdminToken("admin@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err != ErrTokenInvalid {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	s := NewHMACService("secret", time.Hour)

	if _, err := s.ValidateToken("not.a.token"); err != ErrTokenInvalid {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestGenerateWithoutSecret(t *testing.T) {
	s := NewHMACService("", time.Hour)

	if _, err := s.GenerateAdminToken("admin@example.com"); err != ErrTokenInvalid {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", 12345678, RoleSupervisor, "Ana García", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	user, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if user.DNI != 12345678 {
		t.Fatalf("expected dni 12345678, got %d", user.DNI)
	}
	if user.Role != RoleSupervisor {
		t.Fatalf("expected role SUPERVISOR, got %s", user.Role)
	}
	if user.FullName != "Ana García" {
		t.Fatalf("expected full name Ana García, got %s", user.FullName)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", 1234567, RoleEmployee, "Juan Pérez", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected parse to fail with wrong secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("secret", 1234567, RoleEmployee, "Juan Pérez", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("expected parse to fail for expired token")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secreta123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := CheckPassword(hash, "Secreta123"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := CheckPassword(hash, "otra"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

package auth_test

import (
	"testing"

	"github.com/dseu-petition/petition-api/internal/auth"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}
	if !auth.CheckPassword("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("test-secret", "user-1", "a@b.c", true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateToken("test-secret", token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.c" || !claims.Admin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("secret-a", "user-1", "a@b.c", false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := auth.ValidateToken("secret-b", token); err == nil {
		t.Error("token accepted with wrong secret")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := auth.ValidateToken("secret", "not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}

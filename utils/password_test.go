package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the raw password")
	}
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Fatalf("expected bcrypt hash with cost 10, got %q", hash)
	}
}

func TestCheckPasswordHash(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPasswordHash("secret1", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatal("expected mismatching password to fail")
	}
}

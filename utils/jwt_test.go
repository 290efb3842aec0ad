package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := int64(42)

	tok, err := GenerateJWT(userID, secret)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	claims, err := ValidateJWT(tok, secret)
	if err != nil {
		t.Fatalf("ValidateJWT error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %d want %d", claims.UserID, userID)
	}
	if claims.ExpiresAt-claims.IssuedAt != int64(TokenValidity/time.Second) {
		t.Fatalf("unexpected validity window: %d seconds", claims.ExpiresAt-claims.IssuedAt)
	}
}

func TestValidateJWT_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	claims := &Claims{
		UserID: 7,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := ValidateJWT(tok, secret); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT(1, []byte("right-secret"))
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := ValidateJWT(tok, []byte("wrong-secret")); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestValidateJWT_Tampered(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateJWT(1, secret)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	tampered := tok[:len(tok)-2] + "xx"
	if _, err := ValidateJWT(tampered, secret); err == nil {
		t.Fatal("expected error for tampered token, got nil")
	}
}

func TestValidateJWT_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ValidateJWT("not.a.jwt", []byte("k")); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenValidity is the fixed lifetime of issued tokens.
const TokenValidity = time.Hour

type Claims struct {
	UserID int64 `json:"userID"`
	jwt.StandardClaims
}

func GenerateJWT(userID int64, secret []byte) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(TokenValidity).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "gerenciamento_propriedades",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ValidateJWT(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})

	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, errors.New("invalid token signature")
		}
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

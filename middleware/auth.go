package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/lfmcarvalho/gerenciamento_propriedades/controllers"
	"github.com/lfmcarvalho/gerenciamento_propriedades/utils"
)

// AuthMiddleware verifies the bearer token and places the caller's account
// id in the request context. A missing token is 401, anything wrong with the
// presented token is 403.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			tokenHeader := r.Header.Get("Authorization")
			if tokenHeader == "" {
				log.Printf("Missing Authorization header from request %s %s", r.Method, r.URL)
				http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
				return
			}

			tokenParts := strings.Split(tokenHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				log.Printf("Invalid Authorization header format from request %s %s", r.Method, r.URL)
				http.Error(w, "Invalid Authorization header format", http.StatusForbidden)
				return
			}

			token := tokenParts[1]

			claims, err := utils.ValidateJWT(token, secret)
			if err != nil {
				log.Printf("Invalid or expired token: %v", err)
				http.Error(w, "Invalid or expired token", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), controllers.UserIDKey, claims.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

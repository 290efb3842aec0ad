package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/mail"

	"github.com/lfmcarvalho/gerenciamento_propriedades/models"
	"github.com/lfmcarvalho/gerenciamento_propriedades/repository"
	"github.com/lfmcarvalho/gerenciamento_propriedades/utils"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 100
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func RegisterUser(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding user data: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		if req.Email == "" || !isValidEmail(req.Email) {
			log.Printf("Invalid email on registration: %q", req.Email)
			http.Error(w, "A valid email is required", http.StatusBadRequest)
			return
		}

		if len(req.Password) < minPasswordLen || len(req.Password) > maxPasswordLen {
			log.Println("Password length out of range on registration")
			http.Error(w, "Password must be between 6 and 100 characters", http.StatusBadRequest)
			return
		}

		existing, err := users.FindByEmail(r.Context(), req.Email)
		if err != nil {
			log.Printf("Error looking up email %s: %v", req.Email, err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}
		if existing != nil {
			log.Printf("User email already exists: %s", req.Email)
			http.Error(w, "Email already exists", http.StatusConflict)
			return
		}

		hashedPwd, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			http.Error(w, "Failed to hash password", http.StatusInternalServerError)
			return
		}

		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: hashedPwd,
		}

		if err := users.Insert(r.Context(), &user); err != nil {
			log.Printf("Error inserting user into the database: %v", err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		log.Printf("User registered: %s", user.Email)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(registerResponse{Name: user.Name, Email: user.Email})
	}
}

func LoginUser(users repository.UserRepository, secret []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds loginRequest
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			log.Printf("Error decoding login credentials: %v", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		// Both failure legs answer identically so the response does not
		// reveal whether the account exists.
		user, err := users.FindByEmail(r.Context(), creds.Email)
		if err != nil {
			log.Printf("Error looking up email %s: %v", creds.Email, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if user == nil {
			log.Printf("User not found: %s", creds.Email)
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}

		if !utils.CheckPasswordHash(creds.Password, user.Password) {
			log.Printf("Invalid credentials for user: %s", creds.Email)
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}

		token, err := utils.GenerateJWT(user.ID, secret)
		if err != nil {
			log.Printf("Error generating JWT token: %v", err)
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(loginResponse{Token: token, Name: user.Name})
	}
}

// File: internal/handlers/auth_handlers.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"foodmate-server/internal/dtos"
	"foodmate-server/internal/services/user_services"
)

// AuthHandler holds the dependencies for authentication handlers.
type AuthHandler struct {
	authService *user_services.AuthService
	validate    *validator.Validate
}

func NewAuthHandler(authService *user_services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// Register handles new user registrations.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, "Name, a valid email and a password of at least 6 characters are required", http.StatusBadRequest)
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user_services.ErrEmailTaken) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, "Could not register user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, dtos.AuthResponse{
		Token: token,
		User:  dtos.NewUserResponse(user),
	})
}

// Login validates user credentials and returns a fresh token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user_services.ErrInvalidCredentials) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, "Could not log in", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dtos.AuthResponse{
		Token: token,
		User:  dtos.NewUserResponse(user),
	})
}

// File: internal/handlers/user_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"foodmate-server/internal/dtos"
	"foodmate-server/internal/middleware"
	"foodmate-server/internal/services/user_services"
)

type UserHandler struct {
	userService *user_services.UserService
	validate    *validator.Validate
}

func NewUserHandler(userService *user_services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// GetProfile returns the authenticated user's public fields. The auth gate
// already loaded the user for this request.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, dtos.NewUserResponse(u))
}

// UpdateProfile accepts name and preferredLanguage only.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req dtos.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, "Invalid profile fields", http.StatusBadRequest)
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), userID, req.Name, req.PreferredLanguage)
	if err != nil {
		writeError(w, "Could not update profile", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dtos.NewUserResponse(updated))
}

// SetLocation stores the caller's position.
func (h *UserHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req dtos.LocationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, "Latitude and longitude are required", http.StatusBadRequest)
		return
	}

	loc, err := h.userService.SetLocation(r.Context(), userID, *req.Latitude, *req.Longitude, req.Address)
	if err != nil {
		writeError(w, "Could not update location", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Location updated successfully",
		"location": dtos.NewLocationResponse(loc),
	})
}

// GetLocation returns the stored location.
func (h *UserHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	loc, err := h.userService.GetLocation(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user_services.ErrLocationNotSet) {
			writeError(w, "No location on record", http.StatusNotFound)
			return
		}
		writeError(w, "Could not retrieve location", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dtos.NewLocationResponse(loc))
}

// DeleteLocation clears the stored location unconditionally.
func (h *UserHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.userService.ClearLocation(r.Context(), userID); err != nil {
		writeError(w, "Could not delete location", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Location deleted successfully"})
}

// File: internal/dtos/user.go
package dtos

import (
	"time"

	"foodmate-server/internal/domain"
)

// UserResponse defines the public user fields exposed by the API. The
// password hash is never part of any response.
type UserResponse struct {
	ID                uint              `json:"id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	PreferredLanguage string            `json:"preferredLanguage"`
	Location          *LocationResponse `json:"location,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

type LocationResponse struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Address   string     `json:"address,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	Name              string `json:"name" validate:"omitempty,min=1"`
	PreferredLanguage string `json:"preferredLanguage" validate:"omitempty,min=2,max=8"`
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Address   string   `json:"address"`
}

// NewUserResponse maps a domain user onto its public projection.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		PreferredLanguage: u.PreferredLanguage,
		Location:          NewLocationResponse(&u.Location),
		CreatedAt:         u.CreatedAt,
	}
}

// NewLocationResponse returns nil when no location is stored.
func NewLocationResponse(loc *domain.Location) *LocationResponse {
	if loc == nil || loc.Latitude == nil || loc.Longitude == nil {
		return nil
	}
	return &LocationResponse{
		Latitude:  *loc.Latitude,
		Longitude: *loc.Longitude,
		Address:   loc.Address,
		UpdatedAt: loc.UpdatedAt,
	}
}

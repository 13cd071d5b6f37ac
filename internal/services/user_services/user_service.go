// File: internal/services/user_services/user_service.go
package user_services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodmate-server/internal/domain"
	"foodmate-server/internal/repository/user"
	"foodmate-server/internal/services"
)

var ErrLocationNotSet = errors.New("no location on record")

// UserService covers profile and location operations.
type UserService struct {
	userRepo user.UserRepository
	logger   services.Logger
}

func NewUserService(userRepo user.UserRepository, logger services.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetProfile loads the user's profile.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile changes name and preferred language only.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, name, preferredLanguage string) (*domain.User, error) {
	updated, err := s.userRepo.UpdateProfile(ctx, userID,
		strings.TrimSpace(name), strings.TrimSpace(preferredLanguage))
	if err != nil {
		return nil, err
	}
	s.logger.Info("profile updated", "user_id", userID)
	return updated, nil
}

// SetLocation stores the user's position. An omitted address falls back to a
// "lat, lon" string.
func (s *UserService) SetLocation(ctx context.Context, userID uint, latitude, longitude float64, address string) (*domain.Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		address = fmt.Sprintf("%v, %v", latitude, longitude)
	}

	now := time.Now()
	updated, err := s.userRepo.SetLocation(ctx, userID, domain.Location{
		Latitude:  &latitude,
		Longitude: &longitude,
		Address:   address,
		UpdatedAt: &now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("location updated", "user_id", userID)
	return &updated.Location, nil
}

// GetLocation returns the stored location, ErrLocationNotSet when absent.
func (s *UserService) GetLocation(ctx context.Context, userID uint) (*domain.Location, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.HasLocation() {
		return nil, ErrLocationNotSet
	}
	return &u.Location, nil
}

// ClearLocation drops the stored location. Clearing an absent location is not
// an error.
func (s *UserService) ClearLocation(ctx context.Context, userID uint) error {
	if err := s.userRepo.ClearLocation(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("location cleared", "user_id", userID)
	return nil
}

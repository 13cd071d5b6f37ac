package user

import (
	"context"

	"foodmate-server/internal/domain"
)

// UserRepository handles user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id uint, name, preferredLanguage string) (*domain.User, error)
	SetLocation(ctx context.Context, id uint, loc domain.Location) (*domain.User, error)
	ClearLocation(ctx context.Context, id uint) error
}

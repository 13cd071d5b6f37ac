package user_services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodmate-server/internal/domain"
	"foodmate-server/internal/repository/user"
	"foodmate-server/internal/services"
)

func newUserService(t *testing.T) (*UserService, uint) {
	t.Helper()
	repo := user.NewGormUserRepository(newTestDB(t))

	u := &domain.User{Name: "Rahim", Email: "rahim@example.com", PreferredLanguage: "en"}
	require.NoError(t, u.HashPassword("secret123"))
	created, err := repo.Create(context.Background(), u)
	require.NoError(t, err)

	return NewUserService(repo, &services.NoOpLogger{}), created.ID
}

func TestUpdateProfile(t *testing.T) {
	svc, userID := newUserService(t)
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, userID, "  Karim  ", "bn")
	require.NoError(t, err)
	assert.Equal(t, "Karim", updated.Name)
	assert.Equal(t, "bn", updated.PreferredLanguage)

	// Blank fields leave the stored values alone.
	updated, err = svc.UpdateProfile(ctx, userID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Karim", updated.Name)
	assert.Equal(t, "bn", updated.PreferredLanguage)
}

func TestLocationLifecycle(t *testing.T) {
	svc, userID := newUserService(t)
	ctx := context.Background()

	_, err := svc.GetLocation(ctx, userID)
	assert.ErrorIs(t, err, ErrLocationNotSet)

	loc, err := svc.SetLocation(ctx, userID, 23.8103, 90.4125, "Dhaka")
	require.NoError(t, err)
	require.NotNil(t, loc.Latitude)
	assert.Equal(t, 23.8103, *loc.Latitude)
	assert.Equal(t, "Dhaka", loc.Address)
	assert.NotNil(t, loc.UpdatedAt)

	stored, err := svc.GetLocation(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Dhaka", stored.Address)

	require.NoError(t, svc.ClearLocation(ctx, userID))
	_, err = svc.GetLocation(ctx, userID)
	assert.ErrorIs(t, err, ErrLocationNotSet)

	// Clearing twice is fine.
	assert.NoError(t, svc.ClearLocation(ctx, userID))
}

func TestSetLocationDefaultsAddress(t *testing.T) {
	svc, userID := newUserService(t)

	loc, err := svc.SetLocation(context.Background(), userID, 23.8103, 90.4125, "  ")
	require.NoError(t, err)
	assert.Equal(t, "23.8103, 90.4125", loc.Address)
}

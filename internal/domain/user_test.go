package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	u := &User{}
	require.NoError(t, u.HashPassword("secret123"))

	assert.NotEmpty(t, u.Password)
	assert.NotEqual(t, "secret123", u.Password)
}

func TestHashPasswordRejectsShortPasswords(t *testing.T) {
	u := &User{}
	err := u.HashPassword("12345")
	require.Error(t, err)
	assert.Empty(t, u.Password)
}

func TestValidatePassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.HashPassword("secret123"))

	assert.NoError(t, u.ValidatePassword("secret123"))
	assert.Error(t, u.ValidatePassword("wrong-password"))
}

func TestHasLocation(t *testing.T) {
	u := &User{}
	assert.False(t, u.HasLocation())

	lat := 23.8103
	u.Location.Latitude = &lat
	assert.True(t, u.HasLocation())
}

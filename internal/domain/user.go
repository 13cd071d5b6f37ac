// File: internal/domain/user.go
package domain

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Location is the user's last known position, embedded on the user record.
// Latitude doubles as the presence marker: a user without a stored location
// has a nil latitude.
type Location struct {
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	Address   string     `json:"address,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type User struct {
	ID                uint      `json:"id" gorm:"primarykey"`
	Name              string    `json:"name" gorm:"not null"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	Password          string    `json:"-" gorm:"not null"`
	PreferredLanguage string    `json:"preferredLanguage" gorm:"default:en"`
	Location          Location  `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// HashPassword securely hashes the user's password.
func (u *User) HashPassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// ValidatePassword compares a plain-text password with the stored hash.
func (u *User) ValidatePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// HasLocation reports whether a location is on record for the user.
func (u *User) HasLocation() bool {
	return u.Location.Latitude != nil
}

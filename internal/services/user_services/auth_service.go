// File: internal/services/user_services/auth_service.go
package user_services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"foodmate-server/internal/domain"
	"foodmate-server/internal/repository/user"
	"foodmate-server/internal/services"
)

const tokenLifetime = 7 * 24 * time.Hour

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials deliberately covers both an unknown email and a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	userRepo     user.UserRepository
	jwtSecretKey string
	logger       services.Logger
}

func NewAuthService(userRepo user.UserRepository, jwtSecretKey string, logger services.Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		logger:       logger,
	}
}

// Register creates a user and returns it with a signed token. The password is
// stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("checking email: %w", err)
	}
	if exists {
		s.logger.Warn("registration failed - email already registered", "email", maskEmail(email))
		return nil, "", ErrEmailTaken
	}

	u := &domain.User{
		Name:              name,
		Email:             email,
		PreferredLanguage: "en",
	}
	if err := u.HashPassword(password); err != nil {
		return nil, "", err
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		s.logger.Error("user creation failed", "error", err, "email", maskEmail(email))
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	token, err := s.generateToken(created.ID)
	if err != nil {
		s.logger.Error("token generation failed", "error", err, "user_id", created.ID)
		return nil, "", fmt.Errorf("signing token: %w", err)
	}

	s.logger.Info("user registered", "user_id", created.ID, "email", maskEmail(email))
	return created, token, nil
}

// Login authenticates by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("login failed - unknown email", "email", maskEmail(email))
		return nil, "", ErrInvalidCredentials
	}

	if err := u.ValidatePassword(password); err != nil {
		s.logger.Warn("login failed - wrong password", "user_id", u.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(u.ID)
	if err != nil {
		s.logger.Error("token generation failed", "error", err, "user_id", u.ID)
		return nil, "", fmt.Errorf("signing token: %w", err)
	}

	s.logger.Info("login successful", "user_id", u.ID)
	return u, token, nil
}

// ValidateToken checks signature and expiry and returns the embedded user id.
func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, errors.New("empty token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecretKey), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sub, ok := claims["sub"].(float64); ok {
			return uint(sub), nil
		}
	}
	return 0, errors.New("invalid token claims")
}

func (s *AuthService) generateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecretKey))
}

// maskEmail keeps addresses out of the logs.
func maskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 1 {
		return "****"
	}
	return email[:1] + "****" + email[at:]
}

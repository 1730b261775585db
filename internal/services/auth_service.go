package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"menumatch/internal/config"
	"menumatch/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const adminRole = "admin"

type authService struct {
	cfg    *config.AuthConfig
	logger *slog.Logger
}

// NewAuthService creates the admin authentication service
func NewAuthService(cfg *config.AuthConfig, logger *slog.Logger) AuthServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}

	return &authService{
		cfg:    cfg,
		logger: logger,
	}
}

// Login verifies the admin credentials and issues a signed token
func (s *authService) Login(username, password string) (string, error) {
	if username != s.cfg.AdminUsername {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		s.logger.Warn("failed admin login attempt", "username", username)
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := &models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
		},
		Username: username,
		Role:     adminRole,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("admin logged in", "username", username)
	return signed, nil
}

// ValidateToken parses and verifies an admin token
func (s *authService) ValidateToken(tokenString string) (*models.AdminClaims, error) {
	claims := &models.AdminClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Role != adminRole {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

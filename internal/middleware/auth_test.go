package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menumatch/internal/config"
	"menumatch/internal/errors"
	"menumatch/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	authService services.AuthServiceInterface
	e           *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	hash, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)
	s.NoError(err)

	s.authService = services.NewAuthService(&config.AuthConfig{
		JWTSecret:         "test-secret",
		Issuer:            "test-issuer",
		TokenDuration:     time.Hour,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}, nil)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	return errorResponse.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAdmin_ValidToken() {
	middleware := RequireAdmin(s.authService)

	token, err := s.authService.Login("admin", "test-password")
	s.NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Equal("admin", c.Get("admin_username"))
		s.Equal("admin", c.Get("admin_role"))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAdmin_MissingAuthorizationHeader() {
	middleware := RequireAdmin(s.authService)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAdmin_MalformedAuthorizationHeader() {
	middleware := RequireAdmin(s.authService)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := handler(c)
		s.NoError(err)
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
	}
}

func (s *AuthMiddlewareSuite) TestRequireAdmin_InvalidToken() {
	middleware := RequireAdmin(s.authService)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAdmin_TokenSignedWithDifferentSecret() {
	hash, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)
	s.NoError(err)

	otherService := services.NewAuthService(&config.AuthConfig{
		JWTSecret:         "another-secret",
		Issuer:            "test-issuer",
		TokenDuration:     time.Hour,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}, nil)

	token, err := otherService.Login("admin", "test-password")
	s.NoError(err)

	middleware := RequireAdmin(s.authService)
	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"menumatch/internal/dto"
	"menumatch/internal/services"
	"menumatch/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// AuthHandlerSuite defines the test suite for AuthHandler
type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	echo        *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest runs after each test in the suite
func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAuthHandlerSuite runs the test suite
func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) createContext(body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(jsonBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	return c, rec
}

func (s *AuthHandlerSuite) TestLogin_Success() {
	s.authService.EXPECT().
		Login("admin", "correct-password").
		Return("signed.jwt.token", nil)

	c, rec := s.createContext(dto.LoginRequest{
		Username: "admin",
		Password: "correct-password",
	})

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TokenResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("signed.jwt.token", resp.AccessToken)
	s.Equal("Bearer", resp.TokenType)
}

func (s *AuthHandlerSuite) TestLogin_InvalidCredentials() {
	s.authService.EXPECT().
		Login("admin", "wrong-password").
		Return("", services.ErrInvalidCredentials)

	c, rec := s.createContext(dto.LoginRequest{
		Username: "admin",
		Password: "wrong-password",
	})

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthHandlerSuite) TestLogin_MissingFields() {
	c, rec := s.createContext(dto.LoginRequest{Username: "admin"})

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *AuthHandlerSuite) TestLogin_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

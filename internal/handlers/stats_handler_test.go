package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"menumatch/internal/dto"
	"menumatch/internal/models"
	"menumatch/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatsHandlerSuite defines the test suite for StatsHandler
type StatsHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	statsService *service_mocks.MockStatsServiceInterface
	handler      *StatsHandler
	echo         *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *StatsHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.statsService = service_mocks.NewMockStatsServiceInterface(s.ctrl)
	s.handler = NewStatsHandler(s.statsService)
	s.echo = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *StatsHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestStatsHandlerSuite runs the test suite
func TestStatsHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerSuite))
}

func (s *StatsHandlerSuite) TestGetStats_Success() {
	stats := &models.MatchingStats{
		TotalMenus:        10,
		MatchedMenus:      7,
		MatchRate:         0.7,
		AverageConfidence: 0.82,
		AveragePrice:      decimal.NewFromInt(9000),
		MethodCounts: map[string]int64{
			models.MatchMethodExact:        4,
			models.MatchMethodTokenOverlap: 3,
		},
		Categories: []models.CategoryMatchSummary{
			{Category: "한식-찌개", StandardMenuCount: 5, MatchCount: 4},
		},
	}

	s.statsService.EXPECT().GetMatchingStats().Return(stats, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.GetStats(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.StatsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(10), resp.Stats.TotalMenus)
	s.Equal(int64(7), resp.Stats.MatchedMenus)
	s.InDelta(0.7, resp.Stats.MatchRate, 0.0001)
	s.Len(resp.Stats.Categories, 1)
	s.Equal("한식-찌개", resp.Stats.Categories[0].Category)
}

func (s *StatsHandlerSuite) TestGetStats_ServiceError() {
	s.statsService.EXPECT().GetMatchingStats().Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.GetStats(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
}

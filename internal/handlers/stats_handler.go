package handlers

import (
	"net/http"

	"menumatch/internal/dto"
	"menumatch/internal/services"

	"github.com/labstack/echo/v4"
)

// StatsHandler handles matching statistics HTTP requests
type StatsHandler struct {
	statsService services.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService services.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats returns catalog-wide matching statistics
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.statsService.GetMatchingStats()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.StatsResponse{Stats: stats})
}

package handlers

import (
	"net/http"

	"menumatch/internal/dto"
	"menumatch/internal/errors"
	"menumatch/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HistoryHandler handles matching history HTTP requests
type HistoryHandler struct {
	histories repositories.MatchingHistoryRepositoryInterface
}

// NewHistoryHandler creates a new matching history handler
func NewHistoryHandler(histories repositories.MatchingHistoryRepositoryInterface) *HistoryHandler {
	return &HistoryHandler{histories: histories}
}

// ListHistory lists match decisions, filtered by menu or standard menu.
// Without a filter the most recent decisions are returned
func (h *HistoryHandler) ListHistory(c echo.Context) error {
	if v := c.QueryParam("menu_id"); v != "" {
		menuID, err := uuid.Parse(v)
		if err != nil {
			return SendError(c, errors.MenuInvalidID)
		}

		history, err := h.histories.ListByMenu(menuID)
		if err != nil {
			return SendSystemError(c, err)
		}

		return c.JSON(http.StatusOK, dto.HistoryListResponse{
			History: history,
			Total:   len(history),
		})
	}

	if v := c.QueryParam("standard_menu_id"); v != "" {
		standardMenuID, err := uuid.Parse(v)
		if err != nil {
			return SendError(c, errors.StandardMenuInvalidID)
		}

		offset, limit := getPagination(c)
		history, _, err := h.histories.ListByStandardMenu(standardMenuID, offset, limit)
		if err != nil {
			return SendSystemError(c, err)
		}

		return c.JSON(http.StatusOK, dto.HistoryListResponse{
			History: history,
			Total:   len(history),
		})
	}

	limit := getIntParam(c, "limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}

	history, err := h.histories.ListRecent(limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.HistoryListResponse{
		History: history,
		Total:   len(history),
	})
}

package handlers

import (
	"net/http"
	"strings"

	"menumatch/internal/dto"
	"menumatch/internal/errors"
	"menumatch/internal/models"
	"menumatch/internal/repositories"
	"menumatch/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	menus           repositories.MenuRepositoryInterface
	standardMenus   repositories.StandardMenuRepositoryInterface
	histories       repositories.MatchingHistoryRepositoryInterface
	matchingService services.MatchingServiceInterface
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(
	menus repositories.MenuRepositoryInterface,
	standardMenus repositories.StandardMenuRepositoryInterface,
	histories repositories.MatchingHistoryRepositoryInterface,
	matchingService services.MatchingServiceInterface,
) *MenuHandler {
	return &MenuHandler{
		menus:           menus,
		standardMenus:   standardMenus,
		histories:       histories,
		matchingService: matchingService,
	}
}

// CreateMenu registers a raw menu item and immediately runs the matching
// cascade against the standard catalog
func (h *MenuHandler) CreateMenu(c echo.Context) error {
	var req dto.CreateMenuRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return SendError(c, errors.RestaurantInvalidID)
	}

	var price decimal.NullDecimal
	if req.Price != "" {
		d, err := decimal.NewFromString(req.Price)
		if err != nil {
			return SendError(c, errors.MenuInvalidPrice)
		}
		price = decimal.NewNullDecimal(d)
	}

	menu, err := h.matchingService.CreateAndMatch(req.OriginalName, restaurantID, price, req.Description)
	if err != nil {
		switch err {
		case repositories.ErrMenuAlreadyExists:
			return SendError(c, errors.MenuAlreadyExists)
		case repositories.ErrRestaurantNotFound:
			return SendError(c, errors.RestaurantNotFound)
		case models.ErrMenuNameRequired:
			return SendError(c, errors.MatchingInvalidName)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateMenuResponse{
		Menu:    menu,
		Message: "Menu created successfully",
	})
}

// GetMenu retrieves a specific menu by ID
func (h *MenuHandler) GetMenu(c echo.Context) error {
	menuID, err := uuid.Parse(c.Param("menuId"))
	if err != nil {
		return SendError(c, errors.MenuInvalidID)
	}

	menu, err := h.menus.GetByID(menuID)
	if err != nil {
		if err == repositories.ErrMenuNotFound {
			return SendError(c, errors.MenuNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, menu)
}

// ListMenus retrieves menus with optional filters: restaurant_id, matched,
// match_method, is_verified, category
func (h *MenuHandler) ListMenus(c echo.Context) error {
	offset, limit := getPagination(c)

	filters, err := parseMenuFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	menus, total, err := h.menus.List(filters, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MenuListResponse{
		Menus:  menus,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}

// UpdateMenu updates the price or description of a menu
func (h *MenuHandler) UpdateMenu(c echo.Context) error {
	menuID, err := uuid.Parse(c.Param("menuId"))
	if err != nil {
		return SendError(c, errors.MenuInvalidID)
	}

	var req dto.UpdateMenuRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	menu, err := h.menus.GetByID(menuID)
	if err != nil {
		if err == repositories.ErrMenuNotFound {
			return SendError(c, errors.MenuNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Price != nil {
		if *req.Price == "" {
			menu.Price = decimal.NullDecimal{}
		} else {
			d, err := decimal.NewFromString(*req.Price)
			if err != nil {
				return SendError(c, errors.MenuInvalidPrice)
			}
			menu.Price = decimal.NewNullDecimal(d)
		}
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}

	if err := h.menus.Update(menu); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, menu)
}

// RematchMenu reruns the matching cascade for a single menu
func (h *MenuHandler) RematchMenu(c echo.Context) error {
	menuID, err := uuid.Parse(c.Param("menuId"))
	if err != nil {
		return SendError(c, errors.MenuInvalidID)
	}

	menu, err := h.menus.GetByID(menuID)
	if err != nil {
		if err == repositories.ErrMenuNotFound {
			return SendError(c, errors.MenuNotFound)
		}
		return SendSystemError(c, err)
	}

	if _, err := h.matchingService.Match(menu, true); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, menu)
}

// RematchUnmatched reruns the matching cascade over unmatched menus in bulk
func (h *MenuHandler) RematchUnmatched(c echo.Context) error {
	var req dto.RematchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	result, err := h.matchingService.RematchUnmatched(req.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RematchResponse{
		Total:   result.Total,
		Matched: result.Matched,
		Message: "Rematch completed",
	})
}

// VerifyMatch manually assigns a standard menu to a menu. The match is
// recorded with method "manual" and full confidence
func (h *MenuHandler) VerifyMatch(c echo.Context) error {
	menuID, err := uuid.Parse(c.Param("menuId"))
	if err != nil {
		return SendError(c, errors.MenuInvalidID)
	}

	var req dto.VerifyMatchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	standardMenuID, err := uuid.Parse(req.StandardMenuID)
	if err != nil {
		return SendError(c, errors.StandardMenuInvalidID)
	}

	menu, err := h.menus.GetByID(menuID)
	if err != nil {
		if err == repositories.ErrMenuNotFound {
			return SendError(c, errors.MenuNotFound)
		}
		return SendSystemError(c, err)
	}

	standardMenu, err := h.standardMenus.GetByID(standardMenuID)
	if err != nil {
		if err == repositories.ErrStandardMenuNotFound {
			return SendError(c, errors.StandardMenuNotFound)
		}
		return SendSystemError(c, err)
	}
	if !standardMenu.IsActive {
		return SendError(c, errors.StandardMenuInactive)
	}

	confidence := 1.0
	menu.StandardMenuID = &standardMenu.ID
	menu.MatchConfidence = &confidence
	menu.MatchMethod = models.MatchMethodManual
	menu.IsVerified = true

	if err := h.menus.Update(menu); err != nil {
		return SendSystemError(c, err)
	}

	history := &models.MenuMatchingHistory{
		MenuID:          menu.ID,
		StandardMenuID:  standardMenu.ID,
		ConfidenceScore: confidence,
		MatchMethod:     models.MatchMethodManual,
	}
	if err := h.histories.Create(history); err != nil {
		return SendSystemError(c, err)
	}

	if err := h.standardMenus.IncrementMatchCount(standardMenu.ID); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, menu)
}

// parseMenuFilters builds menu list filters from query parameters
func parseMenuFilters(c echo.Context) (models.MenuFilters, error) {
	var filters models.MenuFilters

	if v := c.QueryParam("restaurant_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filters, err
		}
		filters.RestaurantID = &id
	}

	if v := c.QueryParam("matched"); v != "" {
		matched := strings.EqualFold(v, "true")
		filters.Matched = &matched
	}

	if v := c.QueryParam("is_verified"); v != "" {
		verified := strings.EqualFold(v, "true")
		filters.IsVerified = &verified
	}

	filters.MatchMethod = c.QueryParam("match_method")
	filters.Category = c.QueryParam("category")

	return filters, nil
}

package handlers

import (
	"net/http"

	"menumatch/internal/dto"
	"menumatch/internal/errors"
	"menumatch/internal/models"
	"menumatch/internal/nlp"
	"menumatch/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StandardMenuHandler handles standard menu catalog HTTP requests
type StandardMenuHandler struct {
	standardMenus repositories.StandardMenuRepositoryInterface
	menus         repositories.MenuRepositoryInterface
}

// NewStandardMenuHandler creates a new standard menu handler
func NewStandardMenuHandler(
	standardMenus repositories.StandardMenuRepositoryInterface,
	menus repositories.MenuRepositoryInterface,
) *StandardMenuHandler {
	return &StandardMenuHandler{
		standardMenus: standardMenus,
		menus:         menus,
	}
}

// ListStandardMenus retrieves catalog entries with pagination
func (h *StandardMenuHandler) ListStandardMenus(c echo.Context) error {
	offset, limit := getPagination(c)

	standardMenus, total, err := h.standardMenus.List(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.StandardMenuListResponse{
		StandardMenus: standardMenus,
		Total:         total,
		Offset:        offset,
		Limit:         limit,
	})
}

// GetStandardMenu retrieves a specific catalog entry by ID
func (h *StandardMenuHandler) GetStandardMenu(c echo.Context) error {
	id, err := uuid.Parse(c.Param("standardMenuId"))
	if err != nil {
		return SendError(c, errors.StandardMenuInvalidID)
	}

	standardMenu, err := h.standardMenus.GetByID(id)
	if err != nil {
		if err == repositories.ErrStandardMenuNotFound {
			return SendError(c, errors.StandardMenuNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, standardMenu)
}

// CreateStandardMenu adds a new entry to the standard catalog. The
// normalized name is derived server-side so catalog entries always carry
// a canonical comparison form
func (h *StandardMenuHandler) CreateStandardMenu(c echo.Context) error {
	var req dto.CreateStandardMenuRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	normalized := nlp.Normalize(req.Name)
	if normalized == "" {
		return SendError(c, errors.MatchingInvalidName)
	}

	standardMenu := &models.StandardMenu{
		Name:           req.Name,
		NormalizedName: normalized,
		Category:       req.Category,
		Description:    req.Description,
		IsActive:       true,
	}

	if err := h.standardMenus.Create(standardMenu); err != nil {
		if err == repositories.ErrStandardMenuAlreadyExists {
			return SendError(c, errors.StandardMenuAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateStandardMenuResponse{
		StandardMenu: standardMenu,
		Message:      "Standard menu created successfully",
	})
}

// UpdateStandardMenu updates category, description, or active flag of a
// catalog entry. The name is immutable; matched menus reference it
func (h *StandardMenuHandler) UpdateStandardMenu(c echo.Context) error {
	id, err := uuid.Parse(c.Param("standardMenuId"))
	if err != nil {
		return SendError(c, errors.StandardMenuInvalidID)
	}

	var req dto.UpdateStandardMenuRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	standardMenu, err := h.standardMenus.GetByID(id)
	if err != nil {
		if err == repositories.ErrStandardMenuNotFound {
			return SendError(c, errors.StandardMenuNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Category != nil {
		standardMenu.Category = *req.Category
	}
	if req.Description != nil {
		standardMenu.Description = *req.Description
	}
	if req.IsActive != nil {
		standardMenu.IsActive = *req.IsActive
	}

	if err := h.standardMenus.Update(standardMenu); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, standardMenu)
}

// DeleteStandardMenu removes a catalog entry
func (h *StandardMenuHandler) DeleteStandardMenu(c echo.Context) error {
	id, err := uuid.Parse(c.Param("standardMenuId"))
	if err != nil {
		return SendError(c, errors.StandardMenuInvalidID)
	}

	if err := h.standardMenus.Delete(id); err != nil {
		if err == repositories.ErrStandardMenuNotFound {
			return SendError(c, errors.StandardMenuNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Standard menu deleted successfully",
	})
}

// GetStandardMenuMenus lists the raw menus matched to a catalog entry
func (h *StandardMenuHandler) GetStandardMenuMenus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("standardMenuId"))
	if err != nil {
		return SendError(c, errors.StandardMenuInvalidID)
	}

	if _, err := h.standardMenus.GetByID(id); err != nil {
		if err == repositories.ErrStandardMenuNotFound {
			return SendError(c, errors.StandardMenuNotFound)
		}
		return SendSystemError(c, err)
	}

	offset, limit := getPagination(c)
	menus, total, err := h.menus.GetByStandardMenuID(id, offset, limit)
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

package dto

import (
	"menumatch/internal/models"
)

// Standard Menu Request DTOs

// CreateStandardMenuRequest represents the request payload for adding a
// catalog entry
type CreateStandardMenuRequest struct {
	Name        string `json:"name" validate:"required,menu_name"`
	Category    string `json:"category" validate:"required,menu_category"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateStandardMenuRequest represents the request payload for updating a
// catalog entry. Nil fields are left unchanged
type UpdateStandardMenuRequest struct {
	Category    *string `json:"category" validate:"omitempty,menu_category"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// Standard Menu Response DTOs

// StandardMenuResponse represents a single catalog entry in API responses
type StandardMenuResponse struct {
	*models.StandardMenu
}

// StandardMenuListResponse represents a paginated list of catalog entries
type StandardMenuListResponse struct {
	StandardMenus []models.StandardMenu `json:"standard_menus"`
	Total         int64                 `json:"total"`
	Offset        int                   `json:"offset"`
	Limit         int                   `json:"limit"`
}

// CreateStandardMenuResponse represents the response after adding a catalog entry
type CreateStandardMenuResponse struct {
	StandardMenu *models.StandardMenu `json:"standard_menu"`
	Message      string               `json:"message"`
}

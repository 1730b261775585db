package dto

import (
	"menumatch/internal/models"
)

// Menu Request DTOs

// CreateMenuRequest represents the request payload for registering a menu.
// The name is matched against the standard catalog on creation
type CreateMenuRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
	OriginalName string `json:"original_name" validate:"required,menu_name"`
	Price        string `json:"price" validate:"omitempty,menu_price"`
	Description  string `json:"description" validate:"max=500"`
}

// UpdateMenuRequest represents the request payload for updating menu fields.
// Matching fields are not writable here; use the verify or rematch endpoints
type UpdateMenuRequest struct {
	Price       *string `json:"price" validate:"omitempty,menu_price"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// VerifyMatchRequest represents an admin confirming or overriding a match
type VerifyMatchRequest struct {
	StandardMenuID string `json:"standard_menu_id" validate:"required,uuid"`
}

// RematchRequest represents the request payload for a batch rematch run
type RematchRequest struct {
	Limit int `json:"limit" validate:"omitempty,gte=1,lte=1000"`
}

// Menu Response DTOs

// MenuResponse represents a single menu in API responses
type MenuResponse struct {
	*models.Menu
}

// MenuListResponse represents a paginated list of menus
type MenuListResponse struct {
	Menus  []models.Menu `json:"menus"`
	Total  int64         `json:"total"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
}

// CreateMenuResponse represents the response after registering a menu
type CreateMenuResponse struct {
	Menu    *models.Menu `json:"menu"`
	Message string       `json:"message"`
}

// RematchResponse represents the outcome of a batch rematch run
type RematchResponse struct {
	Total   int    `json:"total"`
	Matched int    `json:"matched"`
	Message string `json:"message"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

package dto

import (
	"menumatch/internal/models"
)

// Restaurant Request DTOs

// CreateRestaurantRequest represents the request payload for registering a restaurant
type CreateRestaurantRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=20"`
}

// UpdateRestaurantRequest represents the request payload for updating a restaurant
type UpdateRestaurantRequest struct {
	Address  *string `json:"address" validate:"omitempty,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	IsActive *bool   `json:"is_active"`
}

// Restaurant Response DTOs

// RestaurantResponse represents a single restaurant in API responses
type RestaurantResponse struct {
	*models.Restaurant
}

// RestaurantListResponse represents a paginated list of restaurants
type RestaurantListResponse struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Total       int64               `json:"total"`
	Offset      int                 `json:"offset"`
	Limit       int                 `json:"limit"`
}

// CreateRestaurantResponse represents the response after registering a restaurant
type CreateRestaurantResponse struct {
	Restaurant *models.Restaurant `json:"restaurant"`
	Message    string             `json:"message"`
}

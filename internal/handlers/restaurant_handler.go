package handlers

import (
	"net/http"

	"menumatch/internal/dto"
	"menumatch/internal/errors"
	"menumatch/internal/models"
	"menumatch/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RestaurantHandler handles restaurant-related HTTP requests
type RestaurantHandler struct {
	restaurants repositories.RestaurantRepositoryInterface
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(restaurants repositories.RestaurantRepositoryInterface) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants}
}

// ListRestaurants retrieves restaurants with pagination
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	offset, limit := getPagination(c)

	restaurants, total, err := h.restaurants.List(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RestaurantListResponse{
		Restaurants: restaurants,
		Total:       total,
		Offset:      offset,
		Limit:       limit,
	})
}

// GetRestaurant retrieves a restaurant with its menus
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return SendError(c, errors.RestaurantInvalidID)
	}

	restaurant, err := h.restaurants.GetByIDWithMenus(id)
	if err != nil {
		if err == repositories.ErrRestaurantNotFound {
			return SendError(c, errors.RestaurantNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, restaurant)
}

// CreateRestaurant registers a new restaurant
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req dto.CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	restaurant := &models.Restaurant{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
	}

	if err := h.restaurants.Create(restaurant); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateRestaurantResponse{
		Restaurant: restaurant,
		Message:    "Restaurant created successfully",
	})
}

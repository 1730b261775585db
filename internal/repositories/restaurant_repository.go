package repositories

import (
	"errors"
	"fmt"

	"menumatch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository handles database operations for restaurants
type RestaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) RestaurantRepositoryInterface {
	return &RestaurantRepository{
		db: db,
	}
}

// Create creates a new restaurant
func (r *RestaurantRepository) Create(restaurant *models.Restaurant) error {
	if restaurant == nil {
		return errors.New("restaurant cannot be nil")
	}

	if err := r.db.Create(restaurant).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	return nil
}

// GetByID retrieves a restaurant by its ID
func (r *RestaurantRepository) GetByID(id uuid.UUID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant by ID: %w", err)
	}

	return &restaurant, nil
}

// GetByIDWithMenus retrieves a restaurant with its menus preloaded
func (r *RestaurantRepository) GetByIDWithMenus(id uuid.UUID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.
		Preload("Menus").
		Preload("Menus.StandardMenu").
		First(&restaurant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant with menus: %w", err)
	}

	return &restaurant, nil
}

// List returns a page of restaurants with the total count
func (r *RestaurantRepository) List(offset, limit int) ([]models.Restaurant, int64, error) {
	var total int64
	if err := r.db.Model(&models.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	var restaurants []models.Restaurant
	err := r.db.
		Order("name").
		Offset(offset).
		Limit(limit).
		Find(&restaurants).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list restaurants: %w", err)
	}

	return restaurants, total, nil
}

// ListActive returns all active restaurants ordered by name
func (r *RestaurantRepository) ListActive() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.
		Where("is_active = ?", true).
		Order("name").
		Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active restaurants: %w", err)
	}

	return restaurants, nil
}

// Update updates a restaurant
func (r *RestaurantRepository) Update(restaurant *models.Restaurant) error {
	if restaurant == nil {
		return errors.New("restaurant cannot be nil")
	}

	if err := r.db.Save(restaurant).Error; err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	return nil
}

// Delete deletes a restaurant and, via the cascade constraint, its menus
func (r *RestaurantRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Restaurant{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete restaurant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}

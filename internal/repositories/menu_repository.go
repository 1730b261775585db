package repositories

import (
	"errors"
	"fmt"

	"menumatch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMenuNotFound      = errors.New("menu not found")
	ErrMenuAlreadyExists = errors.New("menu already exists for this restaurant")
)

// MenuRepository handles database operations for menus
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) MenuRepositoryInterface {
	return &MenuRepository{
		db: db,
	}
}

// Create creates a new menu
func (r *MenuRepository) Create(menu *models.Menu) error {
	if menu == nil {
		return errors.New("menu cannot be nil")
	}

	if err := r.db.Create(menu).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrMenuAlreadyExists
		}
		return fmt.Errorf("failed to create menu: %w", err)
	}

	return nil
}

// GetByID retrieves a menu by its ID with its standard menu preloaded
func (r *MenuRepository) GetByID(id uuid.UUID) (*models.Menu, error) {
	var menu models.Menu
	err := r.db.Preload("StandardMenu").First(&menu, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to get menu by ID: %w", err)
	}

	return &menu, nil
}

// GetByRestaurantID returns a page of menus for one restaurant
func (r *MenuRepository) GetByRestaurantID(restaurantID uuid.UUID, offset, limit int) ([]models.Menu, int64, error) {
	query := r.db.Model(&models.Menu{}).Where("restaurant_id = ?", restaurantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurant menus: %w", err)
	}

	var menus []models.Menu
	err := query.
		Preload("StandardMenu").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&menus).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get restaurant menus: %w", err)
	}

	return menus, total, nil
}

// GetByStandardMenuID returns a page of menus matched to one standard menu
func (r *MenuRepository) GetByStandardMenuID(standardMenuID uuid.UUID, offset, limit int) ([]models.Menu, int64, error) {
	query := r.db.Model(&models.Menu{}).Where("standard_menu_id = ?", standardMenuID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count matched menus: %w", err)
	}

	var menus []models.Menu
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&menus).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get matched menus: %w", err)
	}

	return menus, total, nil
}

// ListUnmatched returns up to limit menus with no standard menu assigned,
// oldest first so rematch batches drain the backlog in order
func (r *MenuRepository) ListUnmatched(limit int) ([]models.Menu, error) {
	var menus []models.Menu
	err := r.db.
		Where("standard_menu_id IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unmatched menus: %w", err)
	}

	return menus, nil
}

// List returns a filtered page of menus with the total count
func (r *MenuRepository) List(filters models.MenuFilters, offset, limit int) ([]models.Menu, int64, error) {
	query := r.db.Model(&models.Menu{})

	if filters.RestaurantID != nil {
		query = query.Where("restaurant_id = ?", *filters.RestaurantID)
	}
	if filters.Matched != nil {
		if *filters.Matched {
			query = query.Where("standard_menu_id IS NOT NULL")
		} else {
			query = query.Where("standard_menu_id IS NULL")
		}
	}
	if filters.MatchMethod != "" {
		query = query.Where("match_method = ? AND standard_menu_id IS NOT NULL", filters.MatchMethod)
	}
	if filters.IsVerified != nil {
		query = query.Where("is_verified = ?", *filters.IsVerified)
	}
	if filters.Category != "" {
		query = query.
			Joins("JOIN standard_menus ON standard_menus.id = menus.standard_menu_id").
			Where("standard_menus.category = ?", filters.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count menus: %w", err)
	}

	var menus []models.Menu
	err := query.
		Preload("StandardMenu").
		Order("menus.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&menus).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list menus: %w", err)
	}

	return menus, total, nil
}

// Update updates a menu
func (r *MenuRepository) Update(menu *models.Menu) error {
	if menu == nil {
		return errors.New("menu cannot be nil")
	}

	if err := r.db.Save(menu).Error; err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}

	return nil
}

// Count returns the total number of menus
func (r *MenuRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Menu{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count menus: %w", err)
	}

	return total, nil
}

// CountMatched returns the number of menus with a standard menu assigned
func (r *MenuRepository) CountMatched() (int64, error) {
	var total int64
	err := r.db.Model(&models.Menu{}).
		Where("standard_menu_id IS NOT NULL").
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count matched menus: %w", err)
	}

	return total, nil
}

// MethodCounts returns how many matched menus were decided by each match method
func (r *MenuRepository) MethodCounts() (map[string]int64, error) {
	var rows []struct {
		MatchMethod string
		Count       int64
	}
	err := r.db.Model(&models.Menu{}).
		Select("match_method, COUNT(*) AS count").
		Where("standard_menu_id IS NOT NULL").
		Group("match_method").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count match methods: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.MatchMethod] = row.Count
	}

	return counts, nil
}

// AverageConfidence returns the mean confidence over matched menus, 0 when
// nothing has been matched yet
func (r *MenuRepository) AverageConfidence() (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Menu{}).
		Select("AVG(match_confidence)").
		Where("standard_menu_id IS NOT NULL").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to average match confidence: %w", err)
	}

	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// AveragePrice returns the mean price over menus that have one, zero when
// no menu carries a price
func (r *MenuRepository) AveragePrice() (decimal.Decimal, error) {
	var avg *string
	err := r.db.Model(&models.Menu{}).
		Select("AVG(price)").
		Where("price IS NOT NULL").
		Scan(&avg).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to average menu price: %w", err)
	}

	if avg == nil || *avg == "" {
		return decimal.Zero, nil
	}

	price, err := decimal.NewFromString(*avg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse average price: %w", err)
	}
	return price, nil
}

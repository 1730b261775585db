package repositories

import (
	"menumatch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StandardMenuRepositoryInterface defines the catalog query capability the
// matching service depends on, plus administrative CRUD
type StandardMenuRepositoryInterface interface {
	Create(menu *models.StandardMenu) error
	GetByID(id uuid.UUID) (*models.StandardMenu, error)
	GetByName(name string) (*models.StandardMenu, error)
	// FindActiveByNormalizedName returns (nil, nil) when no active entry
	// has the given normalized name; absence is a normal outcome here.
	FindActiveByNormalizedName(name string) (*models.StandardMenu, error)
	// FindActiveCandidatesContainingAny returns active entries whose name
	// or normalized name contains at least one of the tokens as a substring.
	FindActiveCandidatesContainingAny(tokens []string) ([]models.StandardMenu, error)
	ListActive() ([]models.StandardMenu, error)
	List(offset, limit int) ([]models.StandardMenu, int64, error)
	Update(menu *models.StandardMenu) error
	Delete(id uuid.UUID) error
	// IncrementMatchCount atomically adds one to the entry's match counter.
	// Safe under concurrent calls targeting the same entry.
	IncrementMatchCount(id uuid.UUID) error
	CategorySummary() ([]models.CategoryMatchSummary, error)
}

// MenuRepositoryInterface defines the contract for menu persistence
type MenuRepositoryInterface interface {
	Create(menu *models.Menu) error
	GetByID(id uuid.UUID) (*models.Menu, error)
	GetByRestaurantID(restaurantID uuid.UUID, offset, limit int) ([]models.Menu, int64, error)
	GetByStandardMenuID(standardMenuID uuid.UUID, offset, limit int) ([]models.Menu, int64, error)
	ListUnmatched(limit int) ([]models.Menu, error)
	List(filters models.MenuFilters, offset, limit int) ([]models.Menu, int64, error)
	Update(menu *models.Menu) error
	Count() (int64, error)
	CountMatched() (int64, error)
	MethodCounts() (map[string]int64, error)
	AverageConfidence() (float64, error)
	AveragePrice() (decimal.Decimal, error)
}

// MatchingHistoryRepositoryInterface defines the contract for the
// append-only match event log
type MatchingHistoryRepositoryInterface interface {
	Create(history *models.MenuMatchingHistory) error
	ListByMenu(menuID uuid.UUID) ([]models.MenuMatchingHistory, error)
	ListByStandardMenu(standardMenuID uuid.UUID, offset, limit int) ([]models.MenuMatchingHistory, int64, error)
	ListRecent(limit int) ([]models.MenuMatchingHistory, error)
}

// RestaurantRepositoryInterface defines the contract for restaurant persistence
type RestaurantRepositoryInterface interface {
	Create(restaurant *models.Restaurant) error
	GetByID(id uuid.UUID) (*models.Restaurant, error)
	GetByIDWithMenus(id uuid.UUID) (*models.Restaurant, error)
	List(offset, limit int) ([]models.Restaurant, int64, error)
	ListActive() ([]models.Restaurant, error)
	Update(restaurant *models.Restaurant) error
	Delete(id uuid.UUID) error
}

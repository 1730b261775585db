package repositories

import (
	"errors"
	"fmt"

	"menumatch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchingHistoryRepository handles database operations for the append-only
// match event log
type MatchingHistoryRepository struct {
	db *gorm.DB
}

// NewMatchingHistoryRepository creates a new matching history repository
func NewMatchingHistoryRepository(db *gorm.DB) MatchingHistoryRepositoryInterface {
	return &MatchingHistoryRepository{
		db: db,
	}
}

// Create appends one match event. Events are immutable once created.
func (r *MatchingHistoryRepository) Create(history *models.MenuMatchingHistory) error {
	if history == nil {
		return errors.New("matching history cannot be nil")
	}

	if err := r.db.Create(history).Error; err != nil {
		return fmt.Errorf("failed to create matching history: %w", err)
	}

	return nil
}

// ListByMenu returns all match events for one menu, newest first
func (r *MatchingHistoryRepository) ListByMenu(menuID uuid.UUID) ([]models.MenuMatchingHistory, error) {
	var histories []models.MenuMatchingHistory
	err := r.db.
		Where("menu_id = ?", menuID).
		Order("created_at DESC").
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list matching history for menu: %w", err)
	}

	return histories, nil
}

// ListByStandardMenu returns a page of match events for one standard menu
func (r *MatchingHistoryRepository) ListByStandardMenu(standardMenuID uuid.UUID, offset, limit int) ([]models.MenuMatchingHistory, int64, error) {
	query := r.db.Model(&models.MenuMatchingHistory{}).Where("standard_menu_id = ?", standardMenuID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count matching history: %w", err)
	}

	var histories []models.MenuMatchingHistory
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&histories).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list matching history for standard menu: %w", err)
	}

	return histories, total, nil
}

// ListRecent returns the most recent match events across all menus
func (r *MatchingHistoryRepository) ListRecent(limit int) ([]models.MenuMatchingHistory, error) {
	var histories []models.MenuMatchingHistory
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent matching history: %w", err)
	}

	return histories, nil
}

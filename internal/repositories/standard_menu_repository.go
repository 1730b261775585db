package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"menumatch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStandardMenuNotFound      = errors.New("standard menu not found")
	ErrStandardMenuAlreadyExists = errors.New("standard menu already exists")
)

// StandardMenuRepository handles database operations for standard menus
type StandardMenuRepository struct {
	db *gorm.DB
}

// NewStandardMenuRepository creates a new standard menu repository
func NewStandardMenuRepository(db *gorm.DB) StandardMenuRepositoryInterface {
	return &StandardMenuRepository{
		db: db,
	}
}

// Create creates a new standard menu
func (r *StandardMenuRepository) Create(menu *models.StandardMenu) error {
	if menu == nil {
		return errors.New("standard menu cannot be nil")
	}

	if err := r.db.Create(menu).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrStandardMenuAlreadyExists
		}
		return fmt.Errorf("failed to create standard menu: %w", err)
	}

	return nil
}

// GetByID retrieves a standard menu by its ID
func (r *StandardMenuRepository) GetByID(id uuid.UUID) (*models.StandardMenu, error) {
	var menu models.StandardMenu
	if err := r.db.First(&menu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStandardMenuNotFound
		}
		return nil, fmt.Errorf("failed to get standard menu by ID: %w", err)
	}

	return &menu, nil
}

// GetByName retrieves a standard menu by its unique display name
func (r *StandardMenuRepository) GetByName(name string) (*models.StandardMenu, error) {
	var menu models.StandardMenu
	if err := r.db.Where("name = ?", name).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStandardMenuNotFound
		}
		return nil, fmt.Errorf("failed to get standard menu by name: %w", err)
	}

	return &menu, nil
}

// FindActiveByNormalizedName looks up an active standard menu by exact
// normalized name equality. Absence is a normal outcome and returns
// (nil, nil); an error means the lookup itself failed.
func (r *StandardMenuRepository) FindActiveByNormalizedName(name string) (*models.StandardMenu, error) {
	var menu models.StandardMenu
	err := r.db.Where("normalized_name = ? AND is_active = ?", name, true).First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find standard menu by normalized name: %w", err)
	}

	return &menu, nil
}

// FindActiveCandidatesContainingAny returns active standard menus whose name
// or normalized name contains at least one token as a substring (OR across
// tokens). Results are ordered by descending match count, then name, so
// iteration order is deterministic.
func (r *StandardMenuRepository) FindActiveCandidatesContainingAny(tokens []string) ([]models.StandardMenu, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	conditions := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens)*2)
	for _, token := range tokens {
		conditions = append(conditions, "name LIKE ? OR normalized_name LIKE ?")
		pattern := "%" + escapeLike(token) + "%"
		args = append(args, pattern, pattern)
	}

	var menus []models.StandardMenu
	err := r.db.
		Where("is_active = ?", true).
		Where(strings.Join(conditions, " OR "), args...).
		Order("match_count DESC, name").
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find candidate standard menus: %w", err)
	}

	return menus, nil
}

// ListActive returns all active standard menus ordered by descending match
// count, then name
func (r *StandardMenuRepository) ListActive() ([]models.StandardMenu, error) {
	var menus []models.StandardMenu
	err := r.db.
		Where("is_active = ?", true).
		Order("match_count DESC, name").
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active standard menus: %w", err)
	}

	return menus, nil
}

// List returns a page of standard menus with the total count
func (r *StandardMenuRepository) List(offset, limit int) ([]models.StandardMenu, int64, error) {
	var total int64
	if err := r.db.Model(&models.StandardMenu{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count standard menus: %w", err)
	}

	var menus []models.StandardMenu
	err := r.db.
		Order("match_count DESC, name").
		Offset(offset).
		Limit(limit).
		Find(&menus).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list standard menus: %w", err)
	}

	return menus, total, nil
}

// Update updates a standard menu
func (r *StandardMenuRepository) Update(menu *models.StandardMenu) error {
	if menu == nil {
		return errors.New("standard menu cannot be nil")
	}

	if err := r.db.Save(menu).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrStandardMenuAlreadyExists
		}
		return fmt.Errorf("failed to update standard menu: %w", err)
	}

	return nil
}

// Delete deletes a standard menu by ID
func (r *StandardMenuRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.StandardMenu{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete standard menu: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStandardMenuNotFound
	}

	return nil
}

// IncrementMatchCount atomically adds one to the match counter. The
// increment runs as a single UPDATE expression so concurrent matches to the
// same entry never lose updates.
func (r *StandardMenuRepository) IncrementMatchCount(id uuid.UUID) error {
	result := r.db.Model(&models.StandardMenu{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"match_count": gorm.Expr("match_count + ?", 1),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to increment match count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStandardMenuNotFound
	}

	return nil
}

// CategorySummary aggregates standard menu counts and match counts per category
func (r *StandardMenuRepository) CategorySummary() ([]models.CategoryMatchSummary, error) {
	var summaries []models.CategoryMatchSummary
	err := r.db.Model(&models.StandardMenu{}).
		Select("category, COUNT(*) AS standard_menu_count, COALESCE(SUM(match_count), 0) AS match_count").
		Where("is_active = ?", true).
		Group("category").
		Order("match_count DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category summary: %w", err)
	}

	return summaries, nil
}

// escapeLike escapes LIKE wildcards in a user-supplied token so containment
// checks stay literal
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Postgres and SQLite duplicate key error detection
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}

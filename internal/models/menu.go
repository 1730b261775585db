package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Match methods, in cascade order. MatchMethodTokenOverlap is the column
// default and acts as a placeholder until a match attempt runs; the menu is
// only considered matched once StandardMenuID is set.
const (
	MatchMethodExact        = "exact"
	MatchMethodTokenOverlap = "token-overlap"
	MatchMethodEmbedding    = "embedding"
	MatchMethodManual       = "manual"
)

var (
	ErrMenuNameRequired       = errors.New("original menu name is required")
	ErrMenuRestaurantRequired = errors.New("restaurant ID is required")
	ErrInvalidMatchMethod     = errors.New("invalid match method")
	ErrInvalidConfidence      = errors.New("match confidence must be between 0 and 1")
)

// Menu is a raw menu item as listed by a single restaurant. Many menus may
// reference the same StandardMenu; the reference is a classification, not
// ownership.
type Menu struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OriginalName   string     `gorm:"type:varchar(300);not null;uniqueIndex:idx_menus_restaurant_original" json:"original_name"`
	NormalizedName string     `gorm:"type:varchar(300);index;not null" json:"normalized_name"`
	StandardMenuID *uuid.UUID `gorm:"type:uuid;index" json:"standard_menu_id,omitempty"`
	RestaurantID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_menus_restaurant_original" json:"restaurant_id"`

	Price       decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"price,omitempty"`
	Description string              `gorm:"type:text" json:"description,omitempty"`

	MatchConfidence *float64  `json:"match_confidence,omitempty"`
	MatchMethod     string    `gorm:"type:varchar(50);not null;default:'token-overlap'" json:"match_method"`
	IsVerified      bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	StandardMenu *StandardMenu `gorm:"foreignKey:StandardMenuID" json:"standard_menu,omitempty"`
	Restaurant   Restaurant    `gorm:"foreignKey:RestaurantID" json:"-"`
}

// BeforeCreate hook for Menu
func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if m.MatchMethod == "" {
		m.MatchMethod = MatchMethodTokenOverlap
	}

	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	return m.Validate()
}

// BeforeUpdate hook for Menu
func (m *Menu) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return m.Validate()
}

// Validate validates the menu fields
func (m *Menu) Validate() error {
	if m.OriginalName == "" {
		return ErrMenuNameRequired
	}

	if m.RestaurantID == uuid.Nil {
		return ErrMenuRestaurantRequired
	}

	if !IsValidMatchMethod(m.MatchMethod) {
		return ErrInvalidMatchMethod
	}

	if m.MatchConfidence != nil && (*m.MatchConfidence < 0 || *m.MatchConfidence > 1) {
		return ErrInvalidConfidence
	}

	return nil
}

// IsMatched reports whether the menu has been matched to a standard menu
func (m *Menu) IsMatched() bool {
	return m.StandardMenuID != nil
}

// AllMatchMethods returns all valid match method constants
func AllMatchMethods() []string {
	return []string{
		MatchMethodExact,
		MatchMethodTokenOverlap,
		MatchMethodEmbedding,
		MatchMethodManual,
	}
}

// IsValidMatchMethod checks if a match method string is valid
func IsValidMatchMethod(method string) bool {
	for _, valid := range AllMatchMethods() {
		if method == valid {
			return true
		}
	}
	return false
}

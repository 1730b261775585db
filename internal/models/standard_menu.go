package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStandardMenuNameRequired       = errors.New("standard menu name is required")
	ErrStandardMenuNormalizedRequired = errors.New("normalized name is required")
	ErrNegativeMatchCount             = errors.New("match count cannot be negative")
)

// StandardMenu is a canonical menu entry that raw restaurant menu names
// are matched against. NormalizedName must already be in normalized form
// (normalizing it again is a no-op).
type StandardMenu struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	NormalizedName string    `gorm:"type:varchar(200);index;not null" json:"normalized_name"`
	Category       string    `gorm:"type:varchar(100)" json:"category,omitempty"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	MatchCount     int       `gorm:"not null;default:0" json:"match_count"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Menus []Menu `gorm:"foreignKey:StandardMenuID" json:"-"`
}

// BeforeCreate hook for StandardMenu
func (m *StandardMenu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
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

// BeforeUpdate hook for StandardMenu
func (m *StandardMenu) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return m.Validate()
}

// Validate validates the standard menu fields
func (m *StandardMenu) Validate() error {
	if m.Name == "" {
		return ErrStandardMenuNameRequired
	}

	if m.NormalizedName == "" {
		return ErrStandardMenuNormalizedRequired
	}

	if m.MatchCount < 0 {
		return ErrNegativeMatchCount
	}

	return nil
}

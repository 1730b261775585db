package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRestaurantNameRequired = errors.New("restaurant name is required")

// Restaurant represents a restaurant whose menu listing is being aggregated
type Restaurant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null;index" json:"name"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Category  string    `gorm:"type:varchar(100);index" json:"category,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Menus []Menu `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"menus,omitempty"`
}

// BeforeCreate hook for Restaurant
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// BeforeUpdate hook for Restaurant
func (r *Restaurant) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return r.Validate()
}

// Validate validates the restaurant fields
func (r *Restaurant) Validate() error {
	if r.Name == "" {
		return ErrRestaurantNameRequired
	}
	return nil
}

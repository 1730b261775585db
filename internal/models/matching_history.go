package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrHistoryMenuRequired         = errors.New("menu ID is required")
	ErrHistoryStandardMenuRequired = errors.New("standard menu ID is required")
	ErrHistoryInvalidScore         = errors.New("confidence score must be between 0 and 1")
	ErrHistoryMethodRequired       = errors.New("match method is required")
)

// MenuMatchingHistory records a single successful match decision. Rows are
// append-only: exactly one per successful match, never updated afterwards.
type MenuMatchingHistory struct {
	ID              uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	MenuID          uuid.UUID   `gorm:"type:uuid;not null;index" json:"menu_id"`
	StandardMenuID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"standard_menu_id"`
	ConfidenceScore float64     `gorm:"not null;index" json:"confidence_score"`
	MatchMethod     string      `gorm:"type:varchar(50);not null" json:"match_method"`
	MatchedTokens   TokenList   `gorm:"type:text" json:"matched_tokens"`
	CreatedAt       time.Time   `gorm:"not null;index" json:"created_at"`

	// Associations
	Menu         Menu         `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"-"`
	StandardMenu StandardMenu `gorm:"foreignKey:StandardMenuID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for MenuMatchingHistory
func (h *MenuMatchingHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}

	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}

	return h.Validate()
}

// Validate validates the matching history fields
func (h *MenuMatchingHistory) Validate() error {
	if h.MenuID == uuid.Nil {
		return ErrHistoryMenuRequired
	}

	if h.StandardMenuID == uuid.Nil {
		return ErrHistoryStandardMenuRequired
	}

	if h.ConfidenceScore < 0 || h.ConfidenceScore > 1 {
		return ErrHistoryInvalidScore
	}

	if h.MatchMethod == "" {
		return ErrHistoryMethodRequired
	}

	return nil
}

func (h *MenuMatchingHistory) String() string {
	return fmt.Sprintf("MatchingHistory[Menu: %s, StandardMenu: %s, Method: %s, Score: %.3f]",
		h.MenuID, h.StandardMenuID, h.MatchMethod, h.ConfidenceScore)
}

func (h *MenuMatchingHistory) TableName() string {
	return "menu_matching_histories"
}

// TokenList stores an ordered list of matched tokens as a JSON column
type TokenList []string

// Value implements driver.Valuer interface
func (t TokenList) Value() (driver.Value, error) {
	if t == nil {
		t = TokenList{}
	}
	bytes, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (t *TokenList) Scan(value interface{}) error {
	if value == nil {
		*t = TokenList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for TokenList: %T", value)
	}

	return json.Unmarshal(bytes, t)
}

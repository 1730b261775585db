package services

import (
	"time"

	"menumatch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RematchResult summarizes one batch rematch run
type RematchResult struct {
	Total   int `json:"total"`
	Matched int `json:"matched"`
}

// MatchingServiceInterface defines the contract for the menu matching engine
type MatchingServiceInterface interface {
	// NormalizeMenuName returns the canonical comparison form of a raw menu name
	NormalizeMenuName(name string) string

	// Match runs the exact, token-overlap and embedding stages in order for one menu.
	// A nil, nil return means no stage produced a match, which is a normal
	// outcome, not an error. Errors are storage failures only.
	Match(menu *models.Menu, recordHistory bool) (*models.StandardMenu, error)

	// CreateAndMatch normalizes the name, persists a new menu, and attempts
	// to match it immediately
	CreateAndMatch(originalName string, restaurantID uuid.UUID, price decimal.NullDecimal, description string) (*models.Menu, error)

	// RematchUnmatched retries matching for up to limit unmatched menus.
	// Individual menus that stay unmatched do not abort the batch.
	RematchUnmatched(limit int) (*RematchResult, error)
}

// EmbeddingMatcherInterface is the slice of the embedding engine the
// matching cascade depends on
type EmbeddingMatcherInterface interface {
	IsLoaded() bool
	FindBestMatch(query string, candidates []string, threshold float64) (string, float64, bool)
}

// StatsServiceInterface defines aggregate reporting over the catalog
type StatsServiceInterface interface {
	GetMatchingStats() (*models.MatchingStats, error)
}

// AuthServiceInterface defines admin authentication for catalog management
type AuthServiceInterface interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*models.AdminClaims, error)
}

// MetricsRecorderInterface defines the metrics recorded by the matching engine
type MetricsRecorderInterface interface {
	RecordMatchAttempt(method, outcome string, duration time.Duration)
	RecordMenuCreated()
	RecordRematchBatch(total, matched int)
	SetActiveStandardMenus(count int)
}

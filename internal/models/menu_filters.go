package models

import "github.com/google/uuid"

// MenuFilters contains filtering options for menu list queries
type MenuFilters struct {
	RestaurantID *uuid.UUID
	Matched      *bool
	MatchMethod  string
	IsVerified   *bool
	Category     string
}

package dto

import (
	"menumatch/internal/models"
)

// History Response DTOs

// HistoryListResponse represents a list of matching history records
type HistoryListResponse struct {
	History []models.MenuMatchingHistory `json:"history"`
	Total   int                          `json:"total"`
}

// StatsResponse represents the catalog-wide matching statistics
type StatsResponse struct {
	Stats *models.MatchingStats `json:"stats"`
}

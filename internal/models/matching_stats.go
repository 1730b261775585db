package models

import "github.com/shopspring/decimal"

// CategoryMatchSummary aggregates matching activity for one standard menu category
type CategoryMatchSummary struct {
	Category          string `json:"category"`
	StandardMenuCount int    `json:"standard_menu_count"`
	MatchCount        int    `json:"match_count"`
}

// MatchingStats is an aggregate view over the whole catalog, returned by the
// stats endpoint
type MatchingStats struct {
	TotalMenus        int64                  `json:"total_menus"`
	MatchedMenus      int64                  `json:"matched_menus"`
	MatchRate         float64                `json:"match_rate"`
	AverageConfidence float64                `json:"average_confidence"`
	AveragePrice      decimal.Decimal        `json:"average_price"`
	MethodCounts      map[string]int64       `json:"method_counts"`
	Categories        []CategoryMatchSummary `json:"categories"`
}

package services

import (
	"log/slog"

	"menumatch/internal/models"
	"menumatch/internal/repositories"
)

type statsService struct {
	menus         repositories.MenuRepositoryInterface
	standardMenus repositories.StandardMenuRepositoryInterface
	logger        *slog.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	menus repositories.MenuRepositoryInterface,
	standardMenus repositories.StandardMenuRepositoryInterface,
	logger *slog.Logger,
) StatsServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}

	return &statsService{
		menus:         menus,
		standardMenus: standardMenus,
		logger:        logger,
	}
}

// GetMatchingStats aggregates match rate, confidence, price, per-method and
// per-category counts over the whole catalog
func (s *statsService) GetMatchingStats() (*models.MatchingStats, error) {
	total, err := s.menus.Count()
	if err != nil {
		return nil, err
	}

	matched, err := s.menus.CountMatched()
	if err != nil {
		return nil, err
	}

	avgConfidence, err := s.menus.AverageConfidence()
	if err != nil {
		return nil, err
	}

	avgPrice, err := s.menus.AveragePrice()
	if err != nil {
		return nil, err
	}

	methodCounts, err := s.menus.MethodCounts()
	if err != nil {
		return nil, err
	}

	categories, err := s.standardMenus.CategorySummary()
	if err != nil {
		return nil, err
	}

	stats := &models.MatchingStats{
		TotalMenus:        total,
		MatchedMenus:      matched,
		AverageConfidence: avgConfidence,
		AveragePrice:      avgPrice,
		MethodCounts:      methodCounts,
		Categories:        categories,
	}
	if total > 0 {
		stats.MatchRate = float64(matched) / float64(total)
	}

	s.logger.Info("matching stats generated",
		"total_menus", total,
		"matched_menus", matched,
		"match_rate", stats.MatchRate)

	return stats, nil
}

package repositories

import (
	"testing"
	"time"

	"menumatch/internal/database"
	"menumatch/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// MatchingHistoryRepositorySuite defines the test suite for MatchingHistoryRepository
type MatchingHistoryRepositorySuite struct {
	suite.Suite
	db           *database.DB
	repo         MatchingHistoryRepositoryInterface
	menu         *models.Menu
	standardMenu *models.StandardMenu
}

// SetupTest runs before each test in the suite
func (s *MatchingHistoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewMatchingHistoryRepository(s.db.DB)

	restaurant := database.CreateTestRestaurant(s.T(), s.db, "테스트식당")
	s.standardMenu = database.CreateTestStandardMenu(s.T(), s.db, "김치찌개", "한식-찌개")

	s.menu = &models.Menu{
		OriginalName:   "얼큰 김치찌개",
		NormalizedName: "얼큰 김치찌개",
		RestaurantID:   restaurant.ID,
	}
	s.NoError(s.db.Create(s.menu).Error)
}

// TearDownTest runs after each test in the suite
func (s *MatchingHistoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestMatchingHistoryRepositorySuite runs the test suite
func TestMatchingHistoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(MatchingHistoryRepositorySuite))
}

func (s *MatchingHistoryRepositorySuite) record(score float64, method string, at time.Time) *models.MenuMatchingHistory {
	history := &models.MenuMatchingHistory{
		MenuID:          s.menu.ID,
		StandardMenuID:  s.standardMenu.ID,
		ConfidenceScore: score,
		MatchMethod:     method,
		MatchedTokens:   models.TokenList{"김치", "찌개"},
		CreatedAt:       at,
	}
	s.NoError(s.repo.Create(history))
	return history
}

// Test Create functionality
func (s *MatchingHistoryRepositorySuite) TestCreate() {
	history := s.record(0.85, models.MatchMethodTokenOverlap, time.Time{})

	s.NotEqual(uuid.Nil, history.ID)
	s.NotZero(history.CreatedAt)
}

func (s *MatchingHistoryRepositorySuite) TestCreate_TokenListRoundTrip() {
	s.record(0.85, models.MatchMethodTokenOverlap, time.Time{})

	histories, err := s.repo.ListByMenu(s.menu.ID)
	s.NoError(err)
	s.Require().Len(histories, 1)
	s.Equal(models.TokenList{"김치", "찌개"}, histories[0].MatchedTokens)
}

// Test ListByMenu functionality
func (s *MatchingHistoryRepositorySuite) TestListByMenu() {
	base := time.Now().Add(-time.Hour)
	s.record(0.5, models.MatchMethodTokenOverlap, base)
	newest := s.record(1.0, models.MatchMethodManual, base.Add(time.Minute))

	histories, err := s.repo.ListByMenu(s.menu.ID)
	s.NoError(err)
	s.Require().Len(histories, 2)
	s.Equal(newest.ID, histories[0].ID, "newest first")

	histories, err = s.repo.ListByMenu(uuid.New())
	s.NoError(err)
	s.Len(histories, 0)
}

// Test ListByStandardMenu functionality
func (s *MatchingHistoryRepositorySuite) TestListByStandardMenu() {
	s.record(0.85, models.MatchMethodTokenOverlap, time.Time{})
	s.record(1.0, models.MatchMethodManual, time.Time{})

	histories, total, err := s.repo.ListByStandardMenu(s.standardMenu.ID, 0, 10)
	s.NoError(err)
	s.Len(histories, 2)
	s.Equal(int64(2), total)

	// Pagination
	histories, total, err = s.repo.ListByStandardMenu(s.standardMenu.ID, 0, 1)
	s.NoError(err)
	s.Len(histories, 1)
	s.Equal(int64(2), total)
}

// Test ListRecent functionality
func (s *MatchingHistoryRepositorySuite) TestListRecent() {
	base := time.Now().Add(-time.Hour)
	s.record(0.5, models.MatchMethodTokenOverlap, base)
	s.record(0.9, models.MatchMethodEmbedding, base.Add(time.Minute))
	newest := s.record(1.0, models.MatchMethodExact, base.Add(2*time.Minute))

	histories, err := s.repo.ListRecent(2)
	s.NoError(err)
	s.Require().Len(histories, 2)
	s.Equal(newest.ID, histories[0].ID)
}

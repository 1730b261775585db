package services

import (
	"errors"
	"log/slog"
	"testing"

	"menumatch/internal/models"
	"menumatch/internal/repositories"
	"menumatch/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// stubEmbedder is a controllable stand-in for the embedding engine
type stubEmbedder struct {
	loaded bool
	name   string
	score  float64
	ok     bool
	calls  int
}

func (e *stubEmbedder) IsLoaded() bool { return e.loaded }

func (e *stubEmbedder) FindBestMatch(query string, candidates []string, threshold float64) (string, float64, bool) {
	e.calls++
	return e.name, e.score, e.ok
}

// MatchingServiceSuite defines the test suite for the matching cascade
type MatchingServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	standardMenus *repository_mocks.MockStandardMenuRepositoryInterface
	menus         *repository_mocks.MockMenuRepositoryInterface
	histories     *repository_mocks.MockMatchingHistoryRepositoryInterface
	service       *matchingService
}

// SetupTest runs before each test in the suite
func (s *MatchingServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.standardMenus = repository_mocks.NewMockStandardMenuRepositoryInterface(s.ctrl)
	s.menus = repository_mocks.NewMockMenuRepositoryInterface(s.ctrl)
	s.histories = repository_mocks.NewMockMatchingHistoryRepositoryInterface(s.ctrl)

	defaults := map[string]string{
		"치킨":    "후라이드치킨",
		"한식-찌개": "김치찌개",
	}

	s.service = NewMatchingService(
		s.standardMenus,
		s.menus,
		s.histories,
		nil, // no morphological tokenizer, whitespace fallback applies
		nil, // no embedding model
		defaults,
		nil,
		slog.Default(),
	).(*matchingService)
}

// TearDownTest runs after each test in the suite
func (s *MatchingServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestMatchingServiceSuite runs the test suite
func TestMatchingServiceSuite(t *testing.T) {
	suite.Run(t, new(MatchingServiceSuite))
}

func (s *MatchingServiceSuite) newMenu(original, normalized string) *models.Menu {
	return &models.Menu{
		ID:             uuid.New(),
		OriginalName:   original,
		NormalizedName: normalized,
		RestaurantID:   uuid.New(),
	}
}

func (s *MatchingServiceSuite) newStandardMenu(name, category string) *models.StandardMenu {
	return &models.StandardMenu{
		ID:             uuid.New(),
		Name:           name,
		NormalizedName: name,
		Category:       category,
		IsActive:       true,
	}
}

func (s *MatchingServiceSuite) expectCommit(menu *models.Menu, entry *models.StandardMenu, withHistory bool) {
	s.menus.EXPECT().Update(menu).Return(nil)
	if withHistory {
		s.histories.EXPECT().Create(gomock.Any()).DoAndReturn(func(h *models.MenuMatchingHistory) error {
			s.Equal(menu.ID, h.MenuID)
			s.Equal(entry.ID, h.StandardMenuID)
			return nil
		})
	}
	s.standardMenus.EXPECT().IncrementMatchCount(entry.ID).Return(nil)
}

// Stage 1: exact normalized-name match

func (s *MatchingServiceSuite) TestMatch_Exact() {
	menu := s.newMenu("김치찌개", "김치찌개")
	entry := s.newStandardMenu("김치찌개", "한식-찌개")

	s.standardMenus.EXPECT().FindActiveByNormalizedName("김치찌개").Return(entry, nil)
	s.expectCommit(menu, entry, true)

	result, err := s.service.Match(menu, true)

	s.NoError(err)
	s.Equal(entry, result)
	s.Equal(models.MatchMethodExact, menu.MatchMethod)
	s.NotNil(menu.MatchConfidence)
	s.Equal(1.0, *menu.MatchConfidence)
	s.Equal(&entry.ID, menu.StandardMenuID)
}

func (s *MatchingServiceSuite) TestMatch_Exact_NoSpaceRetry() {
	menu := s.newMenu("김치 찌개", "김치 찌개")
	entry := s.newStandardMenu("김치찌개", "한식-찌개")

	s.standardMenus.EXPECT().FindActiveByNormalizedName("김치 찌개").Return(nil, nil)
	s.standardMenus.EXPECT().FindActiveByNormalizedName("김치찌개").Return(entry, nil)
	s.expectCommit(menu, entry, false)

	result, err := s.service.Match(menu, false)

	s.NoError(err)
	s.Equal(entry, result)
	s.Equal(models.MatchMethodExact, menu.MatchMethod)
}

func (s *MatchingServiceSuite) TestMatch_Exact_WinsBeforeEmbedding() {
	embedder := &stubEmbedder{loaded: true, name: "된장찌개", score: 0.99, ok: true}
	s.service.embedder = embedder

	menu := s.newMenu("김치찌개", "김치찌개")
	entry := s.newStandardMenu("김치찌개", "한식-찌개")

	s.standardMenus.EXPECT().FindActiveByNormalizedName("김치찌개").Return(entry, nil)
	s.expectCommit(menu, entry, true)

	result, err := s.service.Match(menu, true)

	s.NoError(err)
	s.Equal(entry, result)
	s.Zero(embedder.calls, "embedding stage must not run when the exact stage matched")
}

func (s *MatchingServiceSuite) TestMatch_StorageError() {
	menu := s.newMenu("김치찌개", "김치찌개")

	s.standardMenus.EXPECT().FindActiveByNormalizedName("김치찌개").Return(nil, errors.New("connection refused"))

	result, err := s.service.Match(menu, true)

	s.Error(err)
	s.Nil(result)
}

// Stage 2: token-overlap match

func (s *MatchingServiceSuite) TestMatch_TokenOverlap() {
	menu := s.newMenu("김치 찌개 세트", "김치 찌개")
	entry := s.newStandardMenu("김치찌개", "한식-찌개")

	s.standardMenus.EXPECT().FindActiveByNormalizedName("김치 찌개").Return(nil, nil)
	s.standardMenus.EXPECT().FindActiveByNormalizedName("김치찌개").Return(nil, nil)
	s.standardMenus.EXPECT().
		FindActiveCandidatesContainingAny([]string{"김치", "찌개", "세트"}).
		Return([]models.StandardMenu{*entry}, nil)
	s.menus.EXPECT().Update(menu).Return(nil)
	s.histories.EXPECT().Create(gomock.Any()).DoAndReturn(func(h *models.MenuMatchingHistory) error {
		s.Equal(entry.ID, h.StandardMenuID)
		s.Equal(models.MatchMethodTokenOverlap, h.MatchMethod)
		s.Equal(models.TokenList{"김치", "찌개"}, h.MatchedTokens)
		return nil
	})
	s.standardMenus.EXPECT().IncrementMatchCount(entry.ID).Return(nil)

	result, err := s.service.Match(menu, true)

	s.NoError(err)
	s.NotNil(result)
	s.Equal(entry.ID, result.ID)
	s.Equal(models.MatchMethodTokenOverlap, menu.MatchMethod)
	s.NotNil(menu.MatchConfidence)
	s.Equal(1.0, *menu.MatchConfidence)
}

func (s *MatchingServiceSuite) TestMatch_TokenOverlap_BelowThresholdRejected() {
	// One of three input tokens matches one of four candidate tokens:
	// max(1/3, 1/4) = 0.333, which does not exceed 0.35. Even the sole
	// candidate must clear the bar.
	menu := s.newMenu("갈비 비빔밥 치즈", "갈비 비빔밥 치즈")
	entry := s.newStandardMenu("한우 갈비 된장 전골", "")

	s.standardMenus.EXPECT().FindActiveByNormalizedName("갈비 비빔밥 치즈").Return(nil, nil)
	s.standardMenus.EXPECT().FindActiveByNormalizedName("갈비비빔밥치즈").Return(nil, nil)
	s.standardMenus.EXPECT().
		FindActiveCandidatesContainingAny([]string{"갈비", "비빔밥", "치즈"}).
		Return([]models.StandardMenu{*entry}, nil)

	result, err := s.service.Match(menu, true)

	s.NoError(err)
	s.Nil(result)
	s.Nil(menu.StandardMenuID)
	s.Nil(menu.MatchConfidence)
}

func (s *MatchingServiceSuite) TestMatch_TokenOverlap_JustAboveThresholdAccepted() {
	// Three of eight input tokens match against an eight-token candidate:
	// max(3/8, 3/8) = 0.375. Together with the 0.333 rejection case this pins
	// the bar as strictly-greater-than 0.35.
	menu := s.newMenu("매콤 돼지 갈비 수제 찜닭 감자 당면 송송", "매콤 돼지 갈비 수제 찜닭 감자 당면 송송")
	entry := s.newStandardMenu("국내산 돼지 갈비 감자 묵은지 구이 한상 차림", "")

	s.standardMenus.EXPECT().FindActiveByNormalizedName("매콤 돼지 갈비 수제 찜닭 감자 당면 송송").Return(nil, nil)
	s.standardMenus.EXPECT().FindActiveByNormalizedName("매콤돼지갈비수제찜닭감자당면송송").Return(nil, nil)
	s.standardMenus.EXPECT().
		FindActiveCandidatesContainingAny([]string{"매콤", "돼지", "갈비", "수제", "찜닭", "감자", "당면", "송송"}).
		Return([]models.StandardMenu{*entry}, nil)
	s.menus.EXPECT().Update(menu).Return(nil)
	s.histories.EXPECT().Create(gomock.Any()).DoAndReturn(func(h *models.MenuMatchingHistory) error {
		s.Equal(entry.ID, h.StandardMenuID)
		s.Equal(models.TokenList{"돼지", "갈비", "감자"}, h.MatchedTokens)
		s.InDelta(0.375, h.ConfidenceScore, 0.0001)
		return nil
	})
	s.standardMenus.EXPECT().IncrementMatchCount(entry.ID).Return(nil)

	result, err := s.service.Match(menu, true)

	s.NoError(err)
	s.NotNil(result)
	s.Equal(entry.ID, result.ID)
	s.Equal(models.MatchMethodTokenOverlap, menu.MatchMethod)
	s.NotNil(menu.MatchConfidence)
	s.InDelta(0.375, *menu.MatchConfidence, 0.0001)
}

func (s *MatchingServiceSuite) TestMatch_TokenOverlap_CategoryDefaultTieBreak() {
	menu := s.newMenu("치킨 구이", "치킨 구이")
	other := s.newStandardMenu("양념치킨", "치킨")
	preferred := s.newStandardMenu("후라이드치킨", "치킨")

	s.standardMenus.EXPECT().FindActiveByNormalizedName("치킨 구이").Return(nil, nil)
	s.standardMenus.EXPECT().FindActiveByNormalizedName("치킨구이").Return(nil, nil)
	s.standardMenus.EXPECT().
		FindActiveCandidatesContainingAny([]string{"치킨", "구이"}).
		Return([]models.StandardMenu{*other, *preferred}, nil)
	s.menus.EXPECT().Update(menu).Return(nil)
	s.standardMenus.EXPECT().IncrementMatchCount(preferred.ID).Return(nil)

	result, err := s.service.Match(menu, false)

	s.NoError(err)
	s.NotNil(result)
	s.Equal(preferred.ID, result.ID, "category default should win an exact score tie")
}

// Stage 3: embedding match

func (s *MatchingServiceSuite) TestMatch_Embedding() {
	embedder := &stubEmbedder{loaded: true, name: "된장찌개", score: 0.83, ok: true}
	s.service.embedder = embedder

	menu := s.newMenu("시골 된장국", "시골 된장국")
	entry := s.newStandardMenu("된장찌개", "한식-찌개")

	s.standardMenus.EXPECT().FindActiveByNormalizedName("시골 된장국").Return(nil, nil)
	s.standardMenus.EXPECT().FindActiveByNormalizedName("시골된장국").Return(nil, nil)
	s.standardMenus.EXPECT().
		FindActiveCandidatesContainingAny([]string{"시골", "된장국"}).
		Return(nil, nil)
	s.standardMenus.EXPECT().ListActive().Return([]models.StandardMenu{*entry}, nil)
	s.menus.EXPECT().Update(menu).Return(nil)
	s.histories.EXPECT().Create(gomock.Any()).DoAndReturn(func(h *models.MenuMatchingHistory) error {
		s.Equal(models.MatchMethodEmbedding, h.MatchMethod)
		s.Equal(0.83, h.ConfidenceScore)
		return nil
	})
	s.standardMenus.EXPECT().IncrementMatchCount(entry.ID).Return(nil)

	result, err := s.service.Match(menu, true)

	s.NoError(err)
	s.NotNil(result)
	s.Equal(entry.ID, result.ID)
	s.Equal(models.MatchMethodEmbedding, menu.MatchMethod)
	s.Equal(0.83, *menu.MatchConfidence)
}

func (s *MatchingServiceSuite) TestMatch_EmbeddingSkippedWhenUnloaded() {
	embedder := &stubEmbedder{loaded: false}
	s.service.embedder = embedder

	menu := s.newMenu("시골 된장국", "시골 된장국")

	s.standardMenus.EXPECT().FindActiveByNormalizedName("시골 된장국").Return(nil, nil)
	s.standardMenus.EXPECT().FindActiveByNormalizedName("시골된장국").Return(nil, nil)
	s.standardMenus.EXPECT().
		FindActiveCandidatesContainingAny([]string{"시골", "된장국"}).
		Return(nil, nil)

	result, err := s.service.Match(menu, true)

	s.NoError(err)
	s.Nil(result)
	s.Zero(embedder.calls)
}

// CreateAndMatch

func (s *MatchingServiceSuite) TestCreateAndMatch() {
	restaurantID := uuid.New()
	entry := s.newStandardMenu("김치찌개", "한식-찌개")

	s.menus.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Menu) error {
		s.Equal("김치찌개 15,000원", m.OriginalName)
		s.Equal("김치찌개", m.NormalizedName)
		s.Equal(restaurantID, m.RestaurantID)
		m.ID = uuid.New()
		return nil
	})
	s.standardMenus.EXPECT().FindActiveByNormalizedName("김치찌개").Return(entry, nil)
	s.menus.EXPECT().Update(gomock.Any()).Return(nil)
	s.histories.EXPECT().Create(gomock.Any()).Return(nil)
	s.standardMenus.EXPECT().IncrementMatchCount(entry.ID).Return(nil)

	price := decimal.NewNullDecimal(decimal.NewFromInt(15000))
	menu, err := s.service.CreateAndMatch("김치찌개 15,000원", restaurantID, price, "")

	s.NoError(err)
	s.NotNil(menu)
	s.True(menu.IsMatched())
	s.Equal(models.MatchMethodExact, menu.MatchMethod)
}

func (s *MatchingServiceSuite) TestCreateAndMatch_CreateFails() {
	s.menus.EXPECT().Create(gomock.Any()).Return(repositories.ErrMenuAlreadyExists)

	menu, err := s.service.CreateAndMatch("김치찌개", uuid.New(), decimal.NullDecimal{}, "")

	s.ErrorIs(err, repositories.ErrMenuAlreadyExists)
	s.Nil(menu)
}

// RematchUnmatched

func (s *MatchingServiceSuite) TestRematchUnmatched() {
	entry := s.newStandardMenu("김치찌개", "한식-찌개")
	unmatched := []models.Menu{
		{ID: uuid.New(), OriginalName: "김치찌개", NormalizedName: "김치찌개", RestaurantID: uuid.New()},
		{ID: uuid.New(), OriginalName: "수수께끼메뉴", NormalizedName: "수수께끼메뉴", RestaurantID: uuid.New()},
	}

	s.menus.EXPECT().ListUnmatched(10).Return(unmatched, nil)

	// First menu matches exactly
	s.standardMenus.EXPECT().FindActiveByNormalizedName("김치찌개").Return(entry, nil)
	s.menus.EXPECT().Update(gomock.Any()).Return(nil)
	s.histories.EXPECT().Create(gomock.Any()).Return(nil)
	s.standardMenus.EXPECT().IncrementMatchCount(entry.ID).Return(nil)

	// Second menu falls through every stage
	s.standardMenus.EXPECT().FindActiveByNormalizedName("수수께끼메뉴").Return(nil, nil)
	s.standardMenus.EXPECT().
		FindActiveCandidatesContainingAny([]string{"수수께끼메뉴"}).
		Return(nil, nil)

	result, err := s.service.RematchUnmatched(10)

	s.NoError(err)
	s.Equal(2, result.Total)
	s.Equal(1, result.Matched)
}

func (s *MatchingServiceSuite) TestRematchUnmatched_Empty() {
	s.menus.EXPECT().ListUnmatched(50).Return(nil, nil)

	result, err := s.service.RematchUnmatched(50)

	s.NoError(err)
	s.Equal(0, result.Total)
	s.Equal(0, result.Matched)
}

// NormalizeMenuName

func (s *MatchingServiceSuite) TestNormalizeMenuName() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"특대김치찌개", "김치찌개"},
		{"김치찌개 15,000원", "김치찌개"},
		{"후라이드치킨 (반마리)", "후라이드치킨"},
		{"", ""},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, s.service.NormalizeMenuName(tc.input), "input %q", tc.input)
	}
}

// overlapScore

func (s *MatchingServiceSuite) TestOverlapScore() {
	s.InDelta(0.3333, overlapScore(1, 3, 4), 0.001)
	s.Equal(1.0, overlapScore(2, 2, 1), "score is clamped to 1")
	s.Equal(0.5, overlapScore(1, 2, 0), "candidate without tokens contributes 0")
}

package services

import (
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"menumatch/internal/models"
	"menumatch/internal/nlp"
	"menumatch/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// minTokenLength is the minimum noun token length, in runes
	minTokenLength = 2

	// tokenOverlapThreshold is the bar a token-overlap score must strictly
	// exceed before any candidate is accepted
	tokenOverlapThreshold = 0.35

	// embeddingThreshold is the minimum cosine similarity for the embedding
	// stage, strict
	embeddingThreshold = 0.7
)

// Match attempt outcomes, used as metric labels
const (
	matchOutcomeMatched   = "matched"
	matchOutcomeUnmatched = "unmatched"
)

type matchingService struct {
	standardMenus repositories.StandardMenuRepositoryInterface
	menus         repositories.MenuRepositoryInterface
	histories     repositories.MatchingHistoryRepositoryInterface

	// tokenizer is the morphological tokenizer; nil means unavailable and
	// the whitespace fallback takes over
	tokenizer nlp.Tokenizer
	fallback  nlp.WhitespaceTokenizer

	// embedder may be nil or unloaded; the embedding stage is skipped then
	embedder EmbeddingMatcherInterface

	// categoryDefaults maps a category to its preferred standard menu name,
	// used as the final tie-break between equally scored candidates
	categoryDefaults map[string]string

	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewMatchingService creates the matching engine. A nil tokenizer or a nil /
// unloaded embedder disables the corresponding stage; both are expected,
// degraded modes rather than errors.
func NewMatchingService(
	standardMenus repositories.StandardMenuRepositoryInterface,
	menus repositories.MenuRepositoryInterface,
	histories repositories.MatchingHistoryRepositoryInterface,
	tokenizer nlp.Tokenizer,
	embedder EmbeddingMatcherInterface,
	categoryDefaults map[string]string,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) MatchingServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}

	return &matchingService{
		standardMenus:    standardMenus,
		menus:            menus,
		histories:        histories,
		tokenizer:        tokenizer,
		embedder:         embedder,
		categoryDefaults: categoryDefaults,
		metrics:          metrics,
		logger:           logger,
	}
}

// NormalizeMenuName returns the canonical comparison form of a raw menu name
func (s *matchingService) NormalizeMenuName(name string) string {
	return nlp.Normalize(name)
}

// Match runs the three-stage cascade for one menu, short-circuiting on the
// first stage that produces a result. On success the menu's match fields are
// persisted, one history event is appended (when recordHistory is set), and
// the matched entry's counter is incremented. When every stage fails the
// menu is left untouched and (nil, nil) is returned.
func (s *matchingService) Match(menu *models.Menu, recordHistory bool) (*models.StandardMenu, error) {
	start := time.Now()

	// Stage 1: exact normalized-name match, with a no-space retry for
	// spacing-only variants
	entry, err := s.standardMenus.FindActiveByNormalizedName(menu.NormalizedName)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		noSpace := strings.ReplaceAll(menu.NormalizedName, " ", "")
		if noSpace != menu.NormalizedName {
			entry, err = s.standardMenus.FindActiveByNormalizedName(noSpace)
			if err != nil {
				return nil, err
			}
		}
	}
	if entry != nil {
		if err := s.commitMatch(menu, entry, models.MatchMethodExact, 1.0, nil, recordHistory); err != nil {
			return nil, err
		}
		s.recordOutcome(models.MatchMethodExact, matchOutcomeMatched, start)
		s.logger.Info("menu matched",
			"method", models.MatchMethodExact,
			"original_name", menu.OriginalName,
			"standard_menu", entry.Name)
		return entry, nil
	}

	// Stage 2: token-overlap match on noun tokens of the original name
	entry, score, tokens, err := s.matchByTokenOverlap(menu.OriginalName)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		if err := s.commitMatch(menu, entry, models.MatchMethodTokenOverlap, score, tokens, recordHistory); err != nil {
			return nil, err
		}
		s.recordOutcome(models.MatchMethodTokenOverlap, matchOutcomeMatched, start)
		s.logger.Info("menu matched",
			"method", models.MatchMethodTokenOverlap,
			"original_name", menu.OriginalName,
			"standard_menu", entry.Name,
			"score", score,
			"tokens", tokens)
		return entry, nil
	}

	// Stage 3: embedding similarity over all active entries
	entry, similarity, err := s.matchByEmbedding(menu.NormalizedName)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		if err := s.commitMatch(menu, entry, models.MatchMethodEmbedding, similarity, nil, recordHistory); err != nil {
			return nil, err
		}
		s.recordOutcome(models.MatchMethodEmbedding, matchOutcomeMatched, start)
		s.logger.Info("menu matched",
			"method", models.MatchMethodEmbedding,
			"original_name", menu.OriginalName,
			"standard_menu", entry.Name,
			"similarity", similarity)
		return entry, nil
	}

	s.recordOutcome("none", matchOutcomeUnmatched, start)
	s.logger.Warn("menu unmatched", "original_name", menu.OriginalName)
	return nil, nil
}

// CreateAndMatch normalizes the name, persists the menu, and attempts an
// immediate match. The menu is returned even when it stays unmatched.
func (s *matchingService) CreateAndMatch(originalName string, restaurantID uuid.UUID, price decimal.NullDecimal, description string) (*models.Menu, error) {
	menu := &models.Menu{
		OriginalName:   originalName,
		NormalizedName: nlp.Normalize(originalName),
		RestaurantID:   restaurantID,
		Price:          price,
		Description:    description,
	}

	if err := s.menus.Create(menu); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordMenuCreated()
	}

	if _, err := s.Match(menu, true); err != nil {
		return menu, err
	}

	return menu, nil
}

// RematchUnmatched retries the cascade for up to limit unmatched menus. A
// menu that stays unmatched is counted and skipped; only a storage failure
// aborts the batch.
func (s *matchingService) RematchUnmatched(limit int) (*RematchResult, error) {
	menus, err := s.menus.ListUnmatched(limit)
	if err != nil {
		return nil, err
	}

	result := &RematchResult{}
	for i := range menus {
		result.Total++

		entry, err := s.Match(&menus[i], true)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			result.Matched++
		}
	}

	if s.metrics != nil {
		s.metrics.RecordRematchBatch(result.Total, result.Matched)
	}
	s.logger.Info("rematch batch finished", "total", result.Total, "matched", result.Matched)

	return result, nil
}

// commitMatch persists the effects of one successful match: the menu's
// match fields, one history event, and the entry's counter increment.
func (s *matchingService) commitMatch(menu *models.Menu, entry *models.StandardMenu, method string, confidence float64, tokens []string, recordHistory bool) error {
	menu.StandardMenuID = &entry.ID
	menu.StandardMenu = entry
	menu.MatchMethod = method
	menu.MatchConfidence = &confidence

	if err := s.menus.Update(menu); err != nil {
		return err
	}

	if recordHistory {
		history := &models.MenuMatchingHistory{
			MenuID:          menu.ID,
			StandardMenuID:  entry.ID,
			ConfidenceScore: confidence,
			MatchMethod:     method,
			MatchedTokens:   models.TokenList(tokens),
		}
		if err := s.histories.Create(history); err != nil {
			return err
		}
	}

	return s.standardMenus.IncrementMatchCount(entry.ID)
}

// nounTokens extracts input tokens with the full fallback chain:
// morphological tokenizer, then whitespace splitting, then the whole trimmed
// input as a single token
func (s *matchingService) nounTokens(text string) []string {
	var tokens []string
	if s.tokenizer != nil {
		tokens = s.tokenizer.NounTokens(text, minTokenLength)
	}
	if len(tokens) == 0 {
		tokens = s.fallback.NounTokens(text, minTokenLength)
	}
	if len(tokens) == 0 {
		if trimmed := strings.TrimSpace(text); utf8.RuneCountInString(trimmed) >= minTokenLength {
			tokens = []string{trimmed}
		}
	}
	return tokens
}

// candidateTokens extracts a candidate entry's own noun tokens; when
// extraction yields nothing and the name is long enough, the name itself
// serves as a single token
func (s *matchingService) candidateTokens(name string) []string {
	var tokens []string
	if s.tokenizer != nil {
		tokens = s.tokenizer.NounTokens(name, minTokenLength)
	} else {
		tokens = s.fallback.NounTokens(name, minTokenLength)
	}
	if len(tokens) == 0 && utf8.RuneCountInString(name) >= minTokenLength {
		tokens = []string{name}
	}
	return tokens
}

// matchByTokenOverlap scores every active candidate sharing at least one
// token with the input and selects the best under the strict-improvement
// rule: higher score, then more matched tokens, then the category default.
// Nothing at or below the threshold can win on score alone.
func (s *matchingService) matchByTokenOverlap(originalName string) (*models.StandardMenu, float64, []string, error) {
	tokens := s.nounTokens(originalName)
	if len(tokens) == 0 {
		return nil, 0, nil, nil
	}

	candidates, err := s.standardMenus.FindActiveCandidatesContainingAny(tokens)
	if err != nil {
		return nil, 0, nil, err
	}
	if len(candidates) == 0 {
		return nil, 0, nil, nil
	}

	var best *models.StandardMenu
	bestScore := tokenOverlapThreshold
	var bestTokens []string

	for i := range candidates {
		candidate := &candidates[i]

		candTokens := s.candidateTokens(candidate.Name)
		matched := matchedTokenSet(tokens, candTokens, candidate.Name, candidate.NormalizedName, originalName)
		if len(matched) == 0 {
			continue
		}

		score := overlapScore(len(matched), len(tokens), len(candTokens))

		take := false
		switch {
		case best == nil:
			take = score > bestScore
		case score > bestScore:
			take = true
		case score == bestScore && len(matched) > len(bestTokens):
			take = true
		case score == bestScore && len(matched) == len(bestTokens) &&
			s.isCategoryDefault(candidate) && !s.isCategoryDefault(best):
			take = true
		}

		if take {
			best = candidate
			bestScore = score
			bestTokens = matched
		}
	}

	if best == nil {
		return nil, 0, nil, nil
	}
	return best, bestScore, bestTokens, nil
}

// matchByEmbedding compares the normalized input against the normalized
// names of all active entries by cosine similarity. Skipped entirely when no
// model is loaded or the catalog is empty.
func (s *matchingService) matchByEmbedding(normalizedName string) (*models.StandardMenu, float64, error) {
	if s.embedder == nil || !s.embedder.IsLoaded() {
		return nil, 0, nil
	}

	entries, err := s.standardMenus.ListActive()
	if err != nil {
		return nil, 0, err
	}
	if len(entries) == 0 {
		return nil, 0, nil
	}

	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].NormalizedName
	}

	name, similarity, ok := s.embedder.FindBestMatch(normalizedName, names, embeddingThreshold)
	if !ok {
		return nil, 0, nil
	}

	// Resolve the winning name back to its entry; if several active entries
	// share a normalized name, the first in catalog iteration order wins
	for i := range entries {
		if entries[i].NormalizedName == name {
			return &entries[i], similarity, nil
		}
	}

	return nil, 0, nil
}

func (s *matchingService) isCategoryDefault(entry *models.StandardMenu) bool {
	if entry.Category == "" {
		return false
	}
	return s.categoryDefaults[entry.Category] == entry.Name
}

func (s *matchingService) recordOutcome(method, outcome string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordMatchAttempt(method, outcome, time.Since(start))
	}
}

// matchedTokenSet computes the union of (a) the exact intersection of input
// and candidate tokens, (b) input tokens contained in the candidate's name
// or normalized name, and (c) candidate tokens contained in the original
// input string. The union rather than a plain intersection is intentional:
// an input noun like "후라이드" is a true substring of the candidate name
// "후라이드치킨" even though the candidate's own tokenization never isolates
// it. The result preserves first-seen order and contains no duplicates.
func matchedTokenSet(inputTokens, candidateTokens []string, candidateName, candidateNormalized, originalName string) []string {
	candidateSet := make(map[string]struct{}, len(candidateTokens))
	for _, token := range candidateTokens {
		candidateSet[token] = struct{}{}
	}

	seen := make(map[string]struct{})
	var matched []string
	add := func(token string) {
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		matched = append(matched, token)
	}

	for _, token := range inputTokens {
		if _, ok := candidateSet[token]; ok {
			add(token)
			continue
		}
		if strings.Contains(candidateName, token) || strings.Contains(candidateNormalized, token) {
			add(token)
		}
	}

	for _, token := range candidateTokens {
		if strings.Contains(originalName, token) {
			add(token)
		}
	}

	return matched
}

// overlapScore is the max of "share of the input explained" and "share of
// the candidate explained", so short canonical names embedded in longer
// inputs still score well. A candidate with no tokens contributes 0 to the
// second ratio. The matched set is a union and can outnumber either token
// list, so the result is clamped to 1 to stay a valid confidence.
func overlapScore(matched, inputCount, candidateCount int) float64 {
	inputRatio := float64(matched) / float64(inputCount)

	candidateRatio := 0.0
	if candidateCount > 0 {
		candidateRatio = float64(matched) / float64(candidateCount)
	}

	score := inputRatio
	if candidateRatio > score {
		score = candidateRatio
	}
	if score > 1 {
		score = 1
	}
	return score
}

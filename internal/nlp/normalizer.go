// Package nlp contains the text-processing building blocks used by the menu
// matching service: the normalization pipeline, noun tokenizers, and the
// word-vector embedding engine.
package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// removePatterns are applied in order after lowercasing. Each match is
// removed entirely, content included. The comma-separated price form must
// run before the plain form so "15,000원" does not leave a dangling ",000원".
var removePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(.*?\)`),   // parenthesized content
	regexp.MustCompile(`\[.*?\]`),   // bracketed content
	regexp.MustCompile(`<.*?>`),     // angle-bracketed content
	regexp.MustCompile(`\d+인분`),     // servings
	regexp.MustCompile(`\d+개입`),     // piece count
	regexp.MustCompile(`\d+g`),      // grams
	regexp.MustCompile(`\d+ml`),     // milliliters
	regexp.MustCompile(`\d+L`),      // liters
	regexp.MustCompile(`[0-9,]+원`),  // price with thousands separators
	regexp.MustCompile(`[0-9]+원`),   // plain price
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Letters in any script survive symbol stripping. Go's \w is ASCII-only,
	// so hanja and kana need the explicit Unicode letter class.
	symbolRun = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// removeKeywords is a denylist of marketing and size keywords, removed as
// literal substrings. Substring semantics are intentional: "특대김치찌개"
// must reduce to "김치찌개", which requires stripping "특" and "대" inside
// the word. Do not change this to word-boundary matching.
var removeKeywords = []string{
	"세트",
	"특",
	"大",
	"中",
	"小",
	"대",
	"중",
	"소",
	"신메뉴",
	"추천",
	"인기",
	"best",
	"new",
	"hot",
}

// Normalize converts a raw menu name into its canonical comparison form.
// The pipeline is deterministic and idempotent; empty or whitespace-only
// input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	normalized := strings.ToLower(text)

	for _, pattern := range removePatterns {
		normalized = pattern.ReplaceAllString(normalized, "")
	}

	normalized = whitespaceRun.ReplaceAllString(normalized, " ")
	normalized = symbolRun.ReplaceAllString(normalized, " ")

	for _, keyword := range removeKeywords {
		normalized = strings.ReplaceAll(normalized, strings.ToLower(keyword), " ")
	}

	return strings.Join(strings.Fields(normalized), " ")
}

// ExtractKeywords normalizes the text and returns whitespace-separated
// tokens of at least two runes
func ExtractKeywords(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	var keywords []string
	for _, word := range strings.Fields(normalized) {
		if utf8.RuneCountInString(word) >= 2 {
			keywords = append(keywords, word)
		}
	}

	return keywords
}

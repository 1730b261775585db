package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain name unchanged",
			input: "김치찌개",
			want:  "김치찌개",
		},
		{
			name:  "lowercases latin text",
			input: "BULGOGI Burger",
			want:  "bulgogi burger",
		},
		{
			name:  "removes parenthesized content",
			input: "순두부찌개 (매운맛)",
			want:  "순두부찌개",
		},
		{
			name:  "removes bracketed and angle-bracketed content",
			input: "[시그니처] 불고기 <베스트>",
			want:  "불고기",
		},
		{
			name:  "removes serving annotation",
			input: "얼큰 김치찌개 2인분",
			want:  "얼큰 김치찌개",
		},
		{
			name:  "removes piece count and grams",
			input: "만두 10개입 500g",
			want:  "만두",
		},
		{
			name:  "removes comma-separated price without dangling remainder",
			input: "김치찌개 15,000원",
			want:  "김치찌개",
		},
		{
			name:  "removes plain price",
			input: "비빔밥 9000원",
			want:  "비빔밥",
		},
		{
			name:  "strips punctuation and symbols",
			input: "짜장면 & 짬뽕!!",
			want:  "짜장면 짬뽕",
		},
		{
			name:  "preserves hanja letters",
			input: "北京오리",
			want:  "北京오리",
		},
		{
			name:  "preserves kana letters",
			input: "사케동 どん",
			want:  "사케동 どん",
		},
		{
			name:  "removes size ideographs via keyword list",
			input: "돌솥비빔밥 大",
			want:  "돌솥비빔밥",
		},
		{
			name:  "removes marketing keywords",
			input: "신메뉴 추천 양념치킨 세트",
			want:  "양념치킨",
		},
		{
			name:  "removes size keywords embedded inside a word",
			input: "특대김치찌개",
			want:  "김치찌개",
		},
		{
			name:  "removes english marketing keywords case-insensitively",
			input: "HOT 양념치킨 NEW",
			want:  "양념치킨",
		},
		{
			name:  "collapses internal whitespace",
			input: "돌솥   비빔밥",
			want:  "돌솥 비빔밥",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace-only input",
			input: "   \t  ",
			want:  "",
		},
		{
			name:  "annotations only",
			input: "(품절) 15,000원",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"얼큰 김치찌개 2인분",
		"[시그니처] 불고기 <베스트>",
		"특대김치찌개",
		"김치찌개 15,000원",
		"HOT 양념치킨 세트 (2인)",
		"北京오리 大",
		"",
		"plain text",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", input)
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "splits normalized text into keywords",
			input: "얼큰 김치찌개 2인분",
			want:  []string{"얼큰", "김치찌개"},
		},
		{
			name:  "drops single-rune tokens",
			input: "소 갈비 탕",
			want:  []string{"갈비"},
		},
		{
			name:  "empty input yields no keywords",
			input: "",
			want:  nil,
		},
		{
			name:  "annotations only yields no keywords",
			input: "(품절)",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.input))
		})
	}
}

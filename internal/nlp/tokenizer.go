package nlp

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer extracts noun-like tokens of a minimum rune length from a string
type Tokenizer interface {
	NounTokens(text string, minLength int) []string
}

// ErrNoDictionary is returned when no noun dictionary could be loaded from
// any candidate path
var ErrNoDictionary = errors.New("no noun dictionary found")

// defaultDictionaryPaths are the conventional install locations of
// mecab-ko-dic, tried in order after the configured path
var defaultDictionaryPaths = []string{
	"/usr/local/lib/mecab/dic/mecab-ko-dic",
	"/usr/lib/mecab/dic/mecab-ko-dic",
	"/usr/lib/x86_64-linux-gnu/mecab/dic/mecab-ko-dic",
}

// WhitespaceTokenizer is the fallback tokenizer used when no morphological
// dictionary is available. It splits on whitespace and keeps tokens of at
// least minLength runes.
type WhitespaceTokenizer struct{}

// NounTokens splits text on whitespace and filters by minimum rune length
func (WhitespaceTokenizer) NounTokens(text string, minLength int) []string {
	var tokens []string
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) >= minLength {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// DictionaryTokenizer extracts nouns by longest-match segmentation against a
// mecab-ko-dic style noun dictionary. It is read-only after construction and
// safe for concurrent use.
type DictionaryTokenizer struct {
	nouns      map[string]struct{}
	maxLen     int // longest dictionary entry, in runes
	sourcePath string
}

// NewDictionaryTokenizer loads noun entries (POS tags starting with NN) from
// the configured dictionary path, falling back to the conventional
// mecab-ko-dic locations. Construction fails with ErrNoDictionary when no
// usable dictionary exists; callers must treat that as "tokenizer
// unavailable" rather than a fatal error.
func NewDictionaryTokenizer(dicPath string) (*DictionaryTokenizer, error) {
	var candidates []string
	if dicPath != "" {
		candidates = append(candidates, dicPath)
	}
	candidates = append(candidates, defaultDictionaryPaths...)

	for _, path := range candidates {
		tokenizer, err := loadDictionary(path)
		if err == nil {
			return tokenizer, nil
		}
	}

	return nil, fmt.Errorf("%w (tried %d paths)", ErrNoDictionary, len(candidates))
}

func loadDictionary(path string) (*DictionaryTokenizer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var files []string
	if info.IsDir() {
		files, err = filepath.Glob(filepath.Join(path, "*.csv"))
		if err != nil {
			return nil, err
		}
	} else {
		files = []string{path}
	}

	tokenizer := &DictionaryTokenizer{
		nouns:      make(map[string]struct{}),
		sourcePath: path,
	}

	for _, file := range files {
		if err := tokenizer.loadFile(file); err != nil {
			return nil, err
		}
	}

	if len(tokenizer.nouns) == 0 {
		return nil, fmt.Errorf("no noun entries in %s", path)
	}

	return tokenizer, nil
}

// loadFile reads one dictionary CSV. The mecab-ko-dic line format is
// "surface,leftID,rightID,cost,POS,...", of which only surface and POS are
// needed here.
func (t *DictionaryTokenizer) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		if len(fields) < 5 {
			continue
		}

		surface := strings.TrimSpace(fields[0])
		pos := strings.TrimSpace(fields[4])
		if surface == "" || !strings.HasPrefix(pos, "NN") {
			continue
		}

		t.nouns[surface] = struct{}{}
		if n := utf8.RuneCountInString(surface); n > t.maxLen {
			t.maxLen = n
		}
	}

	return scanner.Err()
}

// SourcePath returns the dictionary path the tokenizer was loaded from
func (t *DictionaryTokenizer) SourcePath() string {
	return t.sourcePath
}

// Size returns the number of noun entries loaded
func (t *DictionaryTokenizer) Size() int {
	return len(t.nouns)
}

// NounTokens segments text by greedy longest-match against the noun
// dictionary and returns surface forms of at least minLength runes.
// Characters not covered by any dictionary entry are skipped, so foreign
// text the dictionary cannot segment yields no tokens.
func (t *DictionaryTokenizer) NounTokens(text string, minLength int) []string {
	runes := []rune(text)
	var tokens []string

	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		longest := t.maxLen
		if remaining := len(runes) - i; longest > remaining {
			longest = remaining
		}

		matched := 0
		for l := longest; l >= 1; l-- {
			if _, ok := t.nouns[string(runes[i:i+l])]; ok {
				matched = l
				break
			}
		}

		if matched == 0 {
			i++
			continue
		}

		if matched >= minLength {
			tokens = append(tokens, string(runes[i:i+matched]))
		}
		i += matched
	}

	return tokens
}

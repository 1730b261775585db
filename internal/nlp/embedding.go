package nlp

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// EmbeddingEngine maps text to fixed-size vectors using a pre-trained
// fastText-style word-vector table (.vec text format) and compares them by
// cosine similarity. The model is optional: an engine with no loaded model
// answers every query with "no result" instead of failing. Read-only after
// load and safe for concurrent use.
type EmbeddingEngine struct {
	vectors   map[string][]float32
	dimension int
	modelPath string
}

// ScoredCandidate is one candidate with its similarity score
type ScoredCandidate struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// NewEmbeddingEngine creates an engine, loading the vector model when the
// path is set and the file exists. A missing file is not an error; the
// engine simply starts unloaded.
func NewEmbeddingEngine(modelPath string) (*EmbeddingEngine, error) {
	engine := &EmbeddingEngine{modelPath: modelPath}

	if modelPath == "" {
		return engine, nil
	}
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		return engine, nil
	}

	if err := engine.LoadModel(modelPath); err != nil {
		return nil, err
	}

	return engine, nil
}

// LoadModel reads a .vec file: an optional "count dimension" header line
// followed by one "word v1 v2 ... vD" line per word.
func (e *EmbeddingEngine) LoadModel(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open vector model: %w", err)
	}
	defer f.Close()

	vectors := make(map[string][]float32)
	dimension := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		// Header line: two integers, no word vector
		if first {
			first = false
			if len(fields) == 2 {
				if _, err := strconv.Atoi(fields[0]); err == nil {
					continue
				}
			}
		}

		if len(fields) < 2 {
			continue
		}

		word := fields[0]
		vec := make([]float32, len(fields)-1)
		for i, field := range fields[1:] {
			value, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return fmt.Errorf("invalid vector value for %q: %w", word, err)
			}
			vec[i] = float32(value)
		}

		if dimension == 0 {
			dimension = len(vec)
		} else if len(vec) != dimension {
			return fmt.Errorf("inconsistent vector dimension for %q: got %d, want %d", word, len(vec), dimension)
		}

		vectors[word] = vec
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read vector model: %w", err)
	}

	if len(vectors) == 0 {
		return fmt.Errorf("vector model %s contains no vectors", path)
	}

	e.vectors = vectors
	e.dimension = dimension
	e.modelPath = path
	return nil
}

// IsLoaded reports whether a vector model has been loaded
func (e *EmbeddingEngine) IsLoaded() bool {
	return e != nil && len(e.vectors) > 0
}

// Dimension returns the dimensionality of the loaded vectors, 0 if unloaded
func (e *EmbeddingEngine) Dimension() int {
	if !e.IsLoaded() {
		return 0
	}
	return e.dimension
}

// ModelPath returns the path of the loaded model
func (e *EmbeddingEngine) ModelPath() string {
	return e.modelPath
}

// Vector returns the sentence vector for text: the mean of its word vectors,
// with a character-bigram backoff for out-of-vocabulary words. Returns nil
// when no model is loaded. Text with no known words or bigrams yields a
// zero vector, which cosine similarity treats as "similar to nothing".
func (e *EmbeddingEngine) Vector(text string) []float32 {
	if !e.IsLoaded() {
		return nil
	}

	sum := make([]float32, e.dimension)
	count := 0

	for _, word := range strings.Fields(text) {
		if vec, ok := e.vectors[word]; ok {
			addInto(sum, vec)
			count++
			continue
		}

		for _, bigram := range runeBigrams(word) {
			if vec, ok := e.vectors[bigram]; ok {
				addInto(sum, vec)
				count++
			}
		}
	}

	if count > 0 {
		inv := 1 / float32(count)
		for i := range sum {
			sum[i] *= inv
		}
	}

	return sum
}

// CosineSimilarity returns the cosine of the angle between two vectors.
// Returns 0.0 when either vector is nil or has zero norm.
func (e *EmbeddingEngine) CosineSimilarity(a, b []float32) float64 {
	if a == nil || b == nil || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Similarity computes the cosine similarity between the sentence vectors of
// two texts
func (e *EmbeddingEngine) Similarity(text1, text2 string) float64 {
	return e.CosineSimilarity(e.Vector(text1), e.Vector(text2))
}

// FindBestMatch returns the candidate with the highest similarity to query,
// but only when that similarity is strictly greater than threshold. The
// running best starts at the threshold itself and replacement requires a
// strict improvement, so the first-seen candidate wins exact ties. The third
// return value reports whether any candidate cleared the bar.
func (e *EmbeddingEngine) FindBestMatch(query string, candidates []string, threshold float64) (string, float64, bool) {
	if !e.IsLoaded() || len(candidates) == 0 {
		return "", 0, false
	}

	queryVec := e.Vector(query)
	if queryVec == nil {
		return "", 0, false
	}

	bestScore := threshold
	bestMatch := ""
	found := false

	for _, candidate := range candidates {
		score := e.CosineSimilarity(queryVec, e.Vector(candidate))
		if score > bestScore {
			bestScore = score
			bestMatch = candidate
			found = true
		}
	}

	if !found {
		return "", 0, false
	}
	return bestMatch, bestScore, true
}

// FindTopMatches returns up to topK candidates whose similarity to query is
// at or above threshold, sorted by descending score. Unlike FindBestMatch
// the threshold is inclusive here.
func (e *EmbeddingEngine) FindTopMatches(query string, candidates []string, topK int, threshold float64) []ScoredCandidate {
	if !e.IsLoaded() || len(candidates) == 0 {
		return nil
	}

	queryVec := e.Vector(query)
	if queryVec == nil {
		return nil
	}

	var matches []ScoredCandidate
	for _, candidate := range candidates {
		score := e.CosineSimilarity(queryVec, e.Vector(candidate))
		if score >= threshold {
			matches = append(matches, ScoredCandidate{Name: candidate, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

func addInto(dst, src []float32) {
	for i := range dst {
		dst[i] += src[i]
	}
}

func runeBigrams(word string) []string {
	runes := []rune(word)
	if len(runes) < 2 {
		return nil
	}

	bigrams := make([]string, 0, len(runes)-1)
	for i := 0; i+1 < len(runes); i++ {
		bigrams = append(bigrams, string(runes[i:i+2]))
	}
	return bigrams
}

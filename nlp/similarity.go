package nlp

import (
	"sort"
	"strings"
)

// Engine bundles the tokenizer and the fuzzy similarity scorer into one
// immutable resource. It is constructed once at startup and shared by
// reference; it holds no mutable state and is safe for concurrent use.
type Engine struct{}

// NewEngine creates the NLP resource object.
func NewEngine() *Engine {
	return &Engine{}
}

// Tokenize splits and classifies raw input.
func (e *Engine) Tokenize(text string) []Token {
	return Tokenize(text)
}

// Similarity returns a normalized score in [0,1] combining plain edit
// distance, a token-set comparison, and a best-window partial match.
// The blend tracks the weighted-ratio behavior of the fuzzy matchers
// commonly used for command correction: exact and reordered phrasings
// score 1.0, embedded phrases score high but below exact, and unrelated
// strings stay low.
func (e *Engine) Similarity(a, b string) float64 {
	return WeightedRatio(a, b)
}

// Ratio is the normalized Damerau-Levenshtein similarity between two
// strings: 1.0 for identical, 0.0 for maximally different.
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	dist := editDistance(a, b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	return 1.0 - float64(dist)/float64(longest)
}

// PartialRatio slides the shorter string across the longer one and
// returns the best window Ratio. It rewards phrases embedded in longer
// input ("remove" inside "remove file").
func PartialRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return 0.0
	}
	if len(ra) == len(rb) {
		return Ratio(string(ra), string(rb))
	}
	best := 0.0
	for i := 0; i+len(ra) <= len(rb); i++ {
		score := Ratio(string(ra), string(rb[i:i+len(ra)]))
		if score > best {
			best = score
			if best == 1.0 {
				break
			}
		}
	}
	return best
}

// TokenSetRatio compares the two strings as word sets. Shared words are
// factored out so phrases that differ only by extra words score 1.0.
func TokenSetRatio(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	var shared, onlyA, onlyB []string
	for w := range setA {
		if setB[w] {
			shared = append(shared, w)
		} else {
			onlyA = append(onlyA, w)
		}
	}
	for w := range setB {
		if !setA[w] {
			onlyB = append(onlyB, w)
		}
	}
	sort.Strings(shared)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(shared, " ")
	full1 := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	full2 := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := Ratio(full1, full2)
	if base != "" {
		if s := Ratio(base, full1); s > best {
			best = s
		}
		if s := Ratio(base, full2); s > best {
			best = s
		}
	}
	return best
}

// PairRatio normalizes the edit distance by the combined length of both
// strings instead of the longer one, which weighs shared content more
// heavily. A one-letter typo of a short word still scores high here
// where Ratio would not.
func PairRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 1.0
	}
	dist := editDistance(a, b)
	return float64(total-dist) / float64(total)
}

// WeightedRatio blends the three scorers. Only an identical string
// scores 1.0; everything else is capped just below so an exact phrasing
// always outranks a token-subset or embedded match.
func WeightedRatio(a, b string) float64 {
	a = Normalize(a)
	b = Normalize(b)
	if a == b {
		return 1.0
	}

	best := Ratio(a, b)
	if s := TokenSetRatio(a, b); s > best {
		best = s
	}
	if s := PartialRatio(a, b) * 0.9; s > best {
		best = s
	}
	if best > 0.95 {
		best = 0.95
	}
	return best
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// editDistance computes the Damerau-Levenshtein distance, counting
// insertions, deletions, substitutions and adjacent transpositions.
func editDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	rows, cols := len(ra)+1, len(rb)+1
	matrix := make([][]int, rows)
	for i := 0; i < rows; i++ {
		matrix[i] = make([]int, cols)
		matrix[i][0] = i
	}
	for j := 1; j < cols; j++ {
		matrix[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			matrix[i][j] = minInt(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				matrix[i][j] = minInt(matrix[i][j], matrix[i-2][j-2]+cost)
			}
		}
	}
	return matrix[rows-1][cols-1]
}

func minInt(values ...int) int {
	result := values[0]
	for _, v := range values[1:] {
		if v < result {
			result = v
		}
	}
	return result
}

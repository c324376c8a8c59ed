// Package fuzzy finds near-duplicate identifiers by edit distance. It is
// how the engine warns that a proposed name collides with something that
// already exists, modulo a typo or a pluralization.
package fuzzy

import (
	"math"
	"sort"

	"github.com/hbollon/go-edlib"
)

// DefaultThreshold is the similarity floor for FindSimilar.
const DefaultThreshold = 70

// Match is one corpus entry considered similar to the probe string.
type Match struct {
	Name       string `json:"name"`
	Similarity int    `json:"similarity"`
}

// Distance returns the Levenshtein edit distance between a and b.
func Distance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// Similarity maps edit distance to a percentage:
//
//	round(100 * (maxLen - distance) / maxLen)
//
// It is symmetric, bounded to [0,100], and two empty strings are defined
// as identical (100) rather than dividing by zero.
func Similarity(a, b string) int {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 100
	}
	return int(math.Round(100 * float64(maxLen-Distance(a, b)) / float64(maxLen)))
}

// FindSimilar returns every corpus entry whose similarity to input reaches
// the threshold, most similar first. Entries with equal similarity keep
// their corpus order. A threshold <= 0 falls back to DefaultThreshold.
func FindSimilar(input string, corpus []string, threshold int) []Match {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	var matches []Match
	for _, entry := range corpus {
		if sim := Similarity(input, entry); sim >= threshold {
			matches = append(matches, Match{Name: entry, Similarity: sim})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}

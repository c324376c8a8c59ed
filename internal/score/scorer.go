// Package score rates candidate identifiers on three independent axes —
// readability, context conformance and semantic match — and combines them
// into one overall number. All four values are surfaced so callers can
// explain a score, not just rank by it.
package score

import (
	"math"
	"strings"

	"github.com/surgebase/porter2"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/convention"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/rules"
)

// Score is the full scoring breakdown for one name. Every field is in
// [0,100].
type Score struct {
	Overall     int `json:"overall"`
	Readability int `json:"readability"`
	Context     int `json:"context"`
	Semantic    int `json:"semantic"`
}

// Weights of the three axes in the overall score.
const (
	readabilityWeight = 0.3
	contextWeight     = 0.4
	semanticWeight    = 0.3
)

// neutralScore is used when an axis has nothing to judge against.
const neutralScore = 50

// Evaluate scores name against an expected meaning and a usage context.
// Either may be absent; the corresponding axis then reports the neutral
// midpoint.
func Evaluate(name, expectedMeaning string, ctx *rules.Context) Score {
	s := Score{
		Readability: Readability(name),
		Context:     ContextScore(name, ctx),
		Semantic:    Semantic(name, expectedMeaning),
	}
	s.Overall = clamp(int(math.Round(
		readabilityWeight*float64(s.Readability) +
			contextWeight*float64(s.Context) +
			semanticWeight*float64(s.Semantic))))
	return s
}

// Readability starts at 100 and deducts for hard-to-read shapes: very
// short or very long names, dense case humps, and vowel ratios far from
// ordinary English words.
func Readability(name string) int {
	score := 100
	runes := []rune(name)

	if len(runes) < 3 {
		score -= 20
	}
	if len(runes) > 30 {
		score -= 10
	}

	for i := 1; i < len(runes); i++ {
		if runes[i-1] >= 'a' && runes[i-1] <= 'z' && runes[i] >= 'A' && runes[i] <= 'Z' {
			score -= 5
		}
	}

	if ratio := vowelRatio(name); ratio < 0.2 || ratio > 0.6 {
		score -= 10
	}

	return clamp(score)
}

// ContextScore is binary: a name either satisfies its context's validation
// rule or it does not. Without a context there is nothing to conform to,
// so the neutral midpoint is returned.
func ContextScore(name string, ctx *rules.Context) int {
	if ctx == nil {
		return neutralScore
	}
	if ctx.Validate(name) {
		return 100
	}
	return 0
}

// Semantic measures how much of the expected meaning survives in the name:
// 50 points when one lowercased string wholly contains the other, plus up
// to 50 points for the fraction of meaning words found in the name's
// words. A meaning word counts when it is a substring of some name word,
// or when the two share a porter2 stem ("rendering" matches "render").
func Semantic(name, expectedMeaning string) int {
	if expectedMeaning == "" {
		return neutralScore
	}

	score := 0
	lowerName := strings.ToLower(name)
	lowerMeaning := strings.ToLower(expectedMeaning)

	if strings.Contains(lowerName, lowerMeaning) || strings.Contains(lowerMeaning, lowerName) {
		score += 50
	}

	meaningWords := convention.SplitWords(lowerMeaning)
	if len(meaningWords) > 0 {
		nameWords := convention.SplitWords(lowerName)
		found := 0
		for _, mw := range meaningWords {
			if wordPresent(mw, nameWords) {
				found++
			}
		}
		score += int(math.Round(50 * float64(found) / float64(len(meaningWords))))
	}

	return clamp(score)
}

func wordPresent(meaningWord string, nameWords []string) bool {
	for _, nw := range nameWords {
		if strings.Contains(nw, meaningWord) {
			return true
		}
	}
	stem := porter2.Stem(meaningWord)
	for _, nw := range nameWords {
		if porter2.Stem(nw) == stem {
			return true
		}
	}
	return false
}

func vowelRatio(name string) float64 {
	if name == "" {
		return 0
	}
	vowels := 0
	for _, r := range strings.ToLower(name) {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			vowels++
		}
	}
	return float64(vowels) / float64(len([]rune(name)))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

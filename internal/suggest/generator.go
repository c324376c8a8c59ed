// Package suggest synthesizes candidate identifiers for a raw phrase in a
// given usage context, scores them, and returns a deduplicated ranking.
// Generation is fully deterministic: fixed input, fixed output.
package suggest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/rules"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/score"
)

// Type records how a candidate was built, for explainability.
type Type string

const (
	TypeBase     Type = "base"
	TypePrefixed Type = "prefixed"
	TypeSuffixed Type = "suffixed"
	TypeCombined Type = "combined"
)

// Suggestion is one scored candidate identifier.
type Suggestion struct {
	Name        string      `json:"name"`
	Score       score.Score `json:"score"`
	Type        Type        `json:"type"`
	Explanation string      `json:"explanation"`
}

// Options tunes one generation run.
type Options struct {
	// MaxResults truncates the final ranking; 0 means DefaultMaxResults.
	MaxResults int
	// IncludeCombined enables the prefix x suffix cross product.
	IncludeCombined bool
	// MaxCandidates caps how many candidates are synthesized before
	// scoring, keeping the combined mode's cost bounded even with large
	// vocabularies; 0 means DefaultMaxCandidates.
	MaxCandidates int
}

const (
	DefaultMaxResults    = 10
	DefaultMaxCandidates = 512
)

// tokenPattern strips everything the tokenizer does not understand.
var tokenPattern = regexp.MustCompile(`[^a-z0-9 _-]+`)

// Tokenize lowercases the raw phrase, drops characters outside
// [a-z0-9 _-], and splits on the separators. Returns nil when nothing
// survives.
func Tokenize(raw string) []string {
	cleaned := tokenPattern.ReplaceAllString(strings.ToLower(raw), "")
	fields := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Generate produces the ranked suggestion list for a raw phrase in ctx.
// For every base word it emits the bare transform, one candidate per
// context prefix, one per suffix, and (when enabled) the full
// prefix x suffix cross product. Candidates are scored against the
// original raw phrase, deduplicated by name keeping the earliest variant,
// sorted by overall score with generation order breaking ties, and
// truncated to MaxResults.
func Generate(raw string, ctx *rules.Context, opts Options) []Suggestion {
	if ctx == nil {
		return nil
	}
	words := Tokenize(raw)
	if len(words) == 0 {
		return nil
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	maxCandidates := opts.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}

	type candidate struct {
		name        string
		typ         Type
		explanation string
	}
	conv := ctx.Convention

	candidates := make([]candidate, 0, len(words)*(1+len(ctx.Prefixes)+len(ctx.Suffixes)))
	add := func(phrase string, typ Type, explanation string) bool {
		if len(candidates) >= maxCandidates {
			return false
		}
		name := conv.Transform(phrase)
		if name == "" {
			return true
		}
		candidates = append(candidates, candidate{name: name, typ: typ, explanation: explanation})
		return true
	}

full:
	for _, word := range words {
		if !add(word, TypeBase, fmt.Sprintf("%q in %s", word, conv.Name)) {
			break full
		}
		for _, prefix := range ctx.Prefixes {
			if !add(prefix+" "+word, TypePrefixed, fmt.Sprintf("%q with %s prefix %q", word, ctx.Name, prefix)) {
				break full
			}
		}
		for _, suffix := range ctx.Suffixes {
			if !add(word+" "+suffix, TypeSuffixed, fmt.Sprintf("%q with %s suffix %q", word, ctx.Name, suffix)) {
				break full
			}
		}
		if opts.IncludeCombined {
			for _, prefix := range ctx.Prefixes {
				for _, suffix := range ctx.Suffixes {
					if !add(prefix+" "+word+" "+suffix, TypeCombined, fmt.Sprintf("%q combining %q and %q", word, prefix, suffix)) {
						break full
					}
				}
			}
		}
	}

	// dedup by name, first-seen wins, so a candidate keeps the provenance
	// of the earliest variant that produced it
	seen := make(map[string]struct{}, len(candidates))
	suggestions := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.name]; ok {
			continue
		}
		seen[c.name] = struct{}{}
		suggestions = append(suggestions, Suggestion{
			Name:        c.name,
			Score:       score.Evaluate(c.name, raw, ctx),
			Type:        c.typ,
			Explanation: c.explanation,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score.Overall > suggestions[j].Score.Overall
	})
	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}
	return suggestions
}

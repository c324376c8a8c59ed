// Package corpus builds summaries of the identifiers already present in a
// project: how they are cased and which prefix/suffix words recur. The
// engine uses a cached Analysis to inform detection and to report corpus
// statistics; the scanner in this package is one way to obtain the raw
// identifier list.
package corpus

import (
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/surgebase/porter2"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/convention"
)

// TermCount is one entry of a frequency table.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Analysis summarizes an identifier corpus.
type Analysis struct {
	CaseDistribution map[convention.Case]int `json:"case_distribution"`
	CommonPrefixes   []TermCount             `json:"common_prefixes"`
	CommonSuffixes   []TermCount             `json:"common_suffixes"`
	Identifiers      int                     `json:"identifiers"`

	// Fingerprint is an xxhash of the input list, used to skip rebuilds
	// when the corpus has not changed between initializations.
	Fingerprint uint64 `json:"-"`
}

// maxCommonTerms bounds the prefix/suffix frequency tables.
const maxCommonTerms = 10

// Analyze builds an Analysis from a flat identifier list. Prefix is the
// first split word of an identifier and suffix the last; single-word
// identifiers contribute to neither table. Terms that stem to the same
// root (porter2) are folded together under the most frequent surface form.
func Analyze(identifiers []string) *Analysis {
	a := &Analysis{
		CaseDistribution: make(map[convention.Case]int),
		Identifiers:      len(identifiers),
		Fingerprint:      Fingerprint(identifiers),
	}

	prefixes := make(map[string]int)
	suffixes := make(map[string]int)

	for _, id := range identifiers {
		if id == "" {
			continue
		}
		a.CaseDistribution[convention.Detect(id)]++

		words := convention.SplitWords(id)
		if len(words) < 2 {
			continue
		}
		prefixes[words[0]]++
		suffixes[words[len(words)-1]]++
	}

	a.CommonPrefixes = topTerms(prefixes, maxCommonTerms)
	a.CommonSuffixes = topTerms(suffixes, maxCommonTerms)
	return a
}

// Fingerprint hashes an identifier list order-sensitively.
func Fingerprint(identifiers []string) uint64 {
	h := xxhash.New()
	for _, id := range identifiers {
		_, _ = h.WriteString(id)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// topTerms folds stem-equal terms together and returns the n most frequent,
// ties broken alphabetically for stable output.
func topTerms(counts map[string]int, n int) []TermCount {
	type group struct {
		rep      string
		repCount int
		total    int
	}
	byStem := make(map[string]*group)
	for term, count := range counts {
		stem := porter2.Stem(term)
		g, ok := byStem[stem]
		if !ok {
			byStem[stem] = &group{rep: term, repCount: count, total: count}
			continue
		}
		g.total += count
		// keep the most frequent surface form as the representative
		if count > g.repCount || (count == g.repCount && term < g.rep) {
			g.rep = term
			g.repCount = count
		}
	}

	out := make([]TermCount, 0, len(byStem))
	for _, g := range byStem {
		out = append(out, TermCount{Term: g.rep, Count: g.total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

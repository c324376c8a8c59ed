// Package engine is the public facade of the naming engine. It owns the
// personalization state and the corpus-analysis cache and composes the
// convention, rules, scoring, suggestion and fuzzy-matching layers into
// the search/validate/improve operations.
package engine

import (
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/convention"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/corpus"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/fuzzy"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/profile"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/rules"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/score"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/suggest"
)

// similarityThreshold is the floor used for the duplicate check inside
// Search; it is looser than the fuzzy package default because near-misses
// are exactly what the caller wants to see before picking a name.
const similarityThreshold = 60

// wellFormedThreshold is the overall score at or above which a name needs
// no improvement suggestions.
const wellFormedThreshold = 80

// terseVocabularySize is how many vocabulary entries survive under a
// terse verbosity preference.
const terseVocabularySize = 3

// minLengthRatio filters out aggressively shortened candidates when the
// profile tolerates no abbreviation.
const minLengthRatio = 0.7

// Config configures a new Engine.
type Config struct {
	// Source supplies the existing-identifier corpus on (re)initialization.
	// Optional; without it the engine runs with an empty analysis.
	Source func() ([]string, error)

	// Preferences overrides the Default starting profile.
	Preferences *profile.Profile

	// Logger receives diagnostic output. Nil disables logging.
	Logger *log.Logger
}

// Engine is a single user's naming engine instance. Corpus and preference
// state is guarded by a mutex: watch mode swaps the corpus from a
// background goroutine while tool handlers query. Distinct users still
// hold distinct instances; the lock serializes one user's watcher against
// that user's queries, not users against each other.
type Engine struct {
	mu          sync.RWMutex
	prefs       profile.Profile
	analysis    *corpus.Analysis
	identifiers []string
	initialized bool
	source      func() ([]string, error)
	logger      *log.Logger
}

// New creates an engine with the Default profile (or cfg.Preferences) and
// no corpus analysis; call Initialize to build one.
func New(cfg Config) *Engine {
	prefs := profile.Default()
	if cfg.Preferences != nil {
		prefs = *cfg.Preferences
	}
	return &Engine{
		prefs:  prefs,
		source: cfg.Source,
		logger: cfg.Logger,
	}
}

// Initialize builds the corpus analysis once; repeat calls are no-ops
// until Reinitialize. A failing source is logged and degrades to an empty
// analysis rather than surfacing an error.
func (e *Engine) Initialize() *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return e
	}
	e.rebuild()
	e.initialized = true
	return e
}

// Reinitialize rebuilds the corpus analysis explicitly. When the supplied
// identifier list hashes to the same fingerprint as the cached analysis,
// the rebuild is skipped.
func (e *Engine) Reinitialize() *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rebuild()
	e.initialized = true
	return e
}

func (e *Engine) rebuild() {
	var identifiers []string
	if e.source != nil {
		ids, err := e.source()
		if err != nil {
			e.logf("corpus source failed, keeping %d identifiers: %v", e.analyzedCount(), err)
			if e.analysis != nil {
				return
			}
		} else {
			identifiers = ids
		}
	}
	if e.analysis != nil && e.analysis.Fingerprint == corpus.Fingerprint(identifiers) {
		e.logf("corpus unchanged (%d identifiers), keeping cached analysis", len(identifiers))
		return
	}
	e.analysis = corpus.Analyze(identifiers)
	e.identifiers = identifiers
	e.logf("analyzed %d identifiers", len(identifiers))
}

// SetCorpus replaces the engine's corpus analysis with one built from the
// given identifiers. Used by watch mode when the project changes on disk.
func (e *Engine) SetCorpus(identifiers []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.analysis != nil && e.analysis.Fingerprint == corpus.Fingerprint(identifiers) {
		return
	}
	e.analysis = corpus.Analyze(identifiers)
	e.identifiers = identifiers
	e.initialized = true
}

// SetProfile swaps in one of the built-in profiles wholesale. An
// unrecognized name leaves the current profile untouched; the miss is
// logged because a silent no-op can hide a caller typo.
func (e *Engine) SetProfile(name string) *Engine {
	p, ok := profile.Lookup(name)
	e.mu.Lock()
	defer e.mu.Unlock()
	if !ok {
		e.logf("unknown profile %q, keeping %q", name, e.prefs.Name)
		return e
	}
	e.prefs = p
	return e
}

// UpdatePreferences shallow-merges a sparse update into the active
// profile.
func (e *Engine) UpdatePreferences(p profile.Partial) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prefs = e.prefs.Merge(p)
	return e
}

// Preferences returns the active profile.
func (e *Engine) Preferences() profile.Profile {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.prefs
}

// Analysis returns the cached corpus analysis, or nil before Initialize.
func (e *Engine) Analysis() *corpus.Analysis {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.analysis
}

// Identifiers returns the raw identifier list behind the cached analysis.
// Callers must not mutate it; SetCorpus replaces the slice wholesale, so a
// returned snapshot stays coherent across a corpus swap.
func (e *Engine) Identifiers() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.identifiers
}

// SearchOptions tunes one Search call.
type SearchOptions struct {
	// Context overrides domain detection.
	Context *rules.Context
	// MaxResults caps the suggestion list; 0 = suggest.DefaultMaxResults.
	MaxResults int
	// MaxCandidates caps generation; 0 = suggest.DefaultMaxCandidates.
	MaxCandidates int
	// ExistingNames, when non-nil, enables the duplicate check against
	// these names.
	ExistingNames []string
}

// SearchResult is the full response of a Search call.
type SearchResult struct {
	Suggestions []suggest.Suggestion `json:"suggestions"`
	Similar     []fuzzy.Match        `json:"similar"`
	Context     *rules.Context       `json:"-"`
	ContextName string               `json:"context"`
	Preferences profile.Profile      `json:"preferences"`
	Analysis    *corpus.Analysis     `json:"analysis,omitempty"`
}

// Search generates preference-adjusted suggestions for a free-text input.
// Malformed (empty) input yields an empty result rather than an error.
func (e *Engine) Search(input string, opts SearchOptions) SearchResult {
	e.mu.RLock()
	prefs := e.prefs
	analysis := e.analysis
	e.mu.RUnlock()

	result := SearchResult{
		Suggestions: []suggest.Suggestion{},
		Similar:     []fuzzy.Match{},
		Preferences: prefs,
		Analysis:    analysis,
	}
	if strings.TrimSpace(input) == "" {
		return result
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = rules.DetectContext(input, analysis)
	}
	result.Context = ctx
	result.ContextName = ctx.Name

	adjusted := adjustContext(ctx, prefs)

	suggestions := suggest.Generate(input, adjusted, suggest.Options{
		MaxResults:      opts.MaxResults,
		MaxCandidates:   opts.MaxCandidates,
		IncludeCombined: prefs.CreativityLevel != profile.CreativityConservative,
	})

	for i := range suggestions {
		suggestions[i].Score.Overall = adjustOverall(suggestions[i].Name, suggestions[i].Score.Overall, prefs)
	}

	if prefs.AbbreviationTolerance == profile.AbbreviationNone {
		minLen := int(math.Ceil(minLengthRatio * float64(len([]rune(input)))))
		kept := suggestions[:0]
		for _, s := range suggestions {
			if len([]rune(s.Name)) >= minLen {
				kept = append(kept, s)
			}
		}
		suggestions = kept
	}

	sortSuggestions(suggestions)
	result.Suggestions = suggestions

	if opts.ExistingNames != nil {
		result.Similar = fuzzy.FindSimilar(input, opts.ExistingNames, similarityThreshold)
	}
	return result
}

// adjustContext applies a profile to a context template: the preferred
// convention replaces the bound one, and a terse verbosity truncates both
// vocabularies. A medium verbosity intentionally behaves like verbose,
// matching the long-standing behavior callers rely on.
func adjustContext(ctx *rules.Context, prefs profile.Profile) *rules.Context {
	adjusted := ctx.Clone()
	if conv := convention.Lookup(prefs.CasePreference); conv != nil {
		adjusted.Convention = conv
	}
	if prefs.Verbosity == profile.VerbosityTerse {
		if len(adjusted.Prefixes) > terseVocabularySize {
			adjusted.Prefixes = adjusted.Prefixes[:terseVocabularySize]
		}
		if len(adjusted.Suffixes) > terseVocabularySize {
			adjusted.Suffixes = adjusted.Suffixes[:terseVocabularySize]
		}
	}
	return adjusted
}

// adjustOverall applies the preference-driven rescoring: +10 when the
// name's detected case matches the preference, -5 when it does not, and a
// further -20 for camel humps under a zero-abbreviation-tolerance profile.
func adjustOverall(name string, overall int, prefs profile.Profile) int {
	if convention.Detect(name) == prefs.CasePreference {
		overall += 10
	} else {
		overall -= 5
	}
	if prefs.AbbreviationTolerance == profile.AbbreviationNone && convention.HasCaseTransition(name) {
		overall -= 20
	}
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}
	return overall
}

// Validation is the result of checking one concrete name.
type Validation struct {
	Name            string         `json:"name"`
	Score           score.Score    `json:"score"`
	Context         *rules.Context `json:"-"`
	ContextName     string         `json:"context"`
	Recommendations []string       `json:"recommendations"`
}

// ValidateName scores an existing name against its expected meaning and
// context (detected from the name when absent), applies the preference
// rescoring, and derives textual recommendations for each weak axis.
func (e *Engine) ValidateName(name, expectedMeaning string, ctx *rules.Context) Validation {
	e.mu.RLock()
	prefs := e.prefs
	analysis := e.analysis
	e.mu.RUnlock()

	if ctx == nil {
		ctx = rules.DetectContext(name, analysis)
	}

	sc := score.Evaluate(name, expectedMeaning, ctx)
	sc.Overall = adjustOverall(name, sc.Overall, prefs)

	var recommendations []string
	if sc.Context < 70 {
		recommendations = append(recommendations,
			fmt.Sprintf("Follow the %s convention (e.g. %s)", ctx.Convention.Name, ctx.Convention.Example))
	}
	if sc.Readability < 70 {
		recommendations = append(recommendations,
			"Reduce abbreviations and make the name easier to read")
	}
	if sc.Semantic < 70 {
		recommendations = append(recommendations,
			"Make the name more descriptive of its purpose")
	}

	return Validation{
		Name:            name,
		Score:           sc,
		Context:         ctx,
		ContextName:     ctx.Name,
		Recommendations: recommendations,
	}
}

// Improvement is the result of asking for better alternatives to a name.
type Improvement struct {
	Message     string               `json:"message"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
	Issues      []string             `json:"issues,omitempty"`
}

// ImprovementSuggestions returns alternatives for a poorly scored name,
// seeded by its expected meaning. Names that already score at or above
// the well-formed threshold get an empty suggestion list.
func (e *Engine) ImprovementSuggestions(currentName, expectedMeaning string) Improvement {
	validation := e.ValidateName(currentName, expectedMeaning, nil)

	if validation.Score.Overall >= wellFormedThreshold {
		return Improvement{
			Message:     fmt.Sprintf("%q is already well-formed", currentName),
			Suggestions: []suggest.Suggestion{},
		}
	}

	searched := e.Search(expectedMeaning, SearchOptions{
		Context:    validation.Context,
		MaxResults: 5,
	})
	return Improvement{
		Message:     fmt.Sprintf("%q scored %d; consider these alternatives", currentName, validation.Score.Overall),
		Suggestions: searched.Suggestions,
		Issues:      validation.Recommendations,
	}
}

func sortSuggestions(suggestions []suggest.Suggestion) {
	// insertion sort keeps the generation-order tie-break explicit and the
	// inputs are small (bounded by MaxResults)
	for i := 1; i < len(suggestions); i++ {
		for j := i; j > 0 && suggestions[j].Score.Overall > suggestions[j-1].Score.Overall; j-- {
			suggestions[j], suggestions[j-1] = suggestions[j-1], suggestions[j]
		}
	}
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

func (e *Engine) analyzedCount() int {
	if e.analysis == nil {
		return 0
	}
	return e.analysis.Identifiers
}

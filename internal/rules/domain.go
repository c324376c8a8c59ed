package rules

import (
	"strings"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/corpus"
)

// DomainPattern is a heuristic vocabulary for one subject-matter domain.
// When enough of its terms appear in a piece of free text, the text is
// classified into the pattern's bound context.
type DomainPattern struct {
	Name     string
	Prefixes []string
	Suffixes []string
	Context  *Context
}

// domainPatterns is scored in declaration order; on equal scores the
// earliest declared pattern wins, which makes detection stable across runs.
var domainPatterns = []DomainPattern{
	{
		Name:     "audio",
		Prefixes: []string{"audio", "sound", "volume", "track", "mix"},
		Suffixes: []string{"player", "mixer", "channel", "gain", "loop"},
		Context:  Function,
	},
	{
		Name:     "visual",
		Prefixes: []string{"visual", "render", "shader", "scene", "camera"},
		Suffixes: []string{"renderer", "mesh", "material", "texture", "environment"},
		Context:  Variable,
	},
	{
		Name:     "text",
		Prefixes: []string{"text", "title", "label", "caption"},
		Suffixes: []string{"content", "heading", "paragraph", "quote"},
		Context:  ClassName,
	},
	{
		Name:     "navigation",
		Prefixes: []string{"nav", "menu", "chamber", "portal"},
		Suffixes: []string{"link", "item", "toggle", "arrow"},
		Context:  Id,
	},
}

// DomainPatterns returns the detection table in evaluation order.
func DomainPatterns() []DomainPattern {
	out := make([]DomainPattern, len(domainPatterns))
	copy(out, domainPatterns)
	return out
}

// keyword fallbacks, tried in order when no domain pattern scores.
var keywordFallbacks = []struct {
	keywords []string
	context  *Context
}{
	{[]string{"page", "section"}, PageId},
	{[]string{"button", "link", "click"}, Function},
	{[]string{"class", "style"}, ClassName},
}

// DetectContext classifies free text into a usage context. Every domain
// pattern is scored 10 points per prefix or suffix term that appears as a
// lowercase substring of the input; the highest-scoring pattern's context
// wins. When nothing scores, ordered keyword fallbacks apply, and the final
// default is Variable, so the function always returns a context.
//
// The corpus analysis parameter is accepted for signature parity with the
// orchestrator's call site; detection is currently vocabulary-only.
func DetectContext(input string, analysis *corpus.Analysis) *Context {
	_ = analysis

	lower := strings.ToLower(input)

	best := -1
	bestScore := 0
	for i, p := range domainPatterns {
		score := 0
		for _, prefix := range p.Prefixes {
			if strings.Contains(lower, prefix) {
				score += 10
			}
		}
		for _, suffix := range p.Suffixes {
			if strings.Contains(lower, suffix) {
				score += 10
			}
		}
		// strictly-greater keeps the declaration-order tie-break
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best >= 0 {
		return domainPatterns[best].Context
	}

	for _, fb := range keywordFallbacks {
		for _, kw := range fb.keywords {
			if strings.Contains(lower, kw) {
				return fb.context
			}
		}
	}

	return Variable
}

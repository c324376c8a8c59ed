// Package convention defines the identifier casing conventions the engine
// understands: how to validate a name against a convention and how to
// transform a raw phrase into a conforming identifier.
package convention

import (
	"regexp"
	"strings"
	"unicode"
)

// Case identifies one of the supported casing conventions.
type Case string

const (
	CaseCamel    Case = "camelCase"
	CasePascal   Case = "PascalCase"
	CaseSnake    Case = "snake_case"
	CaseKebab    Case = "kebab-case"
	CaseConstant Case = "CONSTANT_CASE"

	// CaseMixed is the explicit "none of the above" classification.
	CaseMixed Case = "mixed"
)

// Convention couples a casing rule's structural predicate with its
// phrase-to-identifier transform.
type Convention struct {
	Name    Case
	Example string

	pattern *regexp.Regexp
	join    func(words []string) string
}

// Test reports whether candidate structurally conforms to the convention.
func (c *Convention) Test(candidate string) bool {
	if candidate == "" {
		return false
	}
	return c.pattern.MatchString(candidate)
}

// Transform converts a raw phrase ("show new section") into an identifier
// in this convention ("showNewSection"). The phrase is split on whitespace,
// hyphens, underscores and internal case transitions; empty input yields
// empty output. Transform is idempotent: applying it to its own output
// returns the same identifier.
func (c *Convention) Transform(raw string) string {
	words := SplitWords(raw)
	if len(words) == 0 {
		return ""
	}
	return c.join(words)
}

var (
	camelConvention = &Convention{
		Name:    CaseCamel,
		Example: "audioPlayerVolume",
		pattern: regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`),
		join: func(words []string) string {
			var b strings.Builder
			b.WriteString(words[0])
			for _, w := range words[1:] {
				b.WriteString(titleWord(w))
			}
			return b.String()
		},
	}

	pascalConvention = &Convention{
		Name:    CasePascal,
		Example: "AudioPlayerVolume",
		pattern: regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`),
		join: func(words []string) string {
			var b strings.Builder
			for _, w := range words {
				b.WriteString(titleWord(w))
			}
			return b.String()
		},
	}

	snakeConvention = &Convention{
		Name:    CaseSnake,
		Example: "audio_player_volume",
		pattern: regexp.MustCompile(`^[a-z][a-z0-9_]*$`),
		join: func(words []string) string {
			return strings.Join(words, "_")
		},
	}

	kebabConvention = &Convention{
		Name:    CaseKebab,
		Example: "audio-player-volume",
		pattern: regexp.MustCompile(`^[a-z][a-z0-9-]*$`),
		join: func(words []string) string {
			return strings.Join(words, "-")
		},
	}

	constantConvention = &Convention{
		Name:    CaseConstant,
		Example: "AUDIO_PLAYER_VOLUME",
		pattern: regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`),
		join: func(words []string) string {
			upper := make([]string, len(words))
			for i, w := range words {
				upper[i] = strings.ToUpper(w)
			}
			return strings.Join(upper, "_")
		},
	}

	// registry holds every convention in declaration order.
	registry = []*Convention{
		camelConvention,
		pascalConvention,
		snakeConvention,
		kebabConvention,
		constantConvention,
	}
)

// Camel returns the camelCase convention.
func Camel() *Convention { return camelConvention }

// Pascal returns the PascalCase convention.
func Pascal() *Convention { return pascalConvention }

// Snake returns the snake_case convention.
func Snake() *Convention { return snakeConvention }

// Kebab returns the kebab-case convention.
func Kebab() *Convention { return kebabConvention }

// Constant returns the CONSTANT_CASE convention.
func Constant() *Convention { return constantConvention }

// All returns every registered convention in declaration order.
func All() []*Convention {
	out := make([]*Convention, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the convention for a Case, or nil for CaseMixed and
// unrecognized values.
func Lookup(name Case) *Convention {
	for _, c := range registry {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// SplitWords splits an identifier or free phrase into lowercase words.
// Boundaries are whitespace, underscore, hyphen, dot, slash, lower-to-upper
// case transitions, acronym tails (HTTPServer -> http, server) and
// letter-digit transitions.
func SplitWords(name string) []string {
	if name == "" {
		return nil
	}

	runes := []rune(name)
	words := make([]string, 0, 8)
	word := make([]rune, 0, 16)

	flush := func() {
		if len(word) > 0 {
			words = append(words, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch ch {
		case '_', '-', '.', '/', ' ', '\t', '\n':
			flush()
			continue
		}

		if i > 0 {
			prev := runes[i-1]

			// camelCase boundary
			if unicode.IsLower(prev) && unicode.IsUpper(ch) {
				flush()
			}

			// end of an acronym run: the last uppercase letter belongs to
			// the next word (HTTPServer -> HTTP|Server)
			if i > 1 && unicode.IsUpper(prev) && unicode.IsLower(ch) && unicode.IsUpper(runes[i-2]) {
				if len(word) > 0 {
					last := word[len(word)-1]
					word = word[:len(word)-1]
					flush()
					word = append(word, last)
				}
			}

			// letter-digit boundary
			if (unicode.IsLetter(prev) && unicode.IsDigit(ch)) ||
				(unicode.IsDigit(prev) && unicode.IsLetter(ch)) {
				flush()
			}
		}

		word = append(word, ch)
	}
	flush()

	return words
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

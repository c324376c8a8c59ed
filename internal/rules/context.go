// Package rules defines usage contexts (where an identifier will live and
// which vocabulary fits that site) and the domain pattern detector that
// classifies free text into one of them.
package rules

import (
	"strings"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/convention"
)

// Context describes one usage site for an identifier: the casing convention
// it must follow plus curated prefix/suffix vocabularies used by the
// suggestion generator. The built-in contexts are immutable templates;
// callers that need to adjust one (different convention, trimmed
// vocabulary) must work on a copy from Clone.
type Context struct {
	Name       string
	Convention *convention.Convention
	Prefixes   []string
	Suffixes   []string

	// allowAnchor permits a leading '#' before validation, for DOM id
	// selectors written in anchor form.
	allowAnchor bool
}

// Validate reports whether name is acceptable in this context. The default
// rule is the bound convention's structural test; the Id context also
// accepts a leading anchor character.
func (c *Context) Validate(name string) bool {
	if name == "" {
		return false
	}
	if c.allowAnchor {
		name = strings.TrimPrefix(name, "#")
	}
	return c.Convention.Test(name)
}

// Clone returns a deep copy whose vocabularies can be mutated without
// affecting the template.
func (c *Context) Clone() *Context {
	out := &Context{
		Name:        c.Name,
		Convention:  c.Convention,
		allowAnchor: c.allowAnchor,
	}
	out.Prefixes = append([]string(nil), c.Prefixes...)
	out.Suffixes = append([]string(nil), c.Suffixes...)
	return out
}

// Built-in usage contexts. Vocabularies are intentionally short; the
// suggestion generator crosses them, so every entry costs candidates.
var (
	Function = &Context{
		Name:       "function",
		Convention: convention.Camel(),
		Prefixes:   []string{"handle", "on", "get", "set", "toggle", "show", "hide", "update", "init", "render"},
		Suffixes:   []string{"handler", "callback", "listener", "action", "event"},
	}

	Variable = &Context{
		Name:       "variable",
		Convention: convention.Camel(),
		Prefixes:   []string{"is", "has", "current", "selected", "active", "new"},
		Suffixes:   []string{"state", "value", "index", "count", "list", "element"},
	}

	Constant = &Context{
		Name:       "constant",
		Convention: convention.Constant(),
		Prefixes:   []string{"max", "min", "default", "base", "initial"},
		Suffixes:   []string{"limit", "duration", "size", "count", "threshold"},
	}

	ClassName = &Context{
		Name:       "class",
		Convention: convention.Kebab(),
		Prefixes:   []string{"is", "has", "main", "sub", "nav"},
		Suffixes:   []string{"container", "wrapper", "active", "visible", "hidden"},
	}

	Id = &Context{
		Name:        "id",
		Convention:  convention.Kebab(),
		Prefixes:    []string{"main", "nav", "audio", "visual", "modal"},
		Suffixes:    []string{"btn", "panel", "section", "player", "overlay"},
		allowAnchor: true,
	}

	PageId = &Context{
		Name:       "page-id",
		Convention: convention.Kebab(),
		Prefixes:   []string{"page", "chamber", "gallery"},
		Suffixes:   []string{"section", "view", "page"},
	}
)

// Contexts lists every built-in context.
func Contexts() []*Context {
	return []*Context{Function, Variable, Constant, ClassName, Id, PageId}
}

// ExtendContext appends extra vocabulary to a built-in context template.
// Intended for process startup, before any engine instance is handed out;
// the templates are treated as immutable afterwards. Duplicate terms are
// skipped. Returns false when the context name is unknown.
func ExtendContext(name string, prefixes, suffixes []string) bool {
	c := ContextByName(name)
	if c == nil {
		return false
	}
	c.Prefixes = appendUnique(c.Prefixes, prefixes)
	c.Suffixes = appendUnique(c.Suffixes, suffixes)
	return true
}

func appendUnique(vocab, extra []string) []string {
	for _, term := range extra {
		found := false
		for _, existing := range vocab {
			if existing == term {
				found = true
				break
			}
		}
		if !found && term != "" {
			vocab = append(vocab, term)
		}
	}
	return vocab
}

// ContextByName resolves a context by its name, or nil when unknown.
func ContextByName(name string) *Context {
	for _, c := range Contexts() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

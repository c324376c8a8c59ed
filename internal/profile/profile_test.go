package profile

import (
	"testing"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/convention"
)

func TestBuiltins(t *testing.T) {
	for _, name := range Names() {
		p, ok := Lookup(name)
		if !ok {
			t.Fatalf("missing built-in profile %q", name)
		}
		if p.Name != name {
			t.Errorf("profile %q reports name %q", name, p.Name)
		}
		if convention.Lookup(p.CasePreference) == nil {
			t.Errorf("profile %q prefers unknown case %q", name, p.CasePreference)
		}
	}

	if _, ok := Lookup("Architect"); ok {
		t.Error("unknown profile should not resolve")
	}
}

func TestDefault(t *testing.T) {
	p := Default()
	if p.Name != ProfileDefault || p.CasePreference != convention.CaseCamel {
		t.Errorf("unexpected default profile: %+v", p)
	}
}

func TestMerge(t *testing.T) {
	base := Default()

	snake := convention.CaseSnake
	terse := VerbosityTerse
	merged := base.Merge(Partial{
		CasePreference: &snake,
		Verbosity:      &terse,
	})

	if merged.CasePreference != convention.CaseSnake || merged.Verbosity != VerbosityTerse {
		t.Errorf("merge did not apply fields: %+v", merged)
	}
	// untouched fields survive
	if merged.CreativityLevel != base.CreativityLevel || merged.AbbreviationTolerance != base.AbbreviationTolerance {
		t.Errorf("merge clobbered unrelated fields: %+v", merged)
	}
	// the receiver is unchanged
	if base.CasePreference != convention.CaseCamel {
		t.Error("merge mutated its receiver")
	}
}

func TestMergeEmptyPartial(t *testing.T) {
	base, _ := Lookup(ProfileArtist)
	if got := base.Merge(Partial{}); got != base {
		t.Errorf("empty merge changed the profile: %+v", got)
	}
}

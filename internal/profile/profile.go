// Package profile holds the personalization bundles that reweight and
// filter suggestions per user taste.
package profile

import "github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/convention"

// Verbosity controls how much of a context's vocabulary the generator may
// draw on.
type Verbosity string

const (
	VerbosityTerse   Verbosity = "terse"
	VerbosityMedium  Verbosity = "medium"
	VerbosityVerbose Verbosity = "verbose"
)

// Creativity controls whether combined (prefix+suffix) candidates are
// generated.
type Creativity string

const (
	CreativityConservative Creativity = "conservative"
	CreativityBalanced     Creativity = "balanced"
	CreativityCreative     Creativity = "creative"
)

// AbbreviationTolerance controls how harshly compressed names are treated.
type AbbreviationTolerance string

const (
	AbbreviationNone   AbbreviationTolerance = "none"
	AbbreviationLow    AbbreviationTolerance = "low"
	AbbreviationMedium AbbreviationTolerance = "medium"
	AbbreviationHigh   AbbreviationTolerance = "high"
)

// Profile is one user's naming preferences.
type Profile struct {
	Name                  string                `json:"name"`
	CasePreference        convention.Case       `json:"case_preference"`
	Verbosity             Verbosity             `json:"verbosity"`
	DomainFocus           string                `json:"domain_focus"`
	CreativityLevel       Creativity            `json:"creativity_level"`
	AbbreviationTolerance AbbreviationTolerance `json:"abbreviation_tolerance"`
}

// Partial is a sparse preference update; nil fields are left unchanged by
// Merge.
type Partial struct {
	CasePreference        *convention.Case
	Verbosity             *Verbosity
	DomainFocus           *string
	CreativityLevel       *Creativity
	AbbreviationTolerance *AbbreviationTolerance
}

// Merge applies the non-nil fields of p onto a copy of the profile.
func (pr Profile) Merge(p Partial) Profile {
	if p.CasePreference != nil {
		pr.CasePreference = *p.CasePreference
	}
	if p.Verbosity != nil {
		pr.Verbosity = *p.Verbosity
	}
	if p.DomainFocus != nil {
		pr.DomainFocus = *p.DomainFocus
	}
	if p.CreativityLevel != nil {
		pr.CreativityLevel = *p.CreativityLevel
	}
	if p.AbbreviationTolerance != nil {
		pr.AbbreviationTolerance = *p.AbbreviationTolerance
	}
	return pr
}

// Built-in profile names.
const (
	ProfileDefault   = "Default"
	ProfileDeveloper = "Developer"
	ProfileArtist    = "Artist"
	ProfileMusician  = "Musician"
	ProfileWriter    = "Writer"
)

var builtins = map[string]Profile{
	ProfileDefault: {
		Name:                  ProfileDefault,
		CasePreference:        convention.CaseCamel,
		Verbosity:             VerbosityMedium,
		DomainFocus:           "",
		CreativityLevel:       CreativityBalanced,
		AbbreviationTolerance: AbbreviationMedium,
	},
	ProfileDeveloper: {
		Name:                  ProfileDeveloper,
		CasePreference:        convention.CaseCamel,
		Verbosity:             VerbosityTerse,
		DomainFocus:           "code",
		CreativityLevel:       CreativityConservative,
		AbbreviationTolerance: AbbreviationHigh,
	},
	ProfileArtist: {
		Name:                  ProfileArtist,
		CasePreference:        convention.CaseKebab,
		Verbosity:             VerbosityVerbose,
		DomainFocus:           "visual",
		CreativityLevel:       CreativityCreative,
		AbbreviationTolerance: AbbreviationLow,
	},
	ProfileMusician: {
		Name:                  ProfileMusician,
		CasePreference:        convention.CaseCamel,
		Verbosity:             VerbosityMedium,
		DomainFocus:           "audio",
		CreativityLevel:       CreativityCreative,
		AbbreviationTolerance: AbbreviationMedium,
	},
	ProfileWriter: {
		Name:                  ProfileWriter,
		CasePreference:        convention.CaseSnake,
		Verbosity:             VerbosityVerbose,
		DomainFocus:           "text",
		CreativityLevel:       CreativityBalanced,
		AbbreviationTolerance: AbbreviationNone,
	},
}

// Default returns the Default profile.
func Default() Profile {
	return builtins[ProfileDefault]
}

// Lookup returns a built-in profile by name.
func Lookup(name string) (Profile, bool) {
	p, ok := builtins[name]
	return p, ok
}

// Names lists the built-in profile names in a fixed order.
func Names() []string {
	return []string{ProfileDefault, ProfileDeveloper, ProfileArtist, ProfileMusician, ProfileWriter}
}

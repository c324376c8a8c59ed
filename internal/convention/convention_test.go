package convention

import (
	"testing"
)

func TestTransformExamples(t *testing.T) {
	tests := []struct {
		conv *Convention
		raw  string
		want string
	}{
		{Camel(), "show new section", "showNewSection"},
		{Pascal(), "show new section", "ShowNewSection"},
		{Snake(), "show new section", "show_new_section"},
		{Kebab(), "show new section", "show-new-section"},
		{Constant(), "show new section", "SHOW_NEW_SECTION"},

		// separators other than spaces
		{Camel(), "audio-player_volume", "audioPlayerVolume"},
		{Snake(), "audioPlayerVolume", "audio_player_volume"},
		{Kebab(), "AudioPlayerVolume", "audio-player-volume"},

		// acronym runs split before the last capital
		{Snake(), "HTTPServer", "http_server"},

		{Camel(), "", ""},
		{Constant(), "   ", ""},
	}

	for _, tt := range tests {
		if got := tt.conv.Transform(tt.raw); got != tt.want {
			t.Errorf("%s.Transform(%q) = %q, want %q", tt.conv.Name, tt.raw, got, tt.want)
		}
	}
}

func TestTransformIdempotent(t *testing.T) {
	inputs := []string{
		"show new section",
		"audioPlayerVolume",
		"HTTP server response",
		"mix-channel_gain",
		"x",
		"track 2 volume",
		"SHOW_NEW_SECTION",
	}

	for _, conv := range All() {
		for _, in := range inputs {
			once := conv.Transform(in)
			twice := conv.Transform(once)
			if once != twice {
				t.Errorf("%s not idempotent on %q: %q -> %q", conv.Name, in, once, twice)
			}
		}
	}
}

func TestConventionTest(t *testing.T) {
	tests := []struct {
		conv      *Convention
		candidate string
		want      bool
	}{
		{Camel(), "showNewSection", true},
		{Camel(), "ShowNewSection", false},
		{Camel(), "show_new_section", false},
		{Pascal(), "ShowNewSection", true},
		{Pascal(), "showNewSection", false},
		{Snake(), "show_new_section", true},
		{Snake(), "show-new-section", false},
		{Kebab(), "show-new-section", true},
		{Kebab(), "Show-New-Section", false},
		{Constant(), "SHOW_NEW_SECTION", true},
		{Constant(), "show_new_section", false},
		{Camel(), "", false},
	}

	for _, tt := range tests {
		if got := tt.conv.Test(tt.candidate); got != tt.want {
			t.Errorf("%s.Test(%q) = %v, want %v", tt.conv.Name, tt.candidate, got, tt.want)
		}
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"showNewSection", []string{"show", "new", "section"}},
		{"show_new-section", []string{"show", "new", "section"}},
		{"HTTPServer", []string{"http", "server"}},
		{"track2Volume", []string{"track", "2", "volume"}},
		{"SHOW_NEW", []string{"show", "new"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := SplitWords(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("SplitWords(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitWords(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		want Case
	}{
		{"showNewSection", CaseCamel},
		{"ShowNewSection", CasePascal},
		{"show_new_section", CaseSnake},
		{"show-new-section", CaseKebab},
		{"SHOW_NEW_SECTION", CaseConstant},

		// ambiguous shapes resolve by table order
		{"show", CaseCamel},    // also valid snake/kebab
		{"FOO", CaseConstant},  // also matches the Pascal pattern
		{"Show_Section", CaseMixed},
		{"", CaseMixed},
		{"#main-panel", CaseMixed},
	}

	for _, tt := range tests {
		if got := Detect(tt.name); got != tt.want {
			t.Errorf("Detect(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestHasCaseTransition(t *testing.T) {
	if !HasCaseTransition("showNew") {
		t.Error("expected transition in showNew")
	}
	if HasCaseTransition("shownew") {
		t.Error("unexpected transition in shownew")
	}
	if HasCaseTransition("SHOW") {
		t.Error("uppercase run is not a transition")
	}
}

func TestLookup(t *testing.T) {
	for _, conv := range All() {
		if Lookup(conv.Name) != conv {
			t.Errorf("Lookup(%s) did not return the registered convention", conv.Name)
		}
	}
	if Lookup(CaseMixed) != nil {
		t.Error("Lookup(CaseMixed) should be nil")
	}
}

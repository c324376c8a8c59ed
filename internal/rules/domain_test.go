package rules

import "testing"

func TestDetectContextDomains(t *testing.T) {
	tests := []struct {
		input string
		want  *Context
	}{
		// "audio" prefix, "player" suffix and "volume" prefix all hit
		{"audioPlayerVolume", Function},
		{"soundMixer", Function},
		{"shaderMaterial", Variable},
		{"sceneRenderer", Variable},
		{"titleHeading", ClassName},
		{"menuToggle", Id},
	}

	for _, tt := range tests {
		if got := DetectContext(tt.input, nil); got != tt.want {
			t.Errorf("DetectContext(%q) = %s, want %s", tt.input, got.Name, tt.want.Name)
		}
	}
}

func TestDetectContextTieBreak(t *testing.T) {
	// "mix" scores 10 for audio, "texture" scores 10 for visual; the
	// earlier declared pattern wins
	if got := DetectContext("mix texture", nil); got != Function {
		t.Errorf("tie should resolve to the audio pattern's context, got %s", got.Name)
	}
}

func TestDetectContextFallbacks(t *testing.T) {
	tests := []struct {
		input string
		want  *Context
	}{
		{"next page", PageId},
		{"intro section", PageId},
		{"submit button", Function},
		{"double click", Function},
		{"highlight style", ClassName},

		// nothing matches at all
		{"zzz qqq", Variable},
		{"", Variable},
	}

	for _, tt := range tests {
		if got := DetectContext(tt.input, nil); got != tt.want {
			t.Errorf("DetectContext(%q) = %s, want %s", tt.input, got.Name, tt.want.Name)
		}
	}
}

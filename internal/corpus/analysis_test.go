package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/convention"
)

func TestAnalyzeCaseDistribution(t *testing.T) {
	ids := []string{
		"audioPlayer", "showSection", "toggleMenu",
		"MAX_VOLUME",
		"nav-arrow",
		"ChamberScene",
	}
	a := Analyze(ids)

	assert.Equal(t, 6, a.Identifiers)
	assert.Equal(t, 3, a.CaseDistribution[convention.CaseCamel])
	assert.Equal(t, 1, a.CaseDistribution[convention.CaseConstant])
	assert.Equal(t, 1, a.CaseDistribution[convention.CaseKebab])
	assert.Equal(t, 1, a.CaseDistribution[convention.CasePascal])
}

func TestAnalyzePrefixSuffixTables(t *testing.T) {
	ids := []string{
		"showPanel", "showSection", "showOverlay",
		"hidePanel",
		"volume", // single word, contributes to neither table
	}
	a := Analyze(ids)

	require.NotEmpty(t, a.CommonPrefixes)
	assert.Equal(t, TermCount{Term: "show", Count: 3}, a.CommonPrefixes[0])

	require.NotEmpty(t, a.CommonSuffixes)
	assert.Equal(t, TermCount{Term: "panel", Count: 2}, a.CommonSuffixes[0])
}

func TestAnalyzeStemFolding(t *testing.T) {
	// "render" and "rendering" share a stem and fold into one entry
	ids := []string{"renderScene", "renderScene2", "renderingPass", "mixTrack"}
	a := Analyze(ids)

	for _, tc := range a.CommonPrefixes {
		assert.NotEqual(t, "rendering", tc.Term, "stem variants should fold into the dominant form")
	}
	var render TermCount
	for _, tc := range a.CommonPrefixes {
		if tc.Term == "render" {
			render = tc
		}
	}
	assert.Equal(t, 3, render.Count)
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(nil)
	assert.Equal(t, 0, a.Identifiers)
	assert.Empty(t, a.CommonPrefixes)
	assert.Empty(t, a.CommonSuffixes)
}

func TestFingerprint(t *testing.T) {
	a := []string{"one", "two"}
	b := []string{"one", "two"}
	c := []string{"two", "one"}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c), "fingerprint is order-sensitive")
	assert.NotEqual(t, Fingerprint([]string{"ab", "c"}), Fingerprint([]string{"a", "bc"}),
		"identifier boundaries must affect the hash")

	assert.Equal(t, Analyze(a).Fingerprint, Fingerprint(b))
}

package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const sampleJS = `
function showSection(target) {
	var panelState = 0;
}
class AudioMixer {
	play() {}
}
var trackVolume = 2;
`

func TestScanExtractsJavaScript(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.js", sampleJS)

	result, err := Scan(context.Background(), ScanConfig{Root: root})
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesScanned)

	assert.Contains(t, result.Identifiers, "showSection")
	assert.Contains(t, result.Identifiers, "panelState")
	assert.Contains(t, result.Identifiers, "AudioMixer")
	assert.Contains(t, result.Identifiers, "play")
	assert.Contains(t, result.Identifiers, "trackVolume")
	assert.NotContains(t, result.Identifiers, "function")
}

func TestScanFallbackExtraction(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "styles.css", ".nav-container { color: red; }")

	result, err := Scan(context.Background(), ScanConfig{Root: root})
	require.NoError(t, err)
	assert.Contains(t, result.Identifiers, "nav-container")
}

func TestScanExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.js", "var keepMe = 1;")
	writeFile(t, root, "node_modules/lib/index.js", "var vendorThing = 1;")
	writeFile(t, root, "generated/out.js", "var generatedThing = 1;")

	result, err := Scan(context.Background(), ScanConfig{
		Root:    root,
		Exclude: []string{"generated/**"},
	})
	require.NoError(t, err)

	assert.Contains(t, result.Identifiers, "keepMe")
	assert.NotContains(t, result.Identifiers, "vendorThing", "node_modules is excluded by default")
	assert.NotContains(t, result.Identifiers, "generatedThing")
}

func TestScanIncludeOverride(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.js", "var fromJs = 1;")
	writeFile(t, root, "notes.txt", "fromText")

	result, err := Scan(context.Background(), ScanConfig{
		Root:    root,
		Include: []string{"**/*.txt"},
	})
	require.NoError(t, err)

	assert.Contains(t, result.Identifiers, "fromText")
	assert.NotContains(t, result.Identifiers, "fromJs")
}

func TestScanSkipsOversizedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.js", "var smallEnough = 1; // padding padding padding")

	result, err := Scan(context.Background(), ScanConfig{Root: root, MaxFileSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, result.FilesScanned)
	assert.Equal(t, 1, result.FilesSkipped)
	assert.Empty(t, result.Identifiers)
}

func TestScanDeterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "var alphaName = 1;")
	writeFile(t, root, "b.js", "var betaName = 1;")
	writeFile(t, root, "c.js", "var alphaName = 1;") // duplicate across files

	first, err := Scan(context.Background(), ScanConfig{Root: root, Workers: 8})
	require.NoError(t, err)
	second, err := Scan(context.Background(), ScanConfig{Root: root, Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, first.Identifiers, second.Identifiers)

	count := 0
	for _, id := range first.Identifiers {
		if id == "alphaName" {
			count++
		}
	}
	assert.Equal(t, 1, count, "identifiers must be deduplicated")
}

package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherRescansOnChange(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.js", "var firstName = 1;")

	results := make(chan *ScanResult, 4)
	w, err := NewWatcher(ScanConfig{Root: root}, 50*time.Millisecond, func(r *ScanResult) {
		results <- r
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	writeFile(t, root, "extra.js", "var secondName = 2;")

	select {
	case r := <-results:
		assert.Contains(t, r.Identifiers, "firstName")
		assert.Contains(t, r.Identifiers, "secondName")
	case <-time.After(5 * time.Second):
		t.Fatal("no rescan after file change")
	}
}

func TestWatcherWatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.js", "var rootName = 1;")

	results := make(chan *ScanResult, 16)
	w, err := NewWatcher(ScanConfig{Root: root}, 50*time.Millisecond, func(r *ScanResult) {
		results <- r
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "scenes"), 0o755))
	select {
	case <-results:
	case <-time.After(5 * time.Second):
		t.Fatal("no rescan after directory creation")
	}

	// edits inside the new directory must still trigger rescans
	writeFile(t, root, "scenes/chamber.js", "var chamberName = 1;")
	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-results:
			for _, id := range r.Identifiers {
				if id == "chamberName" {
					return
				}
			}
		case <-deadline:
			t.Fatal("change inside a new directory never rescanned")
		}
	}
}

func TestWatcherClose(t *testing.T) {
	root := t.TempDir()

	w, err := NewWatcher(ScanConfig{Root: root}, 0, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Close())
}

package corpus

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-scans the corpus when files under the root change. Change
// events are debounced so a burst of saves triggers a single rescan.
type Watcher struct {
	watcher  *fsnotify.Watcher
	cfg      ScanConfig
	debounce time.Duration
	onChange func(*ScanResult)

	root    string
	exclude []string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// DefaultDebounce is the quiet period required before a rescan fires.
const DefaultDebounce = 250 * time.Millisecond

// NewWatcher creates a watcher over cfg.Root. onChange receives the result
// of each successful rescan; scan errors are dropped because the previous
// analysis stays valid.
func NewWatcher(cfg ScanConfig, debounce time.Duration, onChange func(*ScanResult)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		watcher:  fsw,
		cfg:      cfg,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Start registers directory watches and begins processing events. It
// returns once the event loop is running.
func (w *Watcher) Start(ctx context.Context) error {
	w.root = w.cfg.Root
	if w.root == "" {
		w.root = "."
	}
	w.exclude = append(append([]string(nil), defaultExclude...), w.cfg.Exclude...)

	if err := w.watchTree(w.root); err != nil {
		w.watcher.Close()
		return err
	}

	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	go w.loop(loopCtx)
	return nil
}

// watchTree registers dir and every non-excluded directory beneath it.
func (w *Watcher) watchTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return err
		}
		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if rel != "." && (matchesAny(w.exclude, rel) || matchesAny(w.exclude, rel+"/")) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				// a created directory (and anything already inside it)
				// must join the watch set or later edits go unseen
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					_ = w.watchTree(event.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			result, err := Scan(ctx, w.cfg)
			if err == nil && w.onChange != nil {
				w.onChange(result)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the event loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

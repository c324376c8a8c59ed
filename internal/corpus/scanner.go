package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// ScanConfig controls a corpus scan.
type ScanConfig struct {
	Root        string
	Include     []string // doublestar globs, relative to Root; empty = built-in defaults
	Exclude     []string // doublestar globs, relative to Root
	MaxFileSize int64    // files larger than this are skipped; 0 = DefaultMaxFileSize
	Workers     int      // parallel file readers; 0 = DefaultWorkers
}

const (
	DefaultMaxFileSize = 1 << 20 // 1 MiB
	DefaultWorkers     = 4
)

// defaultInclude matches the file types the host project is made of.
var defaultInclude = []string{
	"**/*.js", "**/*.mjs", "**/*.json", "**/*.html", "**/*.css",
}

// defaultExclude keeps dependency and VCS trees out of every scan.
var defaultExclude = []string{
	"**/node_modules/**", "**/.git/**", "**/dist/**", "**/build/**",
}

// ScanResult is the outcome of one corpus scan.
type ScanResult struct {
	Identifiers  []string
	FilesScanned int
	FilesSkipped int
}

// identifierPattern is the fallback extractor for non-JavaScript text. It
// deliberately requires a letter start and at least two characters so that
// numeric literals and one-letter loop variables stay out of the corpus.
var identifierPattern = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$-]+`)

// Scan walks cfg.Root, reads matching files in parallel and extracts
// identifier-like strings. JavaScript sources are parsed into an AST for
// accurate declaration names; everything else falls back to a conservative
// regex harvest. The returned identifier list is deduplicated in
// first-seen file order, with files visited in sorted path order so the
// result is deterministic.
func Scan(ctx context.Context, cfg ScanConfig) (*ScanResult, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	include := cfg.Include
	if len(include) == 0 {
		include = defaultInclude
	}
	exclude := append(append([]string(nil), defaultExclude...), cfg.Exclude...)
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	files, skipped, err := collectFiles(root, include, exclude, maxSize)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{FilesSkipped: skipped}

	perFile := make([][]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(path)
			if err != nil {
				// files can vanish mid-scan under a watcher; count and move on
				mu.Lock()
				result.FilesSkipped++
				mu.Unlock()
				return nil
			}
			perFile[i] = extractIdentifiers(path, string(content))
			mu.Lock()
			result.FilesScanned++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("corpus scan: %w", err)
	}

	seen := make(map[string]struct{})
	for _, ids := range perFile {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			result.Identifiers = append(result.Identifiers, id)
		}
	}
	return result, nil
}

// collectFiles returns the matching file paths in sorted order.
func collectFiles(root string, include, exclude []string, maxSize int64) ([]string, int, error) {
	var files []string
	skipped := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if matchesAny(exclude, rel+"/") || matchesAny(exclude, rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesAny(exclude, rel) || !matchesAny(include, rel) {
			return nil
		}
		if info, infoErr := d.Info(); infoErr == nil && info.Size() > maxSize {
			skipped++
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(files)
	return files, skipped, nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// extractIdentifiers picks the extraction strategy by file extension.
func extractIdentifiers(path, content string) []string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs":
		if ids, err := extractJavaScript(content); err == nil {
			return ids
		}
		// parser rejects ES module syntax it does not know; fall back
		return extractByPattern(content)
	default:
		return extractByPattern(content)
	}
}

func extractByPattern(content string) []string {
	matches := identifierPattern.FindAllString(content, -1)
	out := matches[:0]
	for _, m := range matches {
		if reservedWords[strings.ToLower(m)] {
			continue
		}
		out = append(out, m)
	}
	return out
}

// reservedWords are language keywords and ubiquitous globals that say
// nothing about the project's naming habits.
var reservedWords = map[string]bool{
	"abstract": true, "arguments": true, "async": true, "await": true,
	"boolean": true, "break": true, "case": true, "catch": true,
	"class": true, "const": true, "continue": true, "debugger": true,
	"default": true, "delete": true, "do": true, "else": true,
	"enum": true, "export": true, "extends": true, "false": true,
	"final": true, "finally": true, "for": true, "function": true,
	"if": true, "implements": true, "import": true, "in": true,
	"instanceof": true, "interface": true, "let": true, "new": true,
	"null": true, "of": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "static": true,
	"super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "undefined": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
	"console": true, "document": true, "window": true, "require": true,
	"module": true, "exports": true,
}

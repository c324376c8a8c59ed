// Package config loads the .namekit.kdl project configuration: where the
// corpus lives, how to scan it, which profile to start with and any
// project-specific vocabulary extensions.
package config

import (
	"fmt"
	"os"
)

// DefaultFileName is the config file looked up in the project root.
const DefaultFileName = ".namekit.kdl"

type Config struct {
	Project    Project
	Scan       Scan
	Suggest    Suggest
	Fuzzy      Fuzzy
	Profile    string
	Vocabulary []VocabularyExtension
}

type Project struct {
	Root string
	Name string
}

type Scan struct {
	Include         []string
	Exclude         []string
	MaxFileSize     int64
	Workers         int
	Watch           bool
	WatchDebounceMs int
}

type Suggest struct {
	MaxResults    int
	MaxCandidates int
}

type Fuzzy struct {
	Threshold int
}

// VocabularyExtension adds project-specific prefix/suffix terms to one of
// the built-in usage contexts.
type VocabularyExtension struct {
	Context  string
	Prefixes []string
	Suffixes []string
}

// Defaults returns the configuration used when no config file exists.
func Defaults() *Config {
	return &Config{
		Project: Project{Root: "."},
		Scan: Scan{
			MaxFileSize:     1 << 20,
			Workers:         4,
			WatchDebounceMs: 250,
		},
		Suggest: Suggest{
			MaxResults:    10,
			MaxCandidates: 512,
		},
		Fuzzy:   Fuzzy{Threshold: 70},
		Profile: "Default",
	}
}

// Load reads a KDL config file, merging it over Defaults. A missing file
// is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

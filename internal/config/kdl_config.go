package config

import (
	"fmt"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// parseKDL turns a .namekit.kdl document into a Config layered over
// Defaults. Unknown nodes are ignored so configs stay forward-compatible.
//
//	project { root "."; name "portfolio" }
//	scan {
//	    include "**/*.js" "**/*.css"
//	    exclude "**/vendor/**"
//	    max_file_size 1048576
//	    workers 4
//	    watch true
//	    watch_debounce_ms 250
//	}
//	profile "Musician"
//	suggest { max_results 10; max_candidates 512 }
//	fuzzy { threshold 70 }
//	vocabulary {
//	    context "function" { prefixes "fetch" "load"; suffixes "effect" }
//	}
func parseKDL(content string) (*Config, error) {
	cfg := Defaults()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "project":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "root":
					if s, ok := firstStringArg(cn); ok {
						cfg.Project.Root = s
					}
				case "name":
					if s, ok := firstStringArg(cn); ok {
						cfg.Project.Name = s
					}
				}
			}
		case "scan":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "include":
					cfg.Scan.Include = append(cfg.Scan.Include, collectStringArgs(cn)...)
				case "exclude":
					cfg.Scan.Exclude = append(cfg.Scan.Exclude, collectStringArgs(cn)...)
				case "max_file_size":
					if v, ok := firstIntArg(cn); ok {
						cfg.Scan.MaxFileSize = int64(v)
					}
				case "workers":
					if v, ok := firstIntArg(cn); ok {
						cfg.Scan.Workers = v
					}
				case "watch":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Scan.Watch = b
					}
				case "watch_debounce_ms":
					if v, ok := firstIntArg(cn); ok {
						cfg.Scan.WatchDebounceMs = v
					}
				}
			}
		case "profile":
			if s, ok := firstStringArg(n); ok {
				cfg.Profile = s
			}
		case "suggest":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "max_results":
					if v, ok := firstIntArg(cn); ok {
						cfg.Suggest.MaxResults = v
					}
				case "max_candidates":
					if v, ok := firstIntArg(cn); ok {
						cfg.Suggest.MaxCandidates = v
					}
				}
			}
		case "fuzzy":
			for _, cn := range n.Children {
				if nodeName(cn) == "threshold" {
					if v, ok := firstIntArg(cn); ok {
						cfg.Fuzzy.Threshold = v
					}
				}
			}
		case "vocabulary":
			for _, cn := range n.Children {
				if nodeName(cn) != "context" {
					continue
				}
				name, ok := firstStringArg(cn)
				if !ok {
					continue
				}
				ext := VocabularyExtension{Context: name}
				for _, vn := range cn.Children {
					switch nodeName(vn) {
					case "prefixes":
						ext.Prefixes = append(ext.Prefixes, collectStringArgs(vn)...)
					case "suffixes":
						ext.Suffixes = append(ext.Suffixes, collectStringArgs(vn)...)
					}
				}
				cfg.Vocabulary = append(cfg.Vocabulary, ext)
			}
		}
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

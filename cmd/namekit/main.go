// namekit suggests, validates and improves identifier names for a
// project, informed by the identifiers the project already contains.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/config"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/corpus"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/engine"
	namemcp "github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/mcp"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/rules"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/version"
)

func main() {
	app := &cli.App{
		Name:                   "namekit",
		Usage:                  "Identifier naming suggestions tuned to your project's vocabulary",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultFileName,
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root to scan for existing identifiers (overrides config)",
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "Preference profile: Default, Developer, Artist, Musician, Writer",
			},
			&cli.BoolFlag{
				Name:  "no-scan",
				Usage: "Skip the corpus scan and run with an empty analysis",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit JSON instead of plain text",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log engine diagnostics to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "suggest",
				Usage:     "Generate name suggestions for a description",
				ArgsUsage: "<description>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "context",
						Usage: "Usage context: function, variable, constant, class, id, page-id (auto-detected when omitted)",
					},
					&cli.IntFlag{
						Name:    "max",
						Aliases: []string{"m"},
						Usage:   "Maximum suggestions",
					},
					&cli.BoolFlag{
						Name:  "check-corpus",
						Usage: "Also report existing identifiers similar to the description",
					},
				},
				Action: runSuggest,
			},
			{
				Name:      "validate",
				Usage:     "Score an existing identifier",
				ArgsUsage: "<name> [expected meaning]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "context",
						Usage: "Usage context (auto-detected when omitted)",
					},
				},
				Action: runValidate,
			},
			{
				Name:      "improve",
				Usage:     "Suggest better alternatives for a weak identifier",
				ArgsUsage: "<name> <expected meaning>",
				Action:    runImprove,
			},
			{
				Name:      "similar",
				Usage:     "Find existing identifiers similar to a name",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "threshold",
						Aliases: []string{"t"},
						Usage:   "Similarity floor 0-100",
					},
				},
				Action: runSimilar,
			},
			{
				Name:   "analyze",
				Usage:  "Scan the project and report corpus statistics",
				Action: runAnalyze,
			},
			{
				Name:  "mcp",
				Usage: "Serve the engine over MCP stdio",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "Re-analyze the corpus when project files change",
					},
				},
				Action: runMCP,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads config, applies vocabulary extensions, and builds an
// initialized engine whose corpus source scans the project root.
func setup(c *cli.Context) (*engine.Engine, *config.Config, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}

	for _, ext := range cfg.Vocabulary {
		if !rules.ExtendContext(ext.Context, ext.Prefixes, ext.Suffixes) {
			return nil, nil, fmt.Errorf("config extends unknown context %q", ext.Context)
		}
	}

	var logger *log.Logger
	if c.Bool("debug") {
		logger = log.New(os.Stderr, "namekit: ", log.LstdFlags)
	}

	engCfg := engine.Config{Logger: logger}
	if !c.Bool("no-scan") {
		scanCfg := scanConfig(cfg)
		engCfg.Source = func() ([]string, error) {
			result, err := corpus.Scan(context.Background(), scanCfg)
			if err != nil {
				return nil, err
			}
			return result.Identifiers, nil
		}
	}

	eng := engine.New(engCfg)
	profileName := cfg.Profile
	if flag := c.String("profile"); flag != "" {
		profileName = flag
	}
	eng.SetProfile(profileName)
	eng.Initialize()
	return eng, cfg, nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if root := c.String("root"); root != "" && path == config.DefaultFileName {
		path = filepath.Join(root, config.DefaultFileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if root := c.String("root"); root != "" {
		cfg.Project.Root = root
	}
	return cfg, nil
}

func scanConfig(cfg *config.Config) corpus.ScanConfig {
	return corpus.ScanConfig{
		Root:        cfg.Project.Root,
		Include:     cfg.Scan.Include,
		Exclude:     cfg.Scan.Exclude,
		MaxFileSize: cfg.Scan.MaxFileSize,
		Workers:     cfg.Scan.Workers,
	}
}

func runSuggest(c *cli.Context) error {
	input := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("suggest needs a description, e.g.: namekit suggest show new section")
	}

	eng, cfg, err := setup(c)
	if err != nil {
		return err
	}

	maxResults := c.Int("max")
	if maxResults == 0 {
		maxResults = cfg.Suggest.MaxResults
	}
	opts := engine.SearchOptions{
		Context:       rules.ContextByName(c.String("context")),
		MaxResults:    maxResults,
		MaxCandidates: cfg.Suggest.MaxCandidates,
	}
	if c.Bool("check-corpus") && eng.Analysis() != nil {
		opts.ExistingNames = eng.Identifiers()
	}

	result := eng.Search(input, opts)
	if c.Bool("json") {
		return printJSON(result)
	}

	fmt.Printf("Context: %s (profile %s)\n", result.ContextName, result.Preferences.Name)
	for i, s := range result.Suggestions {
		fmt.Printf("%2d. %-32s %3d  (%s: %s)\n", i+1, s.Name, s.Score.Overall, s.Type, s.Explanation)
	}
	if len(result.Similar) > 0 {
		fmt.Println("Similar existing identifiers:")
		for _, m := range result.Similar {
			fmt.Printf("    %-32s %3d%%\n", m.Name, m.Similarity)
		}
	}
	return nil
}

func runValidate(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("validate needs a name, e.g.: namekit validate audioPlayerVolume")
	}
	name := c.Args().Get(0)
	meaning := strings.Join(c.Args().Slice()[1:], " ")

	eng, _, err := setup(c)
	if err != nil {
		return err
	}

	v := eng.ValidateName(name, meaning, rules.ContextByName(c.String("context")))
	if c.Bool("json") {
		return printJSON(v)
	}

	fmt.Printf("%s  (context: %s)\n", v.Name, v.ContextName)
	fmt.Printf("  overall %d  readability %d  context %d  semantic %d\n",
		v.Score.Overall, v.Score.Readability, v.Score.Context, v.Score.Semantic)
	for _, r := range v.Recommendations {
		fmt.Printf("  - %s\n", r)
	}
	return nil
}

func runImprove(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("improve needs a name and its meaning, e.g.: namekit improve sNs \"show new section\"")
	}
	name := c.Args().Get(0)
	meaning := strings.Join(c.Args().Slice()[1:], " ")

	eng, _, err := setup(c)
	if err != nil {
		return err
	}

	imp := eng.ImprovementSuggestions(name, meaning)
	if c.Bool("json") {
		return printJSON(imp)
	}

	fmt.Println(imp.Message)
	for _, issue := range imp.Issues {
		fmt.Printf("  ! %s\n", issue)
	}
	for i, s := range imp.Suggestions {
		fmt.Printf("%2d. %-32s %3d\n", i+1, s.Name, s.Score.Overall)
	}
	return nil
}

func runSimilar(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("similar needs a name to compare")
	}
	input := c.Args().Get(0)

	eng, cfg, err := setup(c)
	if err != nil {
		return err
	}
	if eng.Analysis() == nil || eng.Analysis().Identifiers == 0 {
		return fmt.Errorf("no corpus to compare against under %s (try --root or a scan config)", cfg.Project.Root)
	}

	result := eng.Search(input, engine.SearchOptions{
		MaxResults:    1, // only the duplicate check matters here
		ExistingNames: eng.Identifiers(),
	})
	matches := result.Similar
	t := c.Int("threshold")
	if t == 0 {
		t = cfg.Fuzzy.Threshold
	}
	if t > 0 {
		kept := matches[:0]
		for _, m := range matches {
			if m.Similarity >= t {
				kept = append(kept, m)
			}
		}
		matches = kept
	}

	if c.Bool("json") {
		return printJSON(matches)
	}
	if len(matches) == 0 {
		fmt.Printf("No identifiers similar to %q\n", input)
		return nil
	}
	for _, m := range matches {
		fmt.Printf("%-40s %3d%%\n", m.Name, m.Similarity)
	}
	return nil
}

func runAnalyze(c *cli.Context) error {
	eng, cfg, err := setup(c)
	if err != nil {
		return err
	}
	analysis := eng.Analysis()
	if analysis == nil {
		return fmt.Errorf("no analysis available (ran with --no-scan?)")
	}

	if c.Bool("json") {
		return printJSON(analysis)
	}

	fmt.Printf("Project: %s\n", cfg.Project.Root)
	fmt.Printf("Identifiers analyzed: %d\n", analysis.Identifiers)
	fmt.Println("Case distribution:")
	for caseName, count := range analysis.CaseDistribution {
		fmt.Printf("  %-16s %d\n", caseName, count)
	}
	fmt.Println("Common prefixes:")
	for _, tc := range analysis.CommonPrefixes {
		fmt.Printf("  %-16s %d\n", tc.Term, tc.Count)
	}
	fmt.Println("Common suffixes:")
	for _, tc := range analysis.CommonSuffixes {
		fmt.Printf("  %-16s %d\n", tc.Term, tc.Count)
	}
	return nil
}

func runMCP(c *cli.Context) error {
	eng, cfg, err := setup(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.Bool("watch") || cfg.Scan.Watch {
		watcher, err := corpus.NewWatcher(
			scanConfig(cfg),
			time.Duration(cfg.Scan.WatchDebounceMs)*time.Millisecond,
			func(result *corpus.ScanResult) {
				eng.SetCorpus(result.Identifiers)
			},
		)
		if err != nil {
			return fmt.Errorf("starting corpus watcher: %w", err)
		}
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("starting corpus watcher: %w", err)
		}
		defer watcher.Close()
	}

	return namemcp.NewServer(eng).Run(ctx)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/scener/internal/config"
	"github.com/vmunix/scener/internal/metadata"
	"github.com/vmunix/scener/internal/reconcile"
	"github.com/vmunix/scener/pkg/naming"
	"github.com/vmunix/scener/pkg/release"
	"github.com/vmunix/scener/pkg/release/scoring"
)

// reconcileResultJSON is the JSON-friendly form of a reconciliation run.
type reconcileResultJSON struct {
	Query    string         `json:"query"`
	Surfaced []surfacedJSON `json:"surfaced"`
	Changes  []string       `json:"changes,omitempty"`
}

type surfacedJSON struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	Rule   string `json:"rule,omitempty"`
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile [flags] <release-name>...",
	Short: "Reconcile releases against metadata sources",
	Long: `Run the reconciliation pipeline for each release name.

The name is parsed into a query, candidate releases are fetched from the
configured sources, and the surviving releases are printed with how each
one was accepted (matched, guessed, or compatible).

With --offline no source is queried; only standard release templates
marked assume = "always" are offered.`,
	RunE: runReconcileCmd,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
	reconcileCmd.Flags().Bool("best", false, "Print only the highest-quality surfaced release")
	reconcileCmd.Flags().Bool("offline", false, "Skip sources; offer only always-assumed standard releases")
}

func runReconcileCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no release names given")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg.Logging.Level)
	svc := naming.NewSceneService(cfg.Profile())

	cache, err := openLookupCache(cfg)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}
	pipeline := buildPipeline(cfg, svc, cache, log)

	best, _ := cmd.Flags().GetBool("best")
	offline, _ := cmd.Flags().GetBool("offline")
	for _, arg := range args {
		query, err := queryFromName(arg)
		if err != nil {
			return err
		}
		var result *reconcile.Result
		if offline {
			result = assumedResult(pipeline, query)
		} else if result, err = pipeline.Run(cmd.Context(), query); err != nil {
			return fmt.Errorf("reconcile %s: %w", arg, err)
		}
		if best {
			printBest(svc, result)
			continue
		}
		if err := printReconcileResult(svc, arg, result); err != nil {
			return err
		}
	}
	return nil
}

// printBest prints the highest-quality surfaced release by tag score.
func printBest(svc *naming.Service, result *reconcile.Result) {
	rels := make([]*release.Release, len(result.Items))
	for i, it := range result.Items {
		rels[i] = it.Release
	}
	i := scoring.Best(rels)
	if i < 0 {
		fmt.Println("no releases surfaced")
		return
	}
	fmt.Println(surfacedName(svc, rels[i]))
}

// surfacedName returns a printable name for a surfaced release: the raw
// retrieved name, or a rendering of the release for synthesized ones
// that never carried a raw name.
func surfacedName(svc *naming.Service, r *release.Release) string {
	if r.Name != "" {
		return r.Name
	}
	name, err := svc.Name(r, nil)
	if err != nil {
		return ""
	}
	return name
}

// assumedResult builds a result from the always-assumed standard
// templates alone, with guessed provenance and no retrieval.
func assumedResult(pipeline *reconcile.Pipeline, query *release.Release) *reconcile.Result {
	result := &reconcile.Result{}
	for _, g := range pipeline.GuessAssumed(query) {
		result.Items = append(result.Items, reconcile.Item{Release: g, Method: reconcile.Guessed})
	}
	return result
}

// buildPipeline wires the configured sources, correctors and rules into
// a reconciliation pipeline.
func buildPipeline(cfg *config.Config, svc *naming.Service, cache *metadata.Cache, log *slog.Logger) *reconcile.Pipeline {
	var sources []reconcile.Source
	for _, s := range cfg.Sources {
		client := metadata.NewClient(s.Name, s.URL, s.APIKey, log)
		if cache != nil {
			client = client.WithCache(cache)
		}
		sources = append(sources, client)
	}
	return reconcile.New(svc, reconcile.Config{
		Sources:     sources,
		Correctors:  cfg.Correctors(),
		CompatRules: cfg.CompatRules(),
		Standards:   cfg.StandardReleases(),
		MetaTags:    cfg.MetaTags(),
		Guessing:    cfg.Matching.Guessing,
		Logger:      log,
	})
}

// openLookupCache opens the metadata lookup cache when enabled.
func openLookupCache(cfg *config.Config) (*metadata.Cache, error) {
	if !cfg.Cache.Enabled || len(cfg.Sources) == 0 {
		return nil, nil
	}
	cache, err := metadata.OpenCache(cfg.Cache.Path, time.Duration(cfg.Cache.TTLHours)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("open lookup cache: %w", err)
	}
	return cache, nil
}

// queryFromName parses a release name into a pipeline query.
func queryFromName(name string) (*release.Release, error) {
	info, err := release.Parse(name)
	if err != nil {
		return nil, err
	}
	query := release.New(reconcile.MediaFromInfo(info)...)
	query.Name = name
	query.Tags = info.Tags
	query.Group = info.Group
	return query, nil
}

func printReconcileResult(svc *naming.Service, query string, result *reconcile.Result) error {
	if jsonOutput {
		out := reconcileResultJSON{Query: query}
		for _, it := range result.Items {
			out.Surfaced = append(out.Surfaced, surfacedJSON{
				Name:   surfacedName(svc, it.Release),
				Method: it.Method.String(),
				Rule:   it.Rule,
			})
		}
		for _, ch := range result.Changes {
			out.Changes = append(out.Changes, ch.String())
		}
		printJSON(out)
		return nil
	}

	fmt.Printf("%s\n", query)
	if len(result.Items) == 0 {
		fmt.Println("  no releases surfaced")
		return nil
	}
	for _, it := range result.Items {
		if it.Rule != "" {
			fmt.Printf("  %-10s %s (%s)\n", it.Method, surfacedName(svc, it.Release), it.Rule)
			continue
		}
		fmt.Printf("  %-10s %s\n", it.Method, surfacedName(svc, it.Release))
	}
	for _, ch := range result.Changes {
		fmt.Printf("  corrected  %s\n", ch)
	}
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/scener/internal/history"
	"github.com/vmunix/scener/internal/processor"
	"github.com/vmunix/scener/pkg/naming"
)

var processCmd = &cobra.Command{
	Use:   "process [flags] [<release-name>...]",
	Short: "Reconcile releases through the queue and record history",
	Long: `Submit release names to the processing queue, reconcile each one
against the configured sources, and record the outcome in the history
database.

Names are taken from the arguments, or from stdin when none are given.`,
	RunE: runProcessCmd,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcessCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg.Logging.Level)

	store, err := history.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	cache, err := openLookupCache(cfg)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}

	svc := naming.NewSceneService(cfg.Profile())
	pipeline := buildPipeline(cfg, svc, cache, log)
	proc := processor.New(pipeline, svc, store, cfg.Queue.Size, log)

	ctx := cmd.Context()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return proc.Run(ctx)
	})

	var submitErr error
	if len(args) > 0 {
		for _, name := range args {
			if submitErr = proc.Submit(ctx, name); submitErr != nil {
				break
			}
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if submitErr = proc.Submit(ctx, line); submitErr != nil {
				break
			}
		}
		if submitErr == nil {
			submitErr = scanner.Err()
		}
	}

	// Close drains the queue; Run returns once it is empty.
	proc.Close()
	if err := g.Wait(); err != nil {
		return err
	}
	return submitErr
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/scener/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [flags] [<run-id>]",
	Short: "Show recorded reconciliation runs",
	Long: `List recent reconciliation runs, or show one run in detail.

With no argument the most recent runs are listed. With a run ID the
query and every surfaced release are shown with how each was accepted.`,
	RunE: runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to list")
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		limit, _ := cmd.Flags().GetInt("limit")
		return listRuns(store, limit)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID %q", args[0])
	}
	return showRun(store, id)
}

func listRuns(store *history.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		printJSON(runs)
		return nil
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%6d  %s  %s\n", r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Item)
	}
	return nil
}

func showRun(store *history.Store, id int64) error {
	run, err := store.GetRun(id)
	if err != nil {
		return err
	}
	surfaced, err := store.ListSurfaced(id)
	if err != nil {
		return err
	}
	if jsonOutput {
		printJSON(struct {
			Run      *history.Run       `json:"run"`
			Surfaced []history.Surfaced `json:"surfaced"`
		}{run, surfaced})
		return nil
	}
	fmt.Printf("run %d\n", run.ID)
	fmt.Printf("  item:   %s\n", run.Item)
	fmt.Printf("  query:  %s\n", run.QueryName)
	fmt.Printf("  took:   %s\n", run.FinishedAt.Sub(run.StartedAt))
	for _, s := range surfaced {
		if s.Rule != "" {
			fmt.Printf("  %-10s %s (%s)\n", s.Method, s.Name, s.Rule)
			continue
		}
		fmt.Printf("  %-10s %s\n", s.Method, s.Name)
	}
	return nil
}

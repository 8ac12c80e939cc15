package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/scener/pkg/release"
)

// parseResultJSON is the JSON-friendly form of a parsed release name.
type parseResultJSON struct {
	Title        string   `json:"title"`
	Season       int      `json:"season,omitempty"`
	Episodes     []int    `json:"episodes,omitempty"`
	Date         string   `json:"date,omitempty"`
	EpisodeTitle string   `json:"episode_title,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Group        string   `json:"group,omitempty"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <release-name>...",
	Short: "Parse release names into structured form",
	Long: `Parse scene release names to extract series, numbering, tags and group.

Examples:
  scener parse "Psych.S03E07.Lead.Balloon.720p.HDTV.x264-DIMENSION"
  scener parse --file releases.txt --json`,
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "Read release names from file (one per line)")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")

	names := args
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("open %s: %w", inputFile, err)
		}
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				names = append(names, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read %s: %w", inputFile, err)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no release names given")
	}

	for _, name := range names {
		info, err := release.Parse(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if jsonOutput {
			printJSON(toParseJSON(info))
			continue
		}
		printParseHuman(name, info)
	}
	return nil
}

func toParseJSON(info *release.Info) parseResultJSON {
	out := parseResultJSON{
		Title:        info.Title,
		Season:       info.Season,
		Episodes:     info.Episodes,
		EpisodeTitle: info.EpisodeTitle,
		Group:        string(info.Group),
	}
	if !info.Date.IsZero() {
		out.Date = fmt.Sprintf("%04d-%02d-%02d", info.Date.Year, info.Date.Month, info.Date.Day)
	}
	for _, t := range info.Tags {
		out.Tags = append(out.Tags, string(t))
	}
	return out
}

func printParseHuman(name string, info *release.Info) {
	fmt.Printf("%s\n", name)
	fmt.Printf("  Title:    %s\n", info.Title)
	if info.Season != 0 {
		fmt.Printf("  Season:   %d\n", info.Season)
	}
	if len(info.Episodes) > 0 {
		fmt.Printf("  Episodes: %v\n", info.Episodes)
	}
	if !info.Date.IsZero() {
		fmt.Printf("  Date:     %04d-%02d-%02d\n", info.Date.Year, info.Date.Month, info.Date.Day)
	}
	if info.EpisodeTitle != "" {
		fmt.Printf("  EpTitle:  %s\n", info.EpisodeTitle)
	}
	if len(info.Tags) > 0 {
		fmt.Printf("  Tags:     %s\n", info.Tags.String())
	}
	if info.Group != "" {
		fmt.Printf("  Group:    %s\n", info.Group)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/scener/internal/reconcile"
	"github.com/vmunix/scener/pkg/naming"
	"github.com/vmunix/scener/pkg/release"
)

var nameCmd = &cobra.Command{
	Use:   "name [flags] <release-name>...",
	Short: "Render canonical names for releases",
	Long: `Parse each release name and render it back in canonical form.

The input is parsed, rebuilt as structured media, and rendered through
the configured naming profile. Useful for checking how a release would
be standardized.

Examples:
  scener name "psych.s03e07.720p.hdtv.x264-dimension"
  scener name --series=false "Psych.S03E07.720p.HDTV.x264-DIMENSION"`,
	RunE: runNameCmd,
}

func init() {
	rootCmd.AddCommand(nameCmd)
	nameCmd.Flags().Bool("series", true, "Include the series name")
	nameCmd.Flags().Bool("season", true, "Include the season")
	nameCmd.Flags().Bool("episode-title", false, "Always include the episode title")
}

func runNameCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no release names given")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := naming.NewSceneService(cfg.Profile())

	includeSeries, _ := cmd.Flags().GetBool("series")
	includeSeason, _ := cmd.Flags().GetBool("season")
	episodeTitle, _ := cmd.Flags().GetBool("episode-title")
	params := naming.Params{
		naming.ParamIncludeSeries:             includeSeries,
		naming.ParamIncludeSeason:             includeSeason,
		naming.ParamAlwaysIncludeEpisodeTitle: episodeTitle,
	}

	var failed bool
	for _, arg := range args {
		info, err := release.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}
		rel := release.New(reconcile.MediaFromInfo(info)...)
		rel.Tags = info.Tags
		rel.Group = info.Group
		name, err := svc.Name(rel, params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}
		fmt.Println(name)
	}
	if failed {
		return fmt.Errorf("some names could not be rendered")
	}
	return nil
}

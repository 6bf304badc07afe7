package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"storyseq/internal/application/commands"
	"storyseq/internal/domain"
)

var epicsCmd = &cobra.Command{
	Use:   "epics",
	Short: "List epic documents in processing order",
	Long: `List every EPIC_*.md candidate in the order storyseq processes them,
followed by the files that declare no Epic ID and are skipped.

Columns: epic ID, Story ID field count, file name, title.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listCmd := commands.NewListEpicsCommand(repo, titles, logger)
		epics, err := listCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range epics {
			fmt.Fprintln(out, formatEpicLine(e))
		}
		return nil
	},
}

func formatEpicLine(e commands.EpicSummary) string {
	id := "-"
	if e.HasNumber {
		id = domain.FormatStoryID(e.Number)
	}
	return fmt.Sprintf("%-6s %3d  %s  %s", id, e.Stories, e.File, e.Title)
}

func init() {
	rootCmd.AddCommand(epicsCmd)
}

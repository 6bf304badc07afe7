package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"storyseq/internal/application/commands"
	"storyseq/internal/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded renumber runs",
	Long: `Without arguments, list the most recent runs recorded for this planning
directory, newest first. With a run ID, list every assignment of that run.

Examples:
  storyseq history
  storyseq history 3f2b7c1e-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			getCmd := commands.NewGetRunCommand(ledger, repo.Dir(), args[0])
			run, err := getCmd.Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatRun(*run))
			for _, a := range run.Assignments {
				fmt.Fprintf(out, "  %-8s %-10s %s:%d\n", a.StoryID, a.Previous, a.File, a.Line)
			}
			return nil
		}

		listCmd := commands.NewListRunsCommand(ledger, repo.Dir(), commands.DefaultHistoryLimit)
		runs, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded.")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintln(out, formatRun(r))
		}
		return nil
	},
}

func formatRun(r domain.Run) string {
	return fmt.Sprintf("%s  %s  %s..%s  total=%d",
		r.ID,
		r.StartedAt.Local().Format(time.DateTime),
		domain.FormatStoryID(r.FirstID),
		domain.FormatStoryID(r.LastID),
		r.Total,
	)
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

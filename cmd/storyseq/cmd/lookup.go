package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"storyseq/internal/application/commands"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <story-id>",
	Short: "Find where a Story ID was assigned",
	Long: `Report the file, line and epic that received a Story ID in the most
recent recorded run.

Example:
  storyseq lookup MS-42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lookupCmd := commands.NewLookupStoryCommand(ledger, repo.Dir(), args[0])
		result, err := lookupCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

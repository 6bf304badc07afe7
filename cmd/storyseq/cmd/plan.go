package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"storyseq/internal/application/commands"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the renumbering as YAML without writing",
	Long: `Compute the same assignments as a real run and print them as a YAML
manifest. Nothing is written and no run is recorded.

Example:
  storyseq plan > renumber.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		planCmd := commands.NewPlanCommand(repo, titles, logger)
		result, err := planCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(result.Manifest); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storyseq/internal/adapters/filesystem"
	"storyseq/internal/adapters/markdown"
	"storyseq/internal/adapters/sqlite"
	"storyseq/internal/application/commands"
	"storyseq/internal/config"
	"storyseq/internal/logging"
	"storyseq/internal/ports"
)

var (
	repo   ports.PlanningRepository
	ledger ports.RunLedger
	titles ports.TitleReader
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storyseq",
	Short: "Assign sequential Story IDs across epic planning documents",
	Long: `storyseq rewrites every **Story ID** field in planning/EPIC_*.md so that
story identifiers form one global sequence starting at MS-10.

Epics are processed in the order of their **Epic ID** (MS-<n>), not by file
name. The planning directory is looked up next to the storyseq executable.

Running storyseq with no arguments applies the renumbering. Use "storyseq plan"
to preview it without writing.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		root, err := config.Root()
		if err != nil {
			return err
		}
		setup(config.PlanningDir(root))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRenumber(cmd.Context(), cmd.OutOrStdout(), repo, ledger, logger)
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup wires the adapters for a planning directory
func setup(planningDir string) {
	repo = filesystem.NewRepository(planningDir)
	ledger = sqlite.NewLedger()
	titles = markdown.NewTitleReader()
	logger = logging.NewOrNop(false)
}

// runRenumber applies the renumbering and prints one line per epic and a summary
func runRenumber(ctx context.Context, out io.Writer, repo ports.PlanningRepository, ledger ports.RunLedger, logger *zap.Logger) error {
	result, err := commands.NewRenumberCommand(repo, ledger, logger).Execute(ctx)
	if result != nil {
		for _, line := range result.Lines {
			fmt.Fprintln(out, line)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, result.Summary)
	return nil
}

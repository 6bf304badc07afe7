package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"storyseq/internal/adapters/editor"
	"storyseq/internal/adapters/filesystem"
	"storyseq/internal/adapters/markdown"
	"storyseq/internal/adapters/sqlite"
	"storyseq/internal/adapters/tui"
	"storyseq/internal/config"
	"storyseq/internal/logging"
)

func main() {
	rootFlag := flag.String("root", config.DefaultRoot(), "directory containing the planning/ folder")
	debugFlag := flag.Bool("debug", false, "log at debug level to stderr")
	flag.Parse()

	// stderr is the terminal while the TUI runs
	logger := zap.NewNop()
	if *debugFlag {
		logger = logging.NewOrNop(true)
	}
	defer logger.Sync()

	// Initialize adapters
	repo := filesystem.NewRepository(config.PlanningDir(*rootFlag))
	ledger := sqlite.NewLedger()
	titles := markdown.NewTitleReader()
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(repo, titles, ledger, editorOpener, logger)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"storyseq/internal/adapters/filesystem"
	"storyseq/internal/adapters/markdown"
	mcpadapter "storyseq/internal/adapters/mcp"
	"storyseq/internal/adapters/sqlite"
	"storyseq/internal/config"
	"storyseq/internal/logging"
)

func main() {
	rootFlag := flag.String("root", config.DefaultRoot(), "directory containing the planning/ folder")
	debugFlag := flag.Bool("debug", false, "log at debug level to stderr")
	flag.Parse()

	logger := logging.NewOrNop(*debugFlag)
	defer logger.Sync()

	repo := filesystem.NewRepository(config.PlanningDir(*rootFlag))
	ledger := sqlite.NewLedger()
	titles := markdown.NewTitleReader()

	mcpServer := server.NewMCPServer(
		"storyseq-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, titles, ledger, logger)
	mcpadapter.RegisterWriteTools(mcpServer, repo, ledger, logger)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("storyseq-mcp: %v", err)
	}
}

package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"storyseq/internal/application/commands"
	"storyseq/internal/ports"
)

// RegisterWriteTools adds the tools that modify planning documents to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.PlanningRepository, ledger ports.RunLedger, logger *zap.Logger) {
	s.AddTool(renumberTool(), renumberHandler(repo, ledger, logger))
}

// --- renumber ---

func renumberTool() mcp.Tool {
	return mcp.NewTool("renumber",
		mcp.WithDescription("Reassign every Story ID in the EPIC_*.md documents as one global sequence starting at MS-10, in Epic ID order, and write the changed files."),
	)
}

func renumberHandler(repo ports.PlanningRepository, ledger ports.RunLedger, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRenumberCommand(repo, ledger, logger).Execute(ctx)

		var sb strings.Builder
		if result != nil {
			for _, line := range result.Lines {
				sb.WriteString(line)
				sb.WriteByte('\n')
			}
		}
		if err != nil {
			sb.WriteString(err.Error())
			return mcp.NewToolResultError(sb.String()), nil
		}
		sb.WriteString(result.Summary)
		if result.RunID != "" {
			sb.WriteString("\nRun: ")
			sb.WriteString(result.RunID)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"storyseq/internal/application/commands"
	"storyseq/internal/domain"
	"storyseq/internal/ports"
)

// RegisterReadTools adds all read-only planning tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.PlanningRepository, titles ports.TitleReader, ledger ports.RunLedger, logger *zap.Logger) {
	s.AddTool(epicsTool(), epicsHandler(repo, titles, logger))
	s.AddTool(planTool(), planHandler(repo, titles, logger))
	s.AddTool(historyTool(), historyHandler(repo, ledger))
	s.AddTool(lookupStoryTool(), lookupStoryHandler(repo, ledger))
}

// --- epics ---

func epicsTool() mcp.Tool {
	return mcp.NewTool("epics",
		mcp.WithDescription("List EPIC_*.md planning documents in processing order (by declared Epic ID), followed by documents without an Epic ID."),
	)
}

func epicsHandler(repo ports.PlanningRepository, titles ports.TitleReader, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := commands.NewListEpicsCommand(repo, titles, logger).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(summaries, formatEpic)
	}
}

// --- plan ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan",
		mcp.WithDescription("Preview the Story ID renumbering as a YAML manifest without modifying any file."),
	)
}

func planHandler(repo ports.PlanningRepository, titles ports.TitleReader, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewPlanCommand(repo, titles, logger).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		out, err := yaml.Marshal(result.Manifest)
		if err != nil {
			return toolError(fmt.Errorf("failed to encode manifest: %w", err))
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List recorded renumber runs, newest first. With a run ID, list that run's assignments."),
		mcp.WithString("run_id",
			mcp.Description("Run ID to show. Omit to list runs."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of runs to list (default 20)"),
		),
	)
}

func historyHandler(repo ports.PlanningRepository, ledger ports.RunLedger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		runID := req.GetString("run_id", "")

		if runID == "" {
			runs, err := commands.NewListRunsCommand(ledger, repo.Dir(), req.GetInt("limit", 0)).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return formatEntities(runs, formatRun)
		}

		run, err := commands.NewGetRunCommand(ledger, repo.Dir(), runID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(run.Assignments, formatAssignment)
	}
}

// --- lookup_story ---

func lookupStoryTool() mcp.Tool {
	return mcp.NewTool("lookup_story",
		mcp.WithDescription("Find the epic file and line where a Story ID was assigned by the latest recorded run."),
		mcp.WithString("story_id",
			mcp.Description("Story ID (e.g. MS-12)"),
			mcp.Required(),
		),
	)
}

func lookupStoryHandler(repo ports.PlanningRepository, ledger ports.RunLedger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		storyID := req.GetString("story_id", "")

		result, err := commands.NewLookupStoryCommand(ledger, repo.Dir(), storyID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatEpic(s commands.EpicSummary) string {
	epic := "-"
	if s.HasNumber {
		epic = domain.FormatStoryID(s.Number)
	}
	return fmt.Sprintf("%s  %s  stories=%d  %s", epic, s.File, s.Stories, s.Title)
}

func formatRun(r domain.Run) string {
	return fmt.Sprintf("%s  %s  %s..%s  total=%d",
		r.ID, r.StartedAt.Format("2006-01-02 15:04:05"),
		domain.FormatStoryID(r.FirstID), domain.FormatStoryID(r.LastID), r.Total)
}

func formatAssignment(a domain.RunAssignment) string {
	return fmt.Sprintf("%s  %s:%d  (was %s)", a.StoryID, a.File, a.Line, a.Previous)
}

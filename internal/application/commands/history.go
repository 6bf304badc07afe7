package commands

import (
	"context"
	"fmt"
	"strings"

	"storyseq/internal/application"
	"storyseq/internal/domain"
	"storyseq/internal/ports"
)

// DefaultHistoryLimit is how many runs ListRunsCommand returns by default
const DefaultHistoryLimit = 20

// ListRunsCommand lists recorded runs, newest first
type ListRunsCommand struct {
	ledger      ports.RunLedger
	planningDir string
	Limit       int
}

// NewListRunsCommand creates a new ListRunsCommand
func NewListRunsCommand(ledger ports.RunLedger, planningDir string, limit int) *ListRunsCommand {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &ListRunsCommand{ledger: ledger, planningDir: planningDir, Limit: limit}
}

// Execute runs the list runs command
func (c *ListRunsCommand) Execute(ctx context.Context) ([]domain.Run, error) {
	var runs []domain.Run
	err := withLedger(c.ledger, c.planningDir, func() error {
		var err error
		runs, err = c.ledger.ListRuns(c.Limit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// GetRunCommand loads one run with its assignments
type GetRunCommand struct {
	ledger      ports.RunLedger
	planningDir string
	RunID       string
}

// NewGetRunCommand creates a new GetRunCommand
func NewGetRunCommand(ledger ports.RunLedger, planningDir, runID string) *GetRunCommand {
	return &GetRunCommand{ledger: ledger, planningDir: planningDir, RunID: runID}
}

// Validate checks if the run ID is present
func (c *GetRunCommand) Validate() error {
	return application.ValidateRequired("runID", c.RunID)
}

// Execute runs the get run command
func (c *GetRunCommand) Execute(ctx context.Context) (*domain.Run, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var run *domain.Run
	err := withLedger(c.ledger, c.planningDir, func() error {
		var err error
		run, err = c.ledger.GetRun(strings.TrimSpace(c.RunID))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if run == nil {
		return nil, &application.NotFoundError{Kind: "run", ID: c.RunID}
	}
	return run, nil
}

// LookupStoryResult contains where a story ID was last assigned
type LookupStoryResult struct {
	Assignment *domain.RunAssignment
	Message    string
}

// LookupStoryCommand finds the epic that received a story ID in the latest run
type LookupStoryCommand struct {
	ledger      ports.RunLedger
	planningDir string
	StoryID     string
}

// NewLookupStoryCommand creates a new LookupStoryCommand
func NewLookupStoryCommand(ledger ports.RunLedger, planningDir, storyID string) *LookupStoryCommand {
	return &LookupStoryCommand{ledger: ledger, planningDir: planningDir, StoryID: storyID}
}

// Validate checks if the story ID is well formed
func (c *LookupStoryCommand) Validate() error {
	return application.ValidateStoryID("storyID", c.StoryID)
}

// Execute runs the lookup story command
func (c *LookupStoryCommand) Execute(ctx context.Context) (*LookupStoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(c.StoryID)

	var a *domain.RunAssignment
	err := withLedger(c.ledger, c.planningDir, func() error {
		var err error
		a, err = c.ledger.LookupStory(id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up story: %w", err)
	}
	if a == nil {
		return nil, &application.NotFoundError{Kind: "story", ID: id}
	}

	return &LookupStoryResult{
		Assignment: a,
		Message: fmt.Sprintf("%s: %s line %d (epic %s, was %s)",
			a.StoryID, a.File, a.Line, domain.FormatStoryID(a.EpicNumber), a.Previous),
	}, nil
}

// withLedger opens the ledger for the planning directory around fn.
// fn is not called when no run was ever recorded for the directory.
func withLedger(ledger ports.RunLedger, planningDir string, fn func() error) error {
	if ledger == nil {
		return fmt.Errorf("run ledger not configured")
	}
	exists, err := ledger.Exists(planningDir)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if err := ledger.Open(planningDir); err != nil {
		return err
	}
	defer ledger.Close()
	return fn()
}

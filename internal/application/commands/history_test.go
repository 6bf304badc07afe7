package commands

import (
	"context"
	"errors"
	"testing"

	"storyseq/internal/application"
	"storyseq/internal/domain"
)

func ledgerWithRuns() *mockLedger {
	return &mockLedger{
		runs: []domain.Run{
			{
				ID:     "run-2",
				Total:  1,
				LastID: 10,
				Assignments: []domain.RunAssignment{
					{RunID: "run-2", StoryID: "MS-10", Previous: "MS-11", EpicNumber: 1, File: "EPIC_A.md", Line: 4},
				},
			},
			{ID: "run-1", Total: 2, LastID: 11},
		},
	}
}

func TestListRunsCommand(t *testing.T) {
	ledger := ledgerWithRuns()

	runs, err := NewListRunsCommand(ledger, "/repo/planning", 1).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-2" {
		t.Errorf("unexpected runs %+v", runs)
	}
	if ledger.openDir != "/repo/planning" || ledger.closed != 1 {
		t.Error("expected ledger to be opened and closed")
	}
}

func TestListRunsCommand_DefaultLimit(t *testing.T) {
	cmd := NewListRunsCommand(&mockLedger{}, "/repo/planning", 0)
	if cmd.Limit != DefaultHistoryLimit {
		t.Errorf("Limit = %d, expected %d", cmd.Limit, DefaultHistoryLimit)
	}
}

func TestGetRunCommand(t *testing.T) {
	tests := []struct {
		name    string
		runID   string
		wantErr error
		errMsg  string
	}{
		{name: "existing run", runID: "run-1"},
		{name: "unknown run", runID: "run-9", wantErr: application.ErrNotFound, errMsg: "run run-9 not found"},
		{name: "empty ID", runID: " ", errMsg: "run ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := NewGetRunCommand(ledgerWithRuns(), "/repo/planning", tt.runID).Execute(context.Background())
			if tt.errMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if run.ID != tt.runID {
					t.Errorf("got run %s, expected %s", run.ID, tt.runID)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			if !contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLookupStoryCommand(t *testing.T) {
	tests := []struct {
		name    string
		storyID string
		wantMsg string
		errMsg  string
	}{
		{
			name:    "assigned in latest run",
			storyID: "MS-10",
			wantMsg: "MS-10: EPIC_A.md line 4 (epic MS-1, was MS-11)",
		},
		{
			name:    "not assigned",
			storyID: "MS-99",
			errMsg:  "story MS-99 not found",
		},
		{
			name:    "malformed ID",
			storyID: "MS-TBD",
			errMsg:  "expected MS-<number>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewLookupStoryCommand(ledgerWithRuns(), "/repo/planning", tt.storyID).Execute(context.Background())
			if tt.errMsg != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Message != tt.wantMsg {
				t.Errorf("Message = %q, expected %q", result.Message, tt.wantMsg)
			}
		})
	}
}

func TestHistoryCommands_NoLedger(t *testing.T) {
	_, err := NewListRunsCommand(nil, "/repo/planning", 5).Execute(context.Background())
	if err == nil || !contains(err.Error(), "run ledger not configured") {
		t.Errorf("expected ledger not configured error, got %v", err)
	}
}

func TestHistoryCommands_NoRecordedRuns(t *testing.T) {
	ledger := &mockLedger{missing: true}
	ctx := context.Background()

	runs, err := NewListRunsCommand(ledger, "/repo/planning", 5).Execute(ctx)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	_, err = NewGetRunCommand(ledger, "/repo/planning", "run-1").Execute(ctx)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("GetRun: expected ErrNotFound, got %v", err)
	}

	_, err = NewLookupStoryCommand(ledger, "/repo/planning", "MS-10").Execute(ctx)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("LookupStory: expected ErrNotFound, got %v", err)
	}

	if ledger.opened != 0 {
		t.Errorf("ledger opened %d times, expected none", ledger.opened)
	}
}

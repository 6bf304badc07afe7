package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storyseq/internal/domain"
	"storyseq/internal/ports"
)

// RenumberResult contains the result of a renumber run
type RenumberResult struct {
	domain.Result
	RunID   string   // Empty when the run was not recorded
	Lines   []string // One progress line per processed epic
	Summary string
	Written []string // Paths rewritten on disk
}

// RenumberCommand assigns sequential Story IDs across all epics and writes
// the changed documents back
type RenumberCommand struct {
	repo   ports.PlanningRepository
	ledger ports.RunLedger
	logger *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewRenumberCommand creates a new RenumberCommand. ledger may be nil.
func NewRenumberCommand(repo ports.PlanningRepository, ledger ports.RunLedger, logger *zap.Logger) *RenumberCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RenumberCommand{
		repo:   repo,
		ledger: ledger,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Execute runs the renumber command. When a write fails, the returned result
// still holds the lines of the documents processed before the failure.
func (c *RenumberCommand) Execute(ctx context.Context) (*RenumberResult, error) {
	startedAt := c.now()

	loaded, err := NewLoadEpicsCommand(c.repo, c.logger).Execute(ctx)
	if err != nil {
		return nil, err
	}

	res := domain.Renumber(loaded.Epics, domain.StartStoryID)
	out := &RenumberResult{Result: res}

	for _, doc := range res.Documents {
		if doc.Changed() {
			if err := c.repo.WriteDocument(doc.Epic.Path, doc.NewText); err != nil {
				return out, fmt.Errorf("failed to write %s: %w", doc.Epic.Name, err)
			}
			out.Written = append(out.Written, doc.Epic.Path)
		}
		out.Lines = append(out.Lines, doc.ReportLine())
	}
	out.Summary = res.SummaryLine()

	if len(out.Written) > 0 {
		out.RunID = c.record(domain.NewRun(c.newID(), startedAt, c.repo.Dir(), res))
	}

	return out, nil
}

// record stores the run in the ledger. Failures are logged, never returned.
func (c *RenumberCommand) record(run *domain.Run) string {
	if c.ledger == nil {
		return ""
	}

	if err := c.ledger.Open(c.repo.Dir()); err != nil {
		c.logger.Warn("failed to open run ledger", zap.Error(err))
		return ""
	}
	defer c.ledger.Close()

	if err := c.ledger.RecordRun(run); err != nil {
		c.logger.Warn("failed to record run", zap.String("run_id", run.ID), zap.Error(err))
		return ""
	}

	c.logger.Debug("recorded run",
		zap.String("run_id", run.ID),
		zap.Int("total", run.Total),
		zap.Int("last_id", run.LastID),
	)
	return run.ID
}

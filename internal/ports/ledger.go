package ports

import "storyseq/internal/domain"

// RunLedger records renumber runs so assignments can be looked up later
type RunLedger interface {
	// Lifecycle
	Open(planningDir string) error
	Close() error

	// Exists reports whether a ledger has been created for planningDir.
	// Readers check it first so that querying never creates one.
	Exists(planningDir string) (bool, error)

	// RecordRun stores a run and all of its assignments atomically
	RecordRun(run *domain.Run) error

	// Queries
	ListRuns(limit int) ([]domain.Run, error)
	GetRun(runID string) (*domain.Run, error)
	LookupStory(storyID string) (*domain.RunAssignment, error)
}

package domain

import "time"

// Run is a recorded renumbering pass over a planning directory
type Run struct {
	ID          string // UUID
	StartedAt   time.Time
	PlanningDir string
	FirstID     int
	LastID      int
	Total       int
	Assignments []RunAssignment // Empty when listing runs
}

// RunAssignment ties an assigned Story ID to the epic file that received it
type RunAssignment struct {
	RunID      string
	StoryID    string // e.g., "MS-11"
	Previous   string // e.g., "MS-TBD"
	EpicNumber int
	File       string // File name within the planning directory
	Line       int
}

// NewRun builds the ledger record for a renumber result
func NewRun(id string, startedAt time.Time, planningDir string, res Result) *Run {
	run := &Run{
		ID:          id,
		StartedAt:   startedAt,
		PlanningDir: planningDir,
		Total:       res.Total(),
		LastID:      res.LastID(),
	}
	if run.Total > 0 {
		run.FirstID = res.Start
	}

	for _, doc := range res.Documents {
		for _, a := range doc.Assignments {
			run.Assignments = append(run.Assignments, RunAssignment{
				RunID:      id,
				StoryID:    a.ID(),
				Previous:   a.Previous,
				EpicNumber: doc.Epic.Number,
				File:       doc.Epic.Name,
				Line:       a.Line,
			})
		}
	}

	return run
}

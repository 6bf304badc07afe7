package sqlite

import (
	"database/sql"

	"storyseq/internal/domain"
)

// ledgerTx wraps the transaction used to record one run
type ledgerTx struct {
	tx *sql.Tx
}

// beginTx starts a new transaction
func beginTx(db *sql.DB) (*ledgerTx, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	return &ledgerTx{tx: tx}, nil
}

// insertRun adds the run row
func (t *ledgerTx) insertRun(run *domain.Run) error {
	_, err := t.tx.Exec(`
		INSERT INTO runs (id, started_at, planning_dir, first_id, last_id, total)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.UnixNano(), run.PlanningDir, run.FirstID, run.LastID, run.Total)
	return err
}

// insertAssignment adds one assignment row; seq keeps the assignment order
func (t *ledgerTx) insertAssignment(seq int, a *domain.RunAssignment) error {
	_, err := t.tx.Exec(`
		INSERT INTO assignments (run_id, seq, story_id, previous, epic_number, file, line)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.RunID, seq, a.StoryID, a.Previous, a.EpicNumber, a.File, a.Line)
	return err
}

// Commit commits the transaction
func (t *ledgerTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *ledgerTx) Rollback() error {
	return t.tx.Rollback()
}

package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"storyseq/internal/domain"
	"storyseq/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

var errNotOpen = errors.New("ledger is not open")

// Ledger implements ports.RunLedger using SQLite.
// Open and Close are reference counted so one Ledger can serve concurrent
// callers: the connection stays up until the last Open is matched by a Close.
type Ledger struct {
	mu          sync.Mutex
	db          *sql.DB
	refs        int
	planningDir string
	dbPath      string
}

// Ensure Ledger implements RunLedger
var _ ports.RunLedger = (*Ledger)(nil)

// NewLedger creates a new SQLite run ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Open initializes the ledger for the given planning directory.
// Opening an already open ledger for the same directory only adds a reference.
func (l *Ledger) Open(planningDir string) error {
	if abs, err := filepath.Abs(planningDir); err == nil {
		planningDir = abs
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.refs > 0 {
		if planningDir != l.planningDir {
			return fmt.Errorf("ledger already open for %s", l.planningDir)
		}
		l.refs++
		return nil
	}

	dbPath := databasePath(planningDir)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			planning_dir TEXT NOT NULL,
			first_id INTEGER NOT NULL,
			last_id INTEGER NOT NULL,
			total INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS assignments (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			story_id TEXT NOT NULL,
			previous TEXT NOT NULL,
			epic_number INTEGER NOT NULL,
			file TEXT NOT NULL,
			line INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
		CREATE INDEX IF NOT EXISTS idx_assignments_story ON assignments(story_id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := updateMeta(db, planningDir); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	l.db = db
	l.refs = 1
	l.planningDir = planningDir
	l.dbPath = dbPath
	return nil
}

// Close releases one reference and closes the connection with the last one
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.refs == 0 {
		return nil
	}
	l.refs--
	if l.refs > 0 {
		return nil
	}

	err := l.db.Close()
	l.db = nil
	return err
}

// Exists reports whether a ledger database has been created for planningDir
func (l *Ledger) Exists(planningDir string) (bool, error) {
	if abs, err := filepath.Abs(planningDir); err == nil {
		planningDir = abs
	}
	_, err := os.Stat(databasePath(planningDir))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat ledger: %w", err)
	}
	return true, nil
}

// Path returns the database file path, empty before Open
func (l *Ledger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dbPath
}

// conn returns the open connection. The caller's own reference keeps it open.
func (l *Ledger) conn() (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil, errNotOpen
	}
	return l.db, nil
}

// databasePath returns the path for the SQLite database
func databasePath(planningDir string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "storyseq", hashPlanningDir(planningDir)+".db")
}

// hashPlanningDir returns a short hash of the planning directory path
func hashPlanningDir(planningDir string) string {
	h := sha256.Sum256([]byte(planningDir))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta records the schema version and the planning directory
func updateMeta(db *sql.DB, planningDir string) error {
	const upsert = `INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`
	if _, err := db.Exec(upsert, "schema_version", schemaVersion); err != nil {
		return err
	}
	_, err := db.Exec(upsert, "planning_dir", planningDir)
	return err
}

// RecordRun stores a run and its assignments in one transaction
func (l *Ledger) RecordRun(run *domain.Run) error {
	db, err := l.conn()
	if err != nil {
		return err
	}

	tx, err := beginTx(db)
	if err != nil {
		return err
	}

	if err := tx.insertRun(run); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert run: %w", err)
	}
	for i := range run.Assignments {
		if err := tx.insertAssignment(i, &run.Assignments[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert assignment %s: %w", run.Assignments[i].StoryID, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns recorded runs, newest first, without assignments
func (l *Ledger) ListRuns(limit int) ([]domain.Run, error) {
	db, err := l.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, started_at, planning_dir, first_id, last_id, total
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// GetRun returns a run with its assignments, or nil if it does not exist
func (l *Ledger) GetRun(runID string) (*domain.Run, error) {
	db, err := l.conn()
	if err != nil {
		return nil, err
	}

	run, err := scanRun(db.QueryRow(`
		SELECT id, started_at, planning_dir, first_id, last_id, total
		FROM runs WHERE id = ?
	`, runID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT run_id, story_id, previous, epic_number, file, line
		FROM assignments WHERE run_id = ?
		ORDER BY seq
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		run.Assignments = append(run.Assignments, *a)
	}

	return run, rows.Err()
}

// LookupStory returns the assignment of storyID in the most recent run
// that assigned it, or nil if no run did
func (l *Ledger) LookupStory(storyID string) (*domain.RunAssignment, error) {
	db, err := l.conn()
	if err != nil {
		return nil, err
	}

	a, err := scanAssignment(db.QueryRow(`
		SELECT a.run_id, a.story_id, a.previous, a.epic_number, a.file, a.line
		FROM assignments a
		JOIN runs r ON r.id = a.run_id
		WHERE a.story_id = ?
		ORDER BY r.started_at DESC, r.rowid DESC
		LIMIT 1
	`, storyID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*domain.Run, error) {
	var run domain.Run
	var startedAt int64
	if err := s.Scan(&run.ID, &startedAt, &run.PlanningDir, &run.FirstID, &run.LastID, &run.Total); err != nil {
		return nil, err
	}
	run.StartedAt = time.Unix(0, startedAt).UTC()
	return &run, nil
}

func scanAssignment(s scanner) (*domain.RunAssignment, error) {
	var a domain.RunAssignment
	if err := s.Scan(&a.RunID, &a.StoryID, &a.Previous, &a.EpicNumber, &a.File, &a.Line); err != nil {
		return nil, err
	}
	return &a, nil
}

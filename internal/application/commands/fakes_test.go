package commands

import (
	"errors"
	"path"
	"sort"
	"strings"

	"storyseq/internal/domain"
)

// Mock implementations for testing

type mockPlanningRepository struct {
	dir      string
	missing  bool
	files    map[string]string // file name -> content
	writes   map[string]string // path -> content
	writeErr error
	failOn   string // when set, only writes to this file name fail
}

func newMockPlanningRepository(files map[string]string) *mockPlanningRepository {
	return &mockPlanningRepository{
		dir:    "/repo/planning",
		files:  files,
		writes: make(map[string]string),
	}
}

func (m *mockPlanningRepository) Dir() string { return m.dir }

func (m *mockPlanningRepository) Exists() (bool, error) { return !m.missing, nil }

func (m *mockPlanningRepository) ListEpicDocuments() ([]domain.Document, error) {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)

	docs := make([]domain.Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, domain.Document{
			Name: name,
			Path: path.Join(m.dir, name),
			Text: m.files[name],
		})
	}
	return docs, nil
}

func (m *mockPlanningRepository) WriteDocument(p, content string) error {
	if m.writeErr != nil && (m.failOn == "" || path.Base(p) == m.failOn) {
		return m.writeErr
	}
	m.writes[p] = content
	return nil
}

type mockLedger struct {
	missing  bool
	openDir  string
	openErr  error
	opened   int
	closed   int
	runs     []domain.Run
	recorded []*domain.Run
}

func (m *mockLedger) Open(planningDir string) error {
	if m.openErr != nil {
		return m.openErr
	}
	m.openDir = planningDir
	m.opened++
	return nil
}

func (m *mockLedger) Close() error {
	m.closed++
	return nil
}

func (m *mockLedger) Exists(planningDir string) (bool, error) {
	return !m.missing, nil
}

func (m *mockLedger) RecordRun(run *domain.Run) error {
	m.recorded = append(m.recorded, run)
	return nil
}

func (m *mockLedger) ListRuns(limit int) ([]domain.Run, error) {
	if len(m.runs) > limit {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}

func (m *mockLedger) GetRun(runID string) (*domain.Run, error) {
	for i := range m.runs {
		if m.runs[i].ID == runID {
			return &m.runs[i], nil
		}
	}
	return nil, nil
}

func (m *mockLedger) LookupStory(storyID string) (*domain.RunAssignment, error) {
	if len(m.runs) == 0 {
		return nil, nil
	}
	for _, a := range m.runs[0].Assignments {
		if a.StoryID == storyID {
			return &a, nil
		}
	}
	return nil, nil
}

type headingTitles struct{}

func (headingTitles) Title(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return ""
}

var errDiskFull = errors.New("disk full")

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

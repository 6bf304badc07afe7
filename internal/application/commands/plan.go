package commands

import (
	"context"

	"go.uber.org/zap"

	"storyseq/internal/domain"
	"storyseq/internal/ports"
)

// PlanManifest describes what a renumber run would do, without writing anything
type PlanManifest struct {
	PlanningDir string     `yaml:"planning_dir"`
	StartID     string     `yaml:"start_id"`
	LastID      string     `yaml:"last_id,omitempty"`
	Total       int        `yaml:"total"`
	Epics       []PlanEpic `yaml:"epics"`
	Skipped     []string   `yaml:"skipped,omitempty"`
}

// PlanEpic is one epic's entry in a PlanManifest
type PlanEpic struct {
	File        string           `yaml:"file"`
	Epic        string           `yaml:"epic"`
	Title       string           `yaml:"title,omitempty"`
	Changed     bool             `yaml:"changed"`
	Assignments []PlanAssignment `yaml:"assignments,omitempty"`
}

// PlanAssignment is one Story ID field that would be rewritten
type PlanAssignment struct {
	ID       string `yaml:"id"`
	Previous string `yaml:"previous"`
	Line     int    `yaml:"line"`
}

// PlanResult contains the result of a dry run
type PlanResult struct {
	domain.Result
	Manifest PlanManifest
}

// PlanCommand previews a renumber run
type PlanCommand struct {
	repo   ports.PlanningRepository
	titles ports.TitleReader
	logger *zap.Logger
}

// NewPlanCommand creates a new PlanCommand. titles may be nil.
func NewPlanCommand(repo ports.PlanningRepository, titles ports.TitleReader, logger *zap.Logger) *PlanCommand {
	return &PlanCommand{repo: repo, titles: titles, logger: logger}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) (*PlanResult, error) {
	loaded, err := NewLoadEpicsCommand(c.repo, c.logger).Execute(ctx)
	if err != nil {
		return nil, err
	}

	res := domain.Renumber(loaded.Epics, domain.StartStoryID)

	manifest := PlanManifest{
		PlanningDir: c.repo.Dir(),
		StartID:     domain.FormatStoryID(res.Start),
		Total:       res.Total(),
		Epics:       make([]PlanEpic, 0, len(res.Documents)),
	}
	if res.Total() > 0 {
		manifest.LastID = domain.FormatStoryID(res.LastID())
	}

	for _, doc := range res.Documents {
		entry := PlanEpic{
			File:    doc.Epic.Name,
			Epic:    domain.FormatStoryID(doc.Epic.Number),
			Changed: doc.Changed(),
		}
		if c.titles != nil {
			entry.Title = c.titles.Title(doc.Epic.Text)
		}
		for _, a := range doc.Assignments {
			entry.Assignments = append(entry.Assignments, PlanAssignment{
				ID:       a.ID(),
				Previous: a.Previous,
				Line:     a.Line,
			})
		}
		manifest.Epics = append(manifest.Epics, entry)
	}

	for _, doc := range loaded.Skipped {
		manifest.Skipped = append(manifest.Skipped, doc.Name)
	}

	return &PlanResult{Result: res, Manifest: manifest}, nil
}

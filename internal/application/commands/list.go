package commands

import (
	"context"

	"go.uber.org/zap"

	"storyseq/internal/domain"
	"storyseq/internal/ports"
)

// EpicSummary describes one candidate document for listing
type EpicSummary struct {
	File      string
	Path      string
	Number    int
	HasNumber bool // False for documents without an Epic ID line
	Title     string
	Stories   int // Story ID fields present in the document
}

// ListEpicsCommand lists candidate documents: ordered epics first, then skipped ones
type ListEpicsCommand struct {
	repo   ports.PlanningRepository
	titles ports.TitleReader
	logger *zap.Logger
}

// NewListEpicsCommand creates a new ListEpicsCommand. titles may be nil.
func NewListEpicsCommand(repo ports.PlanningRepository, titles ports.TitleReader, logger *zap.Logger) *ListEpicsCommand {
	return &ListEpicsCommand{repo: repo, titles: titles, logger: logger}
}

// Execute runs the list epics command
func (c *ListEpicsCommand) Execute(ctx context.Context) ([]EpicSummary, error) {
	loaded, err := NewLoadEpicsCommand(c.repo, c.logger).Execute(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]EpicSummary, 0, len(loaded.Epics)+len(loaded.Skipped))
	for _, epic := range loaded.Epics {
		s := c.summarize(epic.Document)
		s.Number = epic.Number
		s.HasNumber = true
		summaries = append(summaries, s)
	}
	for _, doc := range loaded.Skipped {
		summaries = append(summaries, c.summarize(doc))
	}

	return summaries, nil
}

func (c *ListEpicsCommand) summarize(doc domain.Document) EpicSummary {
	s := EpicSummary{
		File:    doc.Name,
		Path:    doc.Path,
		Stories: domain.CountStoryFields(doc.Text),
	}
	if c.titles != nil {
		s.Title = c.titles.Title(doc.Text)
	}
	return s
}

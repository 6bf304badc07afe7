package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storyseq/internal/application"
	"storyseq/internal/domain"
	"storyseq/internal/ports"
)

// LoadEpicsResult contains the ordered epics and the candidates that were skipped
type LoadEpicsResult struct {
	Epics   []domain.Epic
	Skipped []domain.Document
}

// LoadEpicsCommand discovers epic documents and orders them by epic number
type LoadEpicsCommand struct {
	repo   ports.PlanningRepository
	logger *zap.Logger
}

// NewLoadEpicsCommand creates a new LoadEpicsCommand
func NewLoadEpicsCommand(repo ports.PlanningRepository, logger *zap.Logger) *LoadEpicsCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoadEpicsCommand{repo: repo, logger: logger}
}

// Execute runs the load epics command
func (c *LoadEpicsCommand) Execute(ctx context.Context) (*LoadEpicsResult, error) {
	exists, err := c.repo.Exists()
	if err != nil {
		return nil, fmt.Errorf("failed to check planning directory: %w", err)
	}
	if !exists {
		return nil, &application.ConfigurationError{
			Path:   c.repo.Dir(),
			Reason: "could not find planning directory next to the executable",
		}
	}

	docs, err := c.repo.ListEpicDocuments()
	if err != nil {
		return nil, fmt.Errorf("failed to load epics: %w", err)
	}

	epics, skipped := domain.OrderEpics(docs)
	for _, doc := range skipped {
		c.logger.Debug("skipping document without Epic ID", zap.String("file", doc.Name))
	}

	return &LoadEpicsResult{Epics: epics, Skipped: skipped}, nil
}

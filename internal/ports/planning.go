package ports

import "storyseq/internal/domain"

// PlanningRepository defines the storage operations over a planning directory
type PlanningRepository interface {
	// Dir returns the planning directory path
	Dir() string

	// Exists reports whether the planning directory is present
	Exists() (bool, error)

	// ListEpicDocuments reads every EPIC_*.md file in the directory
	// (non-recursive), in lexical file-name order
	ListEpicDocuments() ([]domain.Document, error)

	// WriteDocument replaces the content of a document in place
	WriteDocument(path, content string) error
}

// TitleReader extracts a human-readable title from document text
type TitleReader interface {
	// Title returns the first level-1 heading, or "" if there is none
	Title(text string) string
}

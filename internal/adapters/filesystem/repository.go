package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"storyseq/internal/config"
	"storyseq/internal/domain"
	"storyseq/internal/ports"
)

// Repository implements ports.PlanningRepository using the filesystem
type Repository struct {
	planningDir string
}

// Ensure Repository implements PlanningRepository
var _ ports.PlanningRepository = (*Repository)(nil)

// NewRepository creates a new filesystem repository for a planning directory
func NewRepository(planningDir string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(planningDir, "~") {
		home, _ := os.UserHomeDir()
		planningDir = filepath.Join(home, planningDir[1:])
	}
	return &Repository{planningDir: planningDir}
}

// Dir returns the planning directory path
func (r *Repository) Dir() string {
	return r.planningDir
}

// Exists reports whether the planning directory is present
func (r *Repository) Exists() (bool, error) {
	info, err := os.Stat(r.planningDir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat planning directory: %w", err)
	}
	return info.IsDir(), nil
}

// ListEpicDocuments reads every EPIC_*.md file directly inside the planning directory
func (r *Repository) ListEpicDocuments() ([]domain.Document, error) {
	entries, err := os.ReadDir(r.planningDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read planning directory: %w", err)
	}

	var docs []domain.Document
	for _, entry := range entries {
		if !isEpicFile(entry) {
			continue
		}

		path := filepath.Join(r.planningDir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		docs = append(docs, domain.Document{
			Name: entry.Name(),
			Path: path,
			Text: string(content),
		})
	}

	// ReadDir already sorts by name; keep the order explicit for ties
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Name < docs[j].Name
	})

	return docs, nil
}

// WriteDocument replaces the content of a document, keeping its permissions
func (r *Repository) WriteDocument(path, content string) error {
	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// isEpicFile reports whether a directory entry is a candidate epic document
func isEpicFile(entry fs.DirEntry) bool {
	if entry.IsDir() {
		return false
	}
	name := entry.Name()
	return strings.HasPrefix(name, config.EpicPrefix) && strings.HasSuffix(name, config.EpicExt)
}

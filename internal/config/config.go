package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// PlanningDirName is the directory holding the epic documents, next to the executable
	PlanningDirName = "planning"
	// EpicPrefix and EpicExt select candidate documents inside the planning directory
	EpicPrefix = "EPIC_"
	EpicExt    = ".md"
)

// Root returns the directory containing the running executable,
// with symlinks resolved.
func Root() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// PlanningDir returns the planning directory under root
func PlanningDir(root string) string {
	return filepath.Join(root, PlanningDirName)
}

// DefaultRoot returns Root, falling back to the working directory
// when the executable cannot be located. Used as a flag default.
func DefaultRoot() string {
	if root, err := Root(); err == nil {
		return root
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

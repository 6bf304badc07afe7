package ports

import "os/exec"

// EditorOpener builds the command that opens an epic in an external editor
type EditorOpener interface {
	// Command returns an exec.Cmd for bubbletea's ExecProcess.
	// It uses $EDITOR or $VISUAL, falling back to common editors.
	Command(path string) (*exec.Cmd, error)
}

package views

import "storyseq/internal/application/commands"

// SwitchToPreviewMsg returns to the preview, reloading the plan
type SwitchToPreviewMsg struct{}

// SwitchToConfirmMsg opens the apply confirmation for the current plan
type SwitchToConfirmMsg struct {
	Plan *commands.PlanResult
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// OpenEditorMsg asks the app to open a file in the external editor
type OpenEditorMsg struct {
	Path string
}

// RenumberDoneMsg reports a completed renumber run
type RenumberDoneMsg struct {
	Result *commands.RenumberResult
}

// RenumberErrMsg reports a failed renumber run
type RenumberErrMsg struct {
	Err error
}

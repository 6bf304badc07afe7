package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"storyseq/internal/adapters/tui/views"
	"storyseq/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPreview ViewState = iota
	ViewConfirm
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state   ViewState
	preview *views.PreviewModel
	confirm *views.ConfirmationModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. ledger and ed may be nil.
func NewApp(repo ports.PlanningRepository, titles ports.TitleReader, ledger ports.RunLedger, ed ports.EditorOpener, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		editor:  ed,
		state:   ViewPreview,
		preview: views.NewPreviewModel(repo, titles, logger),
		confirm: views.NewConfirmationModel(repo, ledger, logger),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.preview.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.preview.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPreviewMsg:
		a.state = ViewPreview
		return a, a.preview.Reload()

	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetPlan(msg.Plan)
		return a, a.confirm.Init()

	case views.RenumberDoneMsg:
		a.state = ViewPreview
		a.preview.SetMessage(msg.Result.Summary, false)
		return a, a.preview.Reload()

	case views.RenumberErrMsg:
		a.state = ViewPreview
		a.preview.SetMessage(msg.Err.Error(), true)
		return a, a.preview.Reload()

	case views.OpenEditorMsg:
		a.state = ViewPreview
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.preview.SetMessage(msg.err.Error(), true)
		}
		return a, a.preview.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPreview:
		_, cmd = a.preview.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.preview.View()
	}
}

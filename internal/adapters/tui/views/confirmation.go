package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"storyseq/internal/adapters/tui/styles"
	"storyseq/internal/application/commands"
	"storyseq/internal/ports"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel asks before applying a full renumber run
type ConfirmationModel struct {
	ViewState
	Keys ConfirmKeyMap

	repo   ports.PlanningRepository
	ledger ports.RunLedger
	logger *zap.Logger

	plan    *commands.PlanResult
	running bool
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel(repo ports.PlanningRepository, ledger ports.RunLedger, logger *zap.Logger) *ConfirmationModel {
	return &ConfirmationModel{
		Keys:   DefaultConfirmKeys,
		repo:   repo,
		ledger: ledger,
		logger: logger,
	}
}

// SetPlan sets the plan being confirmed
func (m *ConfirmationModel) SetPlan(plan *commands.PlanResult) {
	m.plan = plan
	m.running = false
	m.ClearMessage()
}

// Init initializes the confirmation view
func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.running {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Cancel):
		return m, func() tea.Msg { return SwitchToPreviewMsg{} }
	case key.Matches(keyMsg, m.Keys.Confirm):
		m.running = true
		return m, m.apply()
	}
	return m, nil
}

// apply runs the renumber against the current disk state, not the cached plan
func (m *ConfirmationModel) apply() tea.Cmd {
	repo, ledger, logger := m.repo, m.ledger, m.logger
	return func() tea.Msg {
		res, err := commands.NewRenumberCommand(repo, ledger, logger).Execute(context.Background())
		if err != nil {
			return RenumberErrMsg{Err: err}
		}
		return RenumberDoneMsg{Result: res}
	}
}

// View renders the confirmation view
func (m *ConfirmationModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Apply renumber"))
	b.WriteString("\n\n")

	if m.plan != nil {
		changed := 0
		for _, doc := range m.plan.Documents {
			if doc.Changed() {
				changed++
			}
		}
		b.WriteString(styles.InputLabel.Render("Planning directory:"))
		b.WriteString("\n  ")
		b.WriteString(m.plan.Manifest.PlanningDir)
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  %d Story ID field(s) in %d epic(s), %d file(s) will change\n",
			m.plan.Total(), len(m.plan.Documents), changed))
		if m.plan.Total() > 0 {
			b.WriteString(fmt.Sprintf("  %s..%s\n", m.plan.Manifest.StartID, m.plan.Manifest.LastID))
		}
		b.WriteString("\n")
	}

	if m.running {
		b.WriteString(styles.MutedText.Render("Renumbering..."))
	} else {
		b.WriteString(RenderConfirmPrompt("Rewrite all epics?"))
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(msg)
	}

	return styles.App.Render(b.String())
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

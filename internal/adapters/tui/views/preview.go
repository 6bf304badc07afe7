package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"storyseq/internal/adapters/tui/styles"
	"storyseq/internal/application/commands"
	"storyseq/internal/domain"
	"storyseq/internal/ports"
)

// PreviewKeyMap defines key bindings for the preview view
type PreviewKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Apply  key.Binding
	Copy   key.Binding
	Edit   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var PreviewKeys = PreviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy summary"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PreviewModel lists the epics in processing order and the Story IDs
// each one would receive
type PreviewModel struct {
	ViewState
	repo   ports.PlanningRepository
	titles ports.TitleReader
	logger *zap.Logger

	plan     *commands.PlanResult
	cursor   int
	pane     viewport.Model
	copyText func(string) error
}

// NewPreviewModel creates a new preview model
func NewPreviewModel(repo ports.PlanningRepository, titles ports.TitleReader, logger *zap.Logger) *PreviewModel {
	return &PreviewModel{
		repo:     repo,
		titles:   titles,
		logger:   logger,
		pane:     viewport.New(60, 10),
		copyText: clipboard.WriteAll,
	}
}

type planLoadedMsg struct {
	plan *commands.PlanResult
}

type planErrMsg struct {
	err error
}

// Init loads the plan
func (m *PreviewModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload returns a command that recomputes the plan from disk
func (m *PreviewModel) Reload() tea.Cmd {
	return func() tea.Msg {
		plan, err := commands.NewPlanCommand(m.repo, m.titles, m.logger).Execute(context.Background())
		if err != nil {
			return planErrMsg{err}
		}
		return planLoadedMsg{plan}
	}
}

// SetSize updates the view dimensions and the assignment pane
func (m *PreviewModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pane.Width = max(width/2-4, 20)
	m.pane.Height = max(height-10, 5)
	m.refreshPane()
}

// Update handles messages for the preview
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case planLoadedMsg:
		m.plan = msg.plan
		if m.cursor >= len(m.plan.Documents) {
			m.cursor = max(len(m.plan.Documents)-1, 0)
		}
		m.refreshPane()
		return m, nil

	case planErrMsg:
		m.plan = nil
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, PreviewKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PreviewKeys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refreshPane()
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Down):
			if m.plan != nil && m.cursor < len(m.plan.Documents)-1 {
				m.cursor++
				m.refreshPane()
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Apply):
			if m.plan == nil {
				return m, nil
			}
			if m.plan.Total() == 0 {
				m.SetMessage("Nothing to renumber", false)
				return m, nil
			}
			plan := m.plan
			return m, func() tea.Msg { return SwitchToConfirmMsg{Plan: plan} }

		case key.Matches(msg, PreviewKeys.Copy):
			if m.plan == nil {
				return m, nil
			}
			summary := m.plan.SummaryLine()
			if err := m.copyText(summary); err != nil {
				m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.SetMessage("Copied: "+summary, false)
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Edit):
			if doc := m.selected(); doc != nil {
				path := doc.Epic.Path
				return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, PreviewKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	var cmd tea.Cmd
	m.pane, cmd = m.pane.Update(msg)
	return m, cmd
}

// selected returns the epic under the cursor, or nil
func (m *PreviewModel) selected() *domain.DocumentResult {
	if m.plan == nil || m.cursor < 0 || m.cursor >= len(m.plan.Documents) {
		return nil
	}
	return &m.plan.Documents[m.cursor]
}

func (m *PreviewModel) refreshPane() {
	doc := m.selected()
	if doc == nil {
		m.pane.SetContent("")
		return
	}
	if len(doc.Assignments) == 0 {
		m.pane.SetContent(styles.MutedText.Render("No Story ID fields"))
		return
	}

	var b strings.Builder
	for _, a := range doc.Assignments {
		b.WriteString(styles.LineNumber.Render(fmt.Sprintf("%4d ", a.Line)))
		b.WriteString(styles.PreviousID.Render(a.Previous))
		b.WriteString(" → ")
		b.WriteString(styles.AssignedID.Render(a.ID()))
		b.WriteString("\n")
	}
	m.pane.SetContent(b.String())
	m.pane.GotoTop()
}

// View renders the preview
func (m *PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("storyseq"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.repo.Dir()))
	b.WriteString("\n\n")

	if m.plan != nil {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderEpics(), "  ", styles.Pane.Render(m.pane.View())))
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render(m.plan.SummaryLine()))
		if len(m.plan.Manifest.Skipped) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.WarningMsg.Render(fmt.Sprintf("Skipped (no Epic ID): %s", strings.Join(m.plan.Manifest.Skipped, ", "))))
		}
		b.WriteString("\n")
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHelpBar(PreviewKeys.Up, PreviewKeys.Down, PreviewKeys.Apply, PreviewKeys.Copy, PreviewKeys.Edit, PreviewKeys.Help, PreviewKeys.Quit))

	return styles.App.Render(b.String())
}

func (m *PreviewModel) renderEpics() string {
	if len(m.plan.Documents) == 0 {
		return styles.MutedText.Render("No epics found")
	}

	var b strings.Builder
	for i, doc := range m.plan.Documents {
		entry := m.plan.Manifest.Epics[i]
		epic := fmt.Sprintf("%-6s ", entry.Epic)
		line := fmt.Sprintf("%-24s %d", doc.Epic.Name, doc.Replacements())
		if entry.Title != "" {
			line += "  " + entry.Title
		}

		switch {
		case i == m.cursor:
			b.WriteString(styles.EpicSelected.Render(epic + line))
		case !doc.Changed():
			b.WriteString(styles.EpicUnchanged.Render(epic + line))
		default:
			b.WriteString(styles.EpicNumber.Render(epic) + styles.EpicFile.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"storyseq/internal/adapters/tui/styles"
	"storyseq/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

var scrollKeys = key.NewBinding(
	key.WithKeys("pgup", "pgdown"),
	key.WithHelp("pgup/pgdn", "scroll assignments"),
)

// helpSection groups the bindings shown under one heading
type helpSection struct {
	title    string
	bindings []key.Binding
}

// helpSections follows the workflow: inspect the preview, then apply
func helpSections() []helpSection {
	return []helpSection{
		{"Preview", []key.Binding{PreviewKeys.Up, PreviewKeys.Down, scrollKeys, PreviewKeys.Edit, PreviewKeys.Reload, PreviewKeys.Copy}},
		{"Apply", []key.Binding{PreviewKeys.Apply, DefaultConfirmKeys.Confirm, DefaultConfirmKeys.Cancel}},
		{"General", []key.Binding{PreviewKeys.Help, PreviewKeys.Quit}},
	}
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPreviewMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("storyseq"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf(
		"Story IDs are assigned from %s in Epic ID order; the preview never writes.",
		domain.FormatStoryID(domain.StartStoryID))))
	b.WriteString("\n\n")

	width := 0
	for _, s := range helpSections() {
		for _, kb := range s.bindings {
			width = max(width, len(kb.Help().Key))
		}
	}

	for _, s := range helpSections() {
		b.WriteString(styles.InputLabel.Render(s.title))
		b.WriteString("\n")
		for _, kb := range s.bindings {
			h := kb.Help()
			fmt.Fprintf(&b, "  %s  %s\n",
				styles.HelpKey.Render(fmt.Sprintf("%-*s", width, h.Key)),
				styles.HelpDesc.Render(h.Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedText.Render("Files without an **Epic ID** line are listed as skipped and left untouched."))
	b.WriteString("\n\n")
	b.WriteString(renderHelpBar(HelpKeys.Close))

	return styles.App.Render(b.String())
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

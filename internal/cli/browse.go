package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tfauvel/diptrack/internal/cli/formatter"
	"github.com/tfauvel/diptrack/internal/domain"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse proposals interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("browse requires an interactive terminal")
			}
			_, err := tea.NewProgram(newBrowseModel(app), tea.WithAltScreen()).Run()
			return err
		},
	}
}

// proposalsLoadedMsg signals that proposal list data has been loaded.
type proposalsLoadedMsg struct {
	proposals []*domain.Proposal
	err       error
}

// browseModel shows an interactive, navigable list of proposals with text
// and status filtering, and an inline inspect pane.
type browseModel struct {
	app       *App
	proposals []*domain.Proposal
	cursor    int
	loading   bool
	err       error

	// Text filtering
	filtering bool
	filter    string

	// Status filtering: -1 means all, otherwise an index into
	// domain.AllStatuses.
	statusIdx int

	// Inspect pane
	inspecting *domain.Proposal
}

func newBrowseModel(app *App) *browseModel {
	return &browseModel{app: app, loading: true, statusIdx: -1}
}

func (m *browseModel) keyBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "inspect")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadProposals()
}

func (m *browseModel) loadProposals() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		proposals, err := app.Registry.List(context.Background())
		return proposalsLoadedMsg{proposals: proposals, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case proposalsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.proposals = msg.proposals
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.inspecting != nil {
			return m.updateInspect(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *browseModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleProposals()

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(visible) {
			m.inspecting = visible[m.cursor]
		}
	case "/":
		m.filtering = true
		m.filter = ""
	case "s":
		m.statusIdx++
		if m.statusIdx >= len(domain.AllStatuses) {
			m.statusIdx = -1
		}
		m.cursor = 0
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		return m, nil
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.cursor = 0
		}
	default:
		if len(msg.String()) == 1 {
			m.filter += msg.String()
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *browseModel) updateInspect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.inspecting = nil
	}
	return m, nil
}

func (m *browseModel) visibleProposals() []*domain.Proposal {
	out := m.proposals
	if m.statusIdx >= 0 {
		want := domain.AllStatuses[m.statusIdx]
		var filtered []*domain.Proposal
		for _, p := range out {
			if p.Status == want {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	if m.filter == "" {
		return out
	}
	lf := strings.ToLower(m.filter)
	var filtered []*domain.Proposal
	for _, p := range out {
		if strings.Contains(strings.ToLower(p.Title), lf) ||
			strings.Contains(strings.ToLower(p.Author), lf) ||
			strings.Contains(strconv.Itoa(p.DIP), lf) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (m *browseModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading proposals...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}
	if m.inspecting != nil {
		return "\n" + formatter.FormatProposalInspect(m.inspecting, 16) +
			"\n  " + formatter.Dim("esc to go back")
	}

	visible := m.visibleProposals()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Proposals") + "\n")

	if m.statusIdx >= 0 {
		b.WriteString("  " + formatter.Dim("showing:") + " " +
			formatter.StatusPill(domain.AllStatuses[m.statusIdx]) + "\n")
	}
	if m.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + m.filter + "█\n")
	}
	b.WriteString("\n")

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No proposals match.") + "\n")
	}

	for i, p := range visible {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%-6s %s  %s\n",
			cursor,
			formatter.StyleGreen.Render(strconv.Itoa(p.DIP)),
			titleStyle.Render(padRight(p.Title, 42)),
			formatter.StatusPill(p.Status),
		))
	}

	b.WriteString("\n  ")
	var help []string
	for _, kb := range m.keyBindings() {
		help = append(help, kb.Help().Key+" "+kb.Help().Desc)
	}
	b.WriteString(formatter.Dim(strings.Join(help, " · ")))

	return b.String()
}

// padRight pads a string to a minimum width, truncating if needed. Width
// is counted in runes so multi-byte titles stay valid UTF-8.
func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

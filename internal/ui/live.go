package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/search"
)

// reloadMsg signals that the content directory changed on disk.
type reloadMsg struct{}

// LiveModel is the bubbletea model for interactive search. Every keystroke
// re-runs the search; the engine does no debouncing of its own, and with an
// index in the low thousands of entries a full scan per keystroke is cheap.
type LiveModel struct {
	session *search.Session
	input   textinput.Model
	styles  Styles

	results  []search.Result
	selected int
	width    int

	reloads  <-chan struct{}
	reloadFn func() error
	status   string

	chosen   string
	quitting bool
}

// NewLive creates a live-search model. reloads and reloadFn are optional; when
// set, a value on reloads triggers reloadFn and a re-run of the current query.
func NewLive(session *search.Session, reloads <-chan struct{}, reloadFn func() error) *LiveModel {
	ti := textinput.New()
	ti.Placeholder = "search lectures, sections, assignments..."
	ti.Prompt = "› "
	ti.Focus()

	return &LiveModel{
		session:  session,
		input:    ti,
		styles:   DefaultStyles(),
		reloads:  reloads,
		reloadFn: reloadFn,
		width:    80,
	}
}

// ChosenRoute returns the route selected with enter, or "" if none.
func (m *LiveModel) ChosenRoute() string {
	return m.chosen
}

// Init implements tea.Model.
func (m *LiveModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForReload())
}

// waitForReload blocks on the watcher channel and converts notifications into
// bubbletea messages.
func (m *LiveModel) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		<-ch
		return reloadMsg{}
	}
}

// Update implements tea.Model.
func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if len(m.results) > 0 {
				m.chosen = m.results[m.selected].Route
			}
			m.quitting = true
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.results)-1 {
				m.selected++
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case reloadMsg:
		if m.reloadFn != nil {
			if err := m.reloadFn(); err != nil {
				m.status = "reload failed: " + err.Error()
			} else {
				m.status = fmt.Sprintf("content reloaded (%d entries)", m.session.TotalIndexed())
				m.search()
			}
		}
		return m, m.waitForReload()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.search()
	return m, cmd
}

// search re-runs the current query and clamps the selection.
func (m *LiveModel) search() {
	m.results = m.session.Search(m.input.Value())
	if m.selected >= len(m.results) {
		m.selected = 0
	}
}

// View implements tea.Model.
func (m *LiveModel) View() string {
	if m.quitting {
		if m.chosen != "" {
			return m.chosen + "\n"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("CS111 Course Search"))
	b.WriteString(m.styles.Dim.Render(fmt.Sprintf("  %d entries indexed", m.session.TotalIndexed())))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.input.Value() == "":
		b.WriteString(m.styles.Dim.Render("Type to search."))
		b.WriteString("\n")
	case len(m.results) == 0:
		b.WriteString(m.styles.Dim.Render("No results."))
		b.WriteString("\n")
	default:
		for i, r := range m.results {
			title := r.LectureTitle
			if r.SectionTitle != "" {
				title += " › " + r.SectionTitle
			}

			cursor := "  "
			titleStyle := m.styles.Title
			if i == m.selected {
				cursor = m.styles.Selected.Render("> ")
				titleStyle = m.styles.Selected
			}

			fmt.Fprintf(&b, "%s%s %s %s\n",
				cursor,
				titleStyle.Render(title),
				m.styles.Kind.Render("["+string(r.Kind)+"]"),
				m.styles.Score.Render(fmt.Sprintf("%d", r.Score)))
			if r.Preview != "" {
				fmt.Fprintf(&b, "    %s\n", m.styles.Preview.Render(clip(r.Preview, m.width-6)))
			}
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Dim.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Dim.Render("↑/↓ select · enter open · esc quit"))
	b.WriteString("\n")
	return b.String()
}

// clip truncates s to at most n runes.
func clip(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

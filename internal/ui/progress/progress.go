// Package progress provides a Bubble Tea terminal view of a running batch.
//
// One line per account, updating live as its pipeline moves through
// authentication, resolution, submission and tracking. The view quits on
// its own once every pipeline is terminal.
package progress

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/atmoctl/internal/launch"
)

// EventMsg carries one pipeline event into the view.
type EventMsg struct {
	Event launch.Event
}

// DoneMsg signals that the whole batch finished.
type DoneMsg struct{}

// row is the display state of one account.
type row struct {
	username       string
	stage          launch.Stage
	state          launch.State
	classification launch.Classification
	err            error
}

// Model is the Bubble Tea model for a batch run.
type Model struct {
	title string
	order []string
	rows  map[string]*row
	done  int
	quit  bool
}

// NewModel creates a model with one pending row per account, in batch order.
func NewModel(title string, usernames []string) Model {
	rows := make(map[string]*row, len(usernames))
	for _, username := range usernames {
		rows[username] = &row{username: username}
	}
	return Model{
		title: title,
		order: usernames,
		rows:  rows,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		m.apply(msg.Event)
		return m, nil
	case DoneMsg:
		m.quit = true
		return m, tea.Quit
	case tea.KeyMsg:
		// The batch keeps running server-side regardless; ctrl+c only
		// abandons the view.
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) apply(event launch.Event) {
	r, ok := m.rows[event.Username]
	if !ok {
		return
	}
	r.stage = event.Stage
	r.state = event.State
	if event.Outcome != nil {
		r.classification = event.Outcome.Classification
		r.err = event.Outcome.Err
		m.done++
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  " + m.title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 40)))
	b.WriteString("\n")

	for _, username := range m.order {
		b.WriteString(m.renderRow(m.rows[username]))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(fmt.Sprintf("  %d/%d accounts finished", m.done, len(m.order))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderRow(r *row) string {
	switch {
	case r.classification == launch.ClassSucceeded:
		return fmt.Sprintf("  %s %-20s %s", okStyle.Render(checkMark), r.username, okStyle.Render("active"))
	case r.classification.Failed() && r.classification != "":
		detail := string(r.classification)
		if r.err != nil {
			detail = fmt.Sprintf("%s: %v", r.classification, r.err)
		}
		return fmt.Sprintf("  %s %-20s %s", failedStyle.Render(crossMark), r.username, failedStyle.Render(detail))
	case r.stage == "":
		return fmt.Sprintf("  %s %-20s %s", dimStyle.Render(working), r.username, dimStyle.Render("pending"))
	case r.stage == launch.StageTracking && r.state != "":
		return fmt.Sprintf("  %s %-20s %s", activeStyle.Render(working), r.username,
			activeStyle.Render(fmt.Sprintf("tracking (%s)", r.state)))
	default:
		return fmt.Sprintf("  %s %-20s %s", activeStyle.Render(working), r.username, activeStyle.Render(string(r.stage)))
	}
}

// Observer returns a launch.Observer that feeds events into the program.
func Observer(p *tea.Program) launch.Observer {
	return launch.FuncObserver(func(event launch.Event) {
		p.Send(EventMsg{Event: event})
	})
}

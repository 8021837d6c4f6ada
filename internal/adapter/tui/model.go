// Package tui is a terminal front end for one search controller.
// It renders the controller's state and forwards key presses to it; it holds no search state of its own.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/airfare-routefinder/route-finder/internal/domain"
	"github.com/airfare-routefinder/route-finder/internal/usecase"
)

// field is a focusable form row
type field int

const (
	fieldFrom field = iota
	fieldTo
	fieldRank
	fieldCount
)

// SettledMsg is delivered when a search started by the model settles.
type SettledMsg struct {
	Result domain.SearchResult
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Search key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "tab"),
		key.WithHelp("↓/j", "down"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	Search: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the Bubble Tea model of the search form.
type Model struct {
	ctx  context.Context
	ctrl *usecase.SearchController

	// options is "" (no selection) followed by the catalog names
	options []string

	focus    field
	spinner  spinner.Model
	width    int
	quitting bool
}

// NewModel creates a model driving ctrl. Lookups run under ctx.
func NewModel(ctx context.Context, ctrl *usecase.SearchController) Model {
	cities := ctrl.Cities()
	options := make([]string, 0, len(cities)+1)
	options = append(options, "")
	for _, c := range cities {
		options = append(options, c.Name)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = progressStyle

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		options: options,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SettledMsg:
		// the view reads the controller; a superseded search changes nothing visible
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Result().State() != domain.StatePending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.ctrl.Close()
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.focus = (m.focus + fieldCount - 1) % fieldCount

	case key.Matches(msg, keys.Down):
		m.focus = (m.focus + 1) % fieldCount

	case key.Matches(msg, keys.Prev):
		m.cycle(-1)

	case key.Matches(msg, keys.Next):
		m.cycle(1)

	case key.Matches(msg, keys.Reset):
		m.ctrl.Reset()

	case key.Matches(msg, keys.Search):
		return m, m.search()
	}
	return m, nil
}

// cycle moves the focused field to its previous or next value.
func (m Model) cycle(step int) {
	q := m.ctrl.Query()
	switch m.focus {
	case fieldFrom:
		m.ctrl.SetFromCity(m.step(q.FromCity, step))
	case fieldTo:
		m.ctrl.SetToCity(m.step(q.ToCity, step))
	case fieldRank:
		next := domain.RankByCheapest
		if q.RankBy == domain.RankByCheapest {
			next = domain.RankByFastest
		}
		_ = m.ctrl.SetRankBy(next)
	}
}

// step returns the option step places away from current, wrapping around.
// A value outside the options moves to the first or last option.
func (m Model) step(current string, step int) string {
	idx := -1
	for i, o := range m.options {
		if o == current {
			idx = i
			break
		}
	}
	n := len(m.options)
	if idx < 0 {
		if step > 0 {
			return m.options[0]
		}
		return m.options[n-1]
	}
	return m.options[((idx+step)%n+n)%n]
}

// search starts a lookup and returns the commands that wait for it.
func (m Model) search() tea.Cmd {
	state, settled := m.ctrl.Start(m.ctx)

	wait := func() tea.Msg {
		return SettledMsg{Result: <-settled}
	}
	if state.Result.State() != domain.StatePending {
		return wait
	}
	return tea.Batch(wait, m.spinner.Tick)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.ctrl.Snapshot()

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("✈ Airfare Route Finder"))
	sb.WriteString("\n")
	sb.WriteString(m.renderRow(fieldFrom, "From", state.Query.FromCity))
	sb.WriteString(m.renderRow(fieldTo, "To", state.Query.ToCity))
	sb.WriteString(m.renderRow(fieldRank, "Rank", state.Query.RankBy.String()))
	sb.WriteString("\n")
	sb.WriteString(m.renderResult(state.Result))

	help := helpStyle.Render("↑/↓ field • ←/→ change • enter search • r reset • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, boxStyle.Render(sb.String()), help)
}

func (m Model) renderRow(f field, label, value string) string {
	cursor := "  "
	if m.focus == f {
		cursor = focusedStyle.Render("▸ ")
	}

	rendered := valueStyle.Render(value)
	if value == "" {
		rendered = placeholderStyle.Render("select a city")
	}
	return cursor + labelStyle.Render(label) + rendered + "\n"
}

func (m Model) renderResult(result domain.SearchResult) string {
	switch r := result.(type) {
	case domain.Pending:
		return m.spinner.View() + " Searching..."
	case domain.Failed:
		out := errorStyle.Render(r.Message)
		if r.Hint != "" {
			out += "\n" + hintStyle.Render(r.Hint)
		}
		return out
	case domain.NoMatches:
		return hintStyle.Render(RenderPlain(r))
	case domain.Found:
		lines := make([]string, 0, len(r.Connections))
		for _, c := range r.Connections {
			lines = append(lines, c.FromCity+" → "+c.ToCity+"  "+FormatDuration(c.DurationHours)+"  "+fareStyle.Render(FormatAirfare(c.Airfare)))
		}
		return strings.Join(lines, "\n")
	default:
		return hintStyle.Render("Pick two cities and press enter.")
	}
}

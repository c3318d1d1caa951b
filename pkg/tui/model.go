// Package tui is the interactive terminal browser for the roster.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/model"
)

const defaultListHeight = 20

type selectedMsg struct {
	number int
	state  dex.ViewState
	err    error
}

type Model struct {
	ctx     context.Context
	session *dex.Session
	styles  Styles

	input   textinput.Model
	listing []model.Listing
	cursor  int
	offset  int

	width  int
	height int
	status string
	failed bool
}

func New(ctx context.Context, session *dex.Session) Model {
	input := textinput.New()
	input.Placeholder = "search by name or number"
	input.Prompt = "🔍 "
	input.SetValue(session.State().Search)
	input.Focus()

	return Model{
		ctx:     ctx,
		session: session,
		styles:  DefaultStyles(),
		input:   input,
		listing: session.Listing(),
		height:  defaultListHeight + 5,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) listHeight() int {
	return max(m.height-5, 1)
}

func (m *Model) refresh() {
	m.listing = m.session.Listing()
	m.cursor = 0
	m.offset = 0
}

func (m *Model) move(delta int) {
	if len(m.listing) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.listing)-1)

	switch {
	case m.cursor < m.offset:
		m.offset = m.cursor
	case m.cursor >= m.offset+m.listHeight():
		m.offset = m.cursor - m.listHeight() + 1
	}
}

func (m Model) selectCmd(number int) tea.Cmd {
	return func() tea.Msg {
		state, err := m.session.Select(m.ctx, number)
		return selectedMsg{number: number, state: state, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.move(0)
		return m, nil

	case selectedMsg:
		switch {
		case errors.Is(msg.err, dex.ErrStale):
			// a newer selection owns the status line
		case msg.err != nil:
			m.status = fmt.Sprintf("could not load #%d", msg.number)
			m.failed = true
		default:
			m.status = ""
			m.failed = false
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			m.move(-1)
			return m, nil
		case tea.KeyDown:
			m.move(1)
			return m, nil
		case tea.KeyPgUp:
			m.move(-m.listHeight())
			return m, nil
		case tea.KeyPgDown:
			m.move(m.listHeight())
			return m, nil
		case tea.KeyTab:
			m.session.ToggleSort()
			m.refresh()
			return m, nil
		case tea.KeyEnter:
			if len(m.listing) == 0 {
				return m, nil
			}
			number := m.listing[m.cursor].Number
			m.status = fmt.Sprintf("loading #%d…", number)
			m.failed = false
			return m, m.selectCmd(number)
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.session.Search(value)
		m.refresh()
	}

	return m, cmd
}

func (m Model) viewList() string {
	var sb strings.Builder

	if len(m.listing) == 0 {
		sb.WriteString(m.styles.Muted.Render("no matches"))
		return sb.String()
	}

	end := min(m.offset+m.listHeight(), len(m.listing))
	for i := m.offset; i < end; i++ {
		l := m.listing[i]
		number := m.styles.Number.Render(fmt.Sprintf("#%03d", l.Number))
		if i == m.cursor {
			sb.WriteString(m.styles.Cursor.Render("▸ ") + number + " " + m.styles.Cursor.Render(l.Entry.Name))
		} else {
			sb.WriteString("  " + number + " " + m.styles.Row.Render(l.Entry.Name))
		}
		if i < end-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m Model) View() string {
	state := m.session.State()

	header := fmt.Sprintf("%s  %s  %s",
		m.styles.Title.Render("Pokédex"),
		m.styles.Muted.Render(fmt.Sprintf("%d/%d", len(m.listing), len(m.session.Catalog().Roster()))),
		m.styles.Muted.Render("sort: "+state.Sort.String()+" (tab)"),
	)

	detail := m.styles.Muted.Render("press enter to view an entry")
	if state.Card != nil {
		detail = renderCard(m.styles, state.Card)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Pane.Render(m.viewList()),
		m.styles.Pane.Render(detail),
	)

	footer := m.styles.Muted.Render("↑/↓ move • enter select • tab sort • esc quit")
	switch {
	case m.failed:
		footer = m.styles.Error.Render(m.status)
	case m.status != "":
		footer = m.styles.Muted.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.input.View(), body, footer)
}

// Package tui provides the Bubble Tea fretboard explorer.
package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/frets/internal/fretboard"
	"github.com/verte-zerg/frets/internal/model"
	"github.com/verte-zerg/frets/internal/theory"
)

const (
	panelGap        = 3
	chordTableWidth = 31
)

// Model implements the Bubble Tea fretboard UI.
type Model struct {
	sel  model.Selection
	grid fretboard.Grid

	chords   table.Model
	board    viewport.Model
	keys     keyMap
	help     help.Model
	hovering bool

	width  int
	height int
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#4A4A4A")).
	Padding(0, 1)

var activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))

// NewModel constructs the fretboard TUI with the startup selection.
func NewModel(cfg model.Config) *Model {
	keys := newKeyMap()
	m := &Model{
		sel:   model.NewSelection(cfg),
		keys:  keys,
		help:  help.New(),
		board: viewport.New(0, 0),
	}
	m.board.KeyMap = viewport.KeyMap{Up: keys.ScrollUp, Down: keys.ScrollDown}
	m.chords = table.New(
		table.WithColumns(chordColumns()),
		table.WithRows(chordRows(m.sel.Key)),
		table.WithStyles(chordTableStyles()),
		table.WithFocused(true),
		table.WithWidth(chordTableWidth),
		table.WithHeight(chordTableHeight(m.sel.Key)),
		table.WithKeyMap(chordTableKeys(keys)),
	)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Selection returns the current presentation state.
func (m *Model) Selection() model.Selection {
	return m.sel
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextKey):
		m.changeKey(m.sel.Key.Next())
	case key.Matches(msg, m.keys.PrevKey):
		m.changeKey(m.sel.Key.Prev())
	case key.Matches(msg, m.keys.ToggleDegrees):
		m.setSelection(m.sel.ToggleDegrees())
	case key.Matches(msg, m.keys.TogglePenta):
		m.setSelection(m.sel.TogglePentatonic())
	case key.Matches(msg, m.keys.ClearChord):
		m.hovering = false
		m.setSelection(m.sel.WithChord(""))
	case key.Matches(msg, m.keys.HighlightChord):
		m.hoverCursor()
	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateLayout()
	case isChordNav(msg, m.chords.KeyMap):
		var cmd tea.Cmd
		m.chords, cmd = m.chords.Update(msg)
		m.hoverCursor()
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	board := renderBoard(m.grid)
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		body := lipgloss.JoinHorizontal(lipgloss.Top, board, strings.Repeat(" ", panelGap), m.renderPanel())
		return body + "\n" + footer
	}
	footerHeight := lipgloss.Height(footer)
	bodyHeight := maxInt(1, m.height-footerHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.board.View(), strings.Repeat(" ", panelGap), m.renderPanel())
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, body)
	return fitLines(body, m.width, bodyHeight) + "\n" + fitLines(footer, m.width, footerHeight)
}

// changeKey switches key, which also clears the chord and resets the list.
func (m *Model) changeKey(k theory.Key) {
	m.hovering = false
	m.chords.SetRows(chordRows(k))
	m.chords.SetHeight(chordTableHeight(k))
	m.chords.SetCursor(0)
	m.setSelection(m.sel.WithKey(k))
}

// hoverCursor highlights the chord under the list cursor.
func (m *Model) hoverCursor() {
	row := m.chords.SelectedRow()
	if len(row) == 0 {
		return
	}
	m.hovering = true
	m.setSelection(m.sel.WithChord(row[0]))
}

func (m *Model) setSelection(next model.Selection) {
	if next == m.sel {
		return
	}
	log.Printf("selection: key=%s chord=%q degrees=%t pentatonic=%t", next.Key, next.ChordName, next.ShowDegrees, next.Pentatonic)
	m.sel = next
	m.refresh()
}

func (m *Model) refresh() {
	m.grid = fretboard.FromSelection(m.sel)
	content := renderBoard(m.grid)
	m.board.Width = lipgloss.Width(content)
	m.board.SetContent(content)
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.help.Width = m.width
	footerHeight := lipgloss.Height(m.renderFooter())
	m.board.Height = maxInt(1, m.height-footerHeight)
}

func (m *Model) renderPanel() string {
	lines := []string{
		titleStyle.Render(m.sel.Key.Label()),
		toggleLine("Scale degrees", m.sel.ShowDegrees),
	}
	if m.sel.ShowDegrees {
		lines = append(lines, toggleLine("Pentatonic", m.sel.Pentatonic))
	}
	lines = append(lines, "", footerStyle.Render(m.chordHint()), m.chords.View())
	if legend := renderLegend(m.grid); legend != "" {
		lines = append(lines, "", legend)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) chordHint() string {
	if c, ok := m.sel.Chord(); ok && m.hovering {
		return fmt.Sprintf("%s: %s", c.Name, c.Notes())
	}
	return "Move to highlight notes"
}

func (m *Model) renderFooter() string {
	return m.help.View(m.keys)
}

func toggleLine(label string, on bool) string {
	if on {
		return activeStyle.Render("[x] " + label)
	}
	return "[ ] " + label
}

func chordColumns() []table.Column {
	return []table.Column{
		{Title: "Chord", Width: 6},
		{Title: "Quality", Width: 8},
		{Title: "Notes", Width: 14},
	}
}

func chordRows(k theory.Key) []table.Row {
	chords := k.Chords()
	rows := make([]table.Row, 0, len(chords))
	for _, c := range chords {
		rows = append(rows, table.Row{c.Name, string(c.Quality), c.Notes()})
	}
	return rows
}

// chordTableHeight fits every chord below the bordered header.
func chordTableHeight(k theory.Key) int {
	return len(k.Chords()) + 2
}

func chordTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

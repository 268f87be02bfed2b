package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Quit           key.Binding
	NextKey        key.Binding
	PrevKey        key.Binding
	ToggleDegrees  key.Binding
	TogglePenta    key.Binding
	ClearChord     key.Binding
	HighlightChord key.Binding
	ChordUp        key.Binding
	ChordDown      key.Binding
	ScrollUp       key.Binding
	ScrollDown     key.Binding
	Help           key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextKey: key.NewBinding(
			key.WithKeys("]", "tab"),
			key.WithHelp("]", "next key"),
		),
		PrevKey: key.NewBinding(
			key.WithKeys("[", "shift+tab"),
			key.WithHelp("[", "prev key"),
		),
		ToggleDegrees: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "scale degrees"),
		),
		TogglePenta: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pentatonic"),
		),
		ClearChord: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear chord"),
		),
		HighlightChord: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "highlight chord"),
		),
		ChordUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev chord"),
		),
		ChordDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next chord"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("shift+up", "ctrl+p"),
			key.WithHelp("ctrl+p", "scroll neck up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("shift+down", "ctrl+n"),
			key.WithHelp("ctrl+n", "scroll neck down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ChordDown, k.NextKey, k.ToggleDegrees, k.TogglePenta, k.ClearChord, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ChordUp, k.ChordDown, k.HighlightChord, k.ClearChord},
		{k.NextKey, k.PrevKey, k.ToggleDegrees, k.TogglePenta},
		{k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}

// chordTableKeys limits the chord table to single-row moves so letters
// like "d" stay free for display toggles.
func chordTableKeys(k keyMap) table.KeyMap {
	return table.KeyMap{
		LineUp:     k.ChordUp,
		LineDown:   k.ChordDown,
		GotoTop:    key.NewBinding(key.WithKeys("home", "g")),
		GotoBottom: key.NewBinding(key.WithKeys("end", "G")),
	}
}

func isChordNav(msg tea.KeyMsg, km table.KeyMap) bool {
	return key.Matches(msg, km.LineUp, km.LineDown, km.GotoTop, km.GotoBottom)
}

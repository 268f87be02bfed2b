package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/frets/internal/fretboard"
)

const (
	cellWidth  = 5
	labelWidth = 4
)

var (
	noteStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	rootStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#C0392B")).Bold(true)
	chordToneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E1E")).Background(lipgloss.Color("#C89A3A"))
	scaleRootStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5DADE2")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	nutStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	markerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cellBox        = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	labelBox       = lipgloss.NewStyle().Width(labelWidth).Align(lipgloss.Right)
)

// renderBoard draws the neck as one row per fret with strings as columns.
func renderBoard(g fretboard.Grid) string {
	lines := make([]string, 0, g.FretCount+6)
	lines = append(lines, titleStyle.Render(boardTitle(g)))
	lines = append(lines, renderHeader(g.Tuning))
	for _, fret := range g.Frets() {
		lines = append(lines, renderFretRow(g, fret))
		if nut := renderNutRow(g, fret); nut != "" {
			lines = append(lines, nut)
		}
	}
	return strings.Join(lines, "\n")
}

func boardTitle(g fretboard.Grid) string {
	title := fmt.Sprintf("%s · %s", g.Key.Label(), g.Tuning.Name())
	switch {
	case g.Mode.ShowDegrees && g.Mode.Pentatonic:
		title += " · pentatonic degrees"
	case g.Mode.ShowDegrees:
		title += " · scale degrees"
	}
	return title
}

func renderHeader(t fretboard.Tuning) string {
	var b strings.Builder
	b.WriteString(labelBox.Render(""))
	b.WriteString(" ")
	for _, s := range t {
		b.WriteString(cellBox.Render(footerStyle.Render(s.Name)))
	}
	return b.String()
}

func renderFretRow(g fretboard.Grid, fret int) string {
	var b strings.Builder
	b.WriteString(labelBox.Render(footerStyle.Render(fretboard.FretLabel(fret))))
	b.WriteString(" ")
	for si := range g.Cells {
		c, _ := g.Cell(si, fret)
		b.WriteString(renderCell(c))
	}
	b.WriteString(renderMarker(fretboard.MarkerAt(fret)))
	return b.String()
}

// renderNutRow draws the nut under any cell sitting on it; frets without a
// nut cell return "".
func renderNutRow(g fretboard.Grid, fret int) string {
	found := false
	parts := make([]string, 0, len(g.Cells))
	for si := range g.Cells {
		c, _ := g.Cell(si, fret)
		if c.IsNut {
			found = true
			parts = append(parts, cellBox.Render(nutStyle.Render(strings.Repeat("═", cellWidth))))
			continue
		}
		parts = append(parts, cellBox.Render(""))
	}
	if !found {
		return ""
	}
	return labelBox.Render("") + " " + strings.Join(parts, "")
}

func renderCell(c fretboard.Cell) string {
	if !c.Playable {
		return cellBox.Render("")
	}
	if c.Dimmed() {
		return cellBox.Render(dimStyle.Render("·"))
	}
	text := " " + c.Text + " "
	switch c.Emphasis() {
	case fretboard.EmphasisRoot:
		return cellBox.Render(rootStyle.Render(text))
	case fretboard.EmphasisChordTone:
		return cellBox.Render(chordToneStyle.Render(text))
	case fretboard.EmphasisScaleRoot:
		return cellBox.Render(scaleRootStyle.Render(text))
	default:
		return cellBox.Render(noteStyle.Render(text))
	}
}

func renderMarker(m fretboard.Marker) string {
	switch m {
	case fretboard.MarkerSingle:
		return markerStyle.Render(" •")
	case fretboard.MarkerDouble:
		return markerStyle.Render(" ••")
	default:
		return ""
	}
}

// renderLegend describes the highlight colors that are currently in use.
func renderLegend(g fretboard.Grid) string {
	var lines []string
	if g.Chord != nil {
		lines = append(lines,
			rootStyle.Render(" R ")+" chord root",
			chordToneStyle.Render(" T ")+" chord tone",
		)
	}
	if g.Mode.ShowDegrees {
		lines = append(lines,
			scaleRootStyle.Render(" 1 ")+" scale root",
			dimStyle.Render(" · ")+" outside scale",
		)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n")
}

package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/frets/internal/fretboard"
)

const (
	labelWidth   = 4
	markerWidth  = 3
	minCellWidth = 4
	maxCellWidth = 6
	nutRune      = "═"
	outOfScale   = "·"
)

// Options controls grid rendering.
type Options struct {
	// Width is the total line width; 0 uses the terminal width.
	Width int
	Color bool
}

// RenderGrid prints the fretboard with frets as rows and strings as columns,
// the way the neck looks held upright.
func RenderGrid(w io.Writer, g fretboard.Grid, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = terminalWidth()
	}
	cellWidth := cellWidthFor(width, len(g.Tuning))

	lines := []string{gridTitle(g), headerLine(g, cellWidth)}
	for _, fret := range g.Frets() {
		lines = append(lines, fretLine(g, fret, cellWidth, opts.Color))
		if nut, ok := nutLine(g, fret, cellWidth); ok {
			lines = append(lines, nut)
		}
	}
	lines = append(lines, "", legend(opts.Color))
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func cellWidthFor(total, count int) int {
	if count <= 0 {
		return minCellWidth
	}
	w := (total - labelWidth - 1 - markerWidth) / count
	if w < minCellWidth {
		return minCellWidth
	}
	if w > maxCellWidth {
		return maxCellWidth
	}
	return w
}

func gridTitle(g fretboard.Grid) string {
	parts := []string{g.Key.Label(), g.Tuning.Name()}
	if g.Chord != nil {
		parts = append(parts, fmt.Sprintf("chord %s (%s)", g.Chord.Name, g.Chord.Notes()))
	}
	if g.Mode.ShowDegrees {
		if g.Mode.Pentatonic {
			parts = append(parts, "pentatonic degrees")
		} else {
			parts = append(parts, "scale degrees")
		}
	}
	return strings.Join(parts, " · ")
}

func headerLine(g fretboard.Grid, cellWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth+1))
	for _, s := range g.Tuning {
		b.WriteString(center(s.Name, cellWidth))
	}
	return b.String()
}

func fretLine(g fretboard.Grid, fret, cellWidth int, useColor bool) string {
	var b strings.Builder
	b.WriteString(runewidth.FillLeft(fretboard.FretLabel(fret), labelWidth))
	b.WriteByte(' ')
	for si := range g.Tuning {
		cell, _ := g.Cell(si, fret)
		text, color, painted := decorate(cell)
		left, right := centerPadding(runewidth.StringWidth(text), cellWidth)
		b.WriteString(strings.Repeat(" ", left))
		if painted {
			b.WriteString(paint(text, color, useColor))
		} else {
			b.WriteString(text)
		}
		b.WriteString(strings.Repeat(" ", right))
	}
	switch fretboard.MarkerAt(fret) {
	case fretboard.MarkerSingle:
		b.WriteString(" •")
	case fretboard.MarkerDouble:
		b.WriteString(" ••")
	}
	return b.String()
}

func nutLine(g fretboard.Grid, fret, cellWidth int) (string, bool) {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth+1))
	found := false
	for si := range g.Tuning {
		cell, _ := g.Cell(si, fret)
		if cell.IsNut {
			found = true
			b.WriteString(center(strings.Repeat(nutRune, cellWidth-2), cellWidth))
			continue
		}
		b.WriteString(strings.Repeat(" ", cellWidth))
	}
	return b.String(), found
}

func decorate(c fretboard.Cell) (string, ansiColor, bool) {
	if !c.Playable {
		return "", ansiColor{}, false
	}
	if c.Dimmed() {
		return outOfScale, dimColor, true
	}
	switch c.Emphasis() {
	case fretboard.EmphasisRoot:
		return "(" + c.Text + ")", rootColor, true
	case fretboard.EmphasisChordTone:
		return "[" + c.Text + "]", chordToneColor, true
	case fretboard.EmphasisScaleRoot:
		return "<" + c.Text + ">", scaleRootColor, true
	default:
		return c.Text, ansiColor{}, false
	}
}

func legend(useColor bool) string {
	parts := []string{
		paint("(x)", rootColor, useColor) + " root",
		paint("[x]", chordToneColor, useColor) + " chord tone",
		paint("<1>", scaleRootColor, useColor) + " scale root",
		paint(outOfScale, dimColor, useColor) + " out of scale",
	}
	return "Legend: " + strings.Join(parts, "  ")
}

func center(s string, width int) string {
	left, right := centerPadding(runewidth.StringWidth(s), width)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func centerPadding(textWidth, width int) (int, int) {
	if textWidth >= width {
		return 0, 0
	}
	left := (width - textWidth) / 2
	return left, width - textWidth - left
}

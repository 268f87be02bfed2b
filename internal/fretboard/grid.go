package fretboard

import (
	"strconv"

	"github.com/verte-zerg/frets/internal/model"
	"github.com/verte-zerg/frets/internal/theory"
)

// DisplayMode selects what the cells show.
type DisplayMode struct {
	ShowDegrees bool
	Pentatonic  bool
}

// Emphasis is the dominant highlight of a cell. Exactly one applies.
type Emphasis int

// Emphasis levels. Plain is the zero value; Root outranks ChordTone, which
// outranks ScaleRoot.
const (
	EmphasisPlain Emphasis = iota
	EmphasisRoot
	EmphasisChordTone
	EmphasisScaleRoot
)

// String returns the style name used by renderers and the JSON boundary.
func (e Emphasis) String() string {
	switch e {
	case EmphasisRoot:
		return "root"
	case EmphasisChordTone:
		return "chord-tone"
	case EmphasisScaleRoot:
		return "scale-root"
	default:
		return "plain"
	}
}

// Cell is the display data for one (string, fret) position.
type Cell struct {
	String             int
	Fret               int
	Playable           bool
	Pitch              theory.Pitch
	IsOpen             bool
	IsNut              bool
	IsHighlighted      bool
	IsChordRoot        bool
	ScaleDegree        int
	IsPentatonicDegree bool
	InDisplayedScale   bool
	IsScaleRoot        bool
	FretWire           bool
	Text               string

	showDegrees bool
}

// Emphasis returns the cell's strongest highlight. The chord root wins over
// chord tone, which wins over scale root; scale roots only stand out while
// degrees are shown.
func (c Cell) Emphasis() Emphasis {
	switch {
	case !c.Playable:
		return EmphasisPlain
	case c.IsChordRoot:
		return EmphasisRoot
	case c.IsHighlighted:
		return EmphasisChordTone
	case c.showDegrees && c.IsScaleRoot:
		return EmphasisScaleRoot
	default:
		return EmphasisPlain
	}
}

// Dimmed reports whether the note is drawn as out of scale.
func (c Cell) Dimmed() bool {
	return c.Playable && c.showDegrees && !c.InDisplayedScale
}

// Grid holds cells indexed by string then fret.
type Grid struct {
	Tuning    Tuning
	FretCount int
	Key       theory.Key
	Chord     *theory.Chord
	Mode      DisplayMode
	Cells     [][]Cell
}

// BuildGrid classifies every (string, fret) position for frets 0..fretCount.
// chord may be nil.
func BuildGrid(tuning Tuning, fretCount int, key theory.Key, chord *theory.Chord, mode DisplayMode) Grid {
	scale := key.Scale()
	if fretCount < 0 {
		fretCount = 0
	}
	g := Grid{
		Tuning:    tuning,
		FretCount: fretCount,
		Key:       key,
		Chord:     chord,
		Mode:      mode,
		Cells:     make([][]Cell, len(tuning)),
	}
	for si, s := range tuning {
		row := make([]Cell, fretCount+1)
		for fret := 0; fret <= fretCount; fret++ {
			row[fret] = buildCell(si, s, fret, scale, chord, mode)
		}
		g.Cells[si] = row
	}
	return g
}

// FromSelection builds the standard-tuning grid for a selection.
func FromSelection(sel model.Selection) Grid {
	var chord *theory.Chord
	if c, ok := sel.Chord(); ok {
		chord = &c
	}
	mode := DisplayMode{ShowDegrees: sel.ShowDegrees, Pentatonic: sel.Pentatonic}
	return BuildGrid(StandardG(), FretCount, sel.Key, chord, mode)
}

func buildCell(si int, s String, fret int, scale []theory.Pitch, chord *theory.Chord, mode DisplayMode) Cell {
	c := Cell{String: si, Fret: fret, showDegrees: mode.ShowDegrees}
	if fret < s.StartFret {
		return c
	}
	pitch := theory.PitchAtFret(s.Open, fret-s.StartFret)
	if pitch == "" {
		return c
	}
	c.Playable = true
	c.Pitch = pitch
	c.IsOpen = fret == s.StartFret
	c.IsNut = fret == 0 || fret == s.StartFret
	c.FretWire = fret > 0 && fret != s.StartFret
	if chord != nil && len(chord.Tones) > 0 {
		c.IsHighlighted = theory.IsMember(pitch, chord.Tones)
		c.IsChordRoot = theory.Normalize(pitch) == theory.Normalize(chord.Tones[0])
	}
	degree, ok := theory.DegreeOf(pitch, scale)
	if ok {
		c.ScaleDegree = degree
	}
	c.IsPentatonicDegree = ok && theory.IsPentatonicDegree(degree)
	inScale := ok
	if mode.Pentatonic {
		inScale = c.IsPentatonicDegree
	}
	c.InDisplayedScale = inScale || c.IsHighlighted || c.IsChordRoot
	c.IsScaleRoot = degree == 1
	c.Text = displayText(c, mode)
	return c
}

func displayText(c Cell, mode DisplayMode) string {
	if !mode.ShowDegrees {
		return string(c.Pitch)
	}
	if !c.InDisplayedScale {
		return ""
	}
	if c.ScaleDegree > 0 {
		return strconv.Itoa(c.ScaleDegree)
	}
	return string(c.Pitch)
}

// Frets returns the drawn fret positions, open string first.
func (g Grid) Frets() []int {
	out := make([]int, g.FretCount+1)
	for i := range out {
		out[i] = i
	}
	return out
}

// Cell returns the cell at (string, fret) and whether it exists.
func (g Grid) Cell(stringIdx, fret int) (Cell, bool) {
	if stringIdx < 0 || stringIdx >= len(g.Cells) {
		return Cell{}, false
	}
	row := g.Cells[stringIdx]
	if fret < 0 || fret >= len(row) {
		return Cell{}, false
	}
	return row[fret], true
}

// Position addresses a cell.
type Position struct {
	String int
	Fret   int
}

// Find returns every playable position sounding p, compared after
// normalization, ordered by string then fret.
func (g Grid) Find(p theory.Pitch) []Position {
	target := theory.Normalize(p)
	var out []Position
	for si, row := range g.Cells {
		for _, c := range row {
			if c.Playable && theory.Normalize(c.Pitch) == target {
				out = append(out, Position{String: si, Fret: c.Fret})
			}
		}
	}
	return out
}

// Package fretboard builds the per-cell display model of a banjo neck.
package fretboard

import (
	"strconv"
	"strings"

	"github.com/verte-zerg/frets/internal/theory"
)

// FretCount is the highest fret drawn; position 0 is the open string.
const FretCount = 15

// String is one instrument string. StartFret is where a shortened string
// begins sounding; frets below it are not playable.
type String struct {
	Name      string
	Open      theory.Pitch
	StartFret int
}

// Tuning lists strings left to right as the player faces the neck.
type Tuning []String

var standardG = Tuning{
	{Name: "5", Open: theory.G, StartFret: 5},
	{Name: "4", Open: theory.D},
	{Name: "3", Open: theory.G},
	{Name: "2", Open: theory.B},
	{Name: "1", Open: theory.D},
}

// StandardG returns open-G tuning (gDGBD) with the short fifth string.
func StandardG() Tuning {
	out := make(Tuning, len(standardG))
	copy(out, standardG)
	return out
}

// Name returns the tuning spelled the way players write it, short string
// in lower case.
func (t Tuning) Name() string {
	var b strings.Builder
	for _, s := range t {
		name := string(s.Open)
		if s.StartFret > 0 {
			name = strings.ToLower(name)
		}
		b.WriteString(name)
	}
	return b.String()
}

// Marker is an inlay dot on the fingerboard.
type Marker int

// Inlay kinds.
const (
	MarkerNone Marker = iota
	MarkerSingle
	MarkerDouble
)

// MarkerAt returns the inlay drawn beside fret.
func MarkerAt(fret int) Marker {
	switch fret {
	case 3, 5, 7, 10, 15:
		return MarkerSingle
	case 12:
		return MarkerDouble
	default:
		return MarkerNone
	}
}

// FretLabel returns the row label for fret.
func FretLabel(fret int) string {
	if fret == 0 {
		return "Open"
	}
	return strconv.Itoa(fret)
}

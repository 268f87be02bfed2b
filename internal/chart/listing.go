package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/frets/internal/fretboard"
	"github.com/verte-zerg/frets/internal/theory"
)

// RenderChords prints the diatonic chord table of key.
func RenderChords(w io.Writer, key theory.Key) error {
	chords := key.Chords()
	if len(chords) == 0 {
		_, err := fmt.Fprintf(w, "No chords for key %s.\n", key)
		return err
	}
	if _, err := fmt.Fprintf(w, "Chords in %s\n", key.Label()); err != nil {
		return err
	}
	tbl := newTable(column{title: "Chord"}, column{title: "Quality"}, column{title: "Notes"})
	for _, c := range chords {
		tbl.add(c.Name, string(c.Quality), c.Notes())
	}
	return tbl.write(w)
}

// RenderScale prints the scale of key with degrees and pentatonic membership.
func RenderScale(w io.Writer, key theory.Key) error {
	scale := key.Scale()
	if len(scale) == 0 {
		_, err := fmt.Fprintf(w, "No scale for key %s.\n", key)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s scale\n", key.Label()); err != nil {
		return err
	}
	tbl := newTable(column{title: "Degree", right: true}, column{title: "Note"}, column{title: "Pentatonic"})
	for i, p := range scale {
		degree := i + 1
		penta := "no"
		if theory.IsPentatonicDegree(degree) {
			penta = "yes"
		}
		tbl.add(strconv.Itoa(degree), string(p), penta)
	}
	return tbl.write(w)
}

// RenderPositions lists every place p sounds on the grid, string by string.
func RenderPositions(w io.Writer, g fretboard.Grid, p theory.Pitch) error {
	name := string(p)
	if n := theory.Normalize(p); n != p {
		name = fmt.Sprintf("%s (%s)", p, n)
	}
	positions := g.Find(p)
	if len(positions) == 0 {
		_, err := fmt.Fprintf(w, "%s does not sound on %s.\n", name, g.Tuning.Name())
		return err
	}
	if _, err := fmt.Fprintf(w, "%s on %s\n", name, g.Tuning.Name()); err != nil {
		return err
	}
	tbl := newTable(column{title: "String"}, column{title: "Fret", right: true})
	for _, pos := range positions {
		tbl.add(g.Tuning[pos.String].Name, fretboard.FretLabel(pos.Fret))
	}
	return tbl.write(w)
}

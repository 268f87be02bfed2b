package server

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/verte-zerg/frets/internal/fretboard"
	"github.com/verte-zerg/frets/internal/theory"
)

type gridResponse struct {
	Key     string           `json:"key"`
	Tuning  string           `json:"tuning"`
	Chord   *chordResponse   `json:"chord,omitempty"`
	Mode    modeResponse     `json:"mode"`
	Frets   []fretResponse   `json:"frets"`
	Strings []stringResponse `json:"strings"`
	Find    *findResponse    `json:"find,omitempty"`
}

type findResponse struct {
	Pitch     string             `json:"pitch"`
	Canonical string             `json:"canonical"`
	Positions []positionResponse `json:"positions"`
}

type positionResponse struct {
	String string `json:"string"`
	Fret   int    `json:"fret"`
}

type modeResponse struct {
	ShowDegrees bool `json:"showDegrees"`
	Pentatonic  bool `json:"pentatonic"`
}

type fretResponse struct {
	Fret   int    `json:"fret"`
	Label  string `json:"label"`
	Marker string `json:"marker,omitempty"`
}

type stringResponse struct {
	Name      string         `json:"name"`
	Open      string         `json:"open"`
	StartFret int            `json:"startFret"`
	Cells     []cellResponse `json:"cells"`
}

type cellResponse struct {
	Fret             int    `json:"fret"`
	Playable         bool   `json:"playable"`
	Pitch            string `json:"pitch,omitempty"`
	Text             string `json:"text"`
	Open             bool   `json:"open,omitempty"`
	Nut              bool   `json:"nut,omitempty"`
	FretWire         bool   `json:"fretWire,omitempty"`
	Highlighted      bool   `json:"highlighted,omitempty"`
	ChordRoot        bool   `json:"chordRoot,omitempty"`
	ScaleDegree      int    `json:"scaleDegree,omitempty"`
	ScaleRoot        bool   `json:"scaleRoot,omitempty"`
	InDisplayedScale bool   `json:"inDisplayedScale"`
	Emphasis         string `json:"emphasis"`
	Dimmed           bool   `json:"dimmed,omitempty"`
}

func newChordResponse(c theory.Chord) chordResponse {
	tones := make([]string, len(c.Tones))
	for i, t := range c.Tones {
		tones[i] = string(t)
	}
	return chordResponse{Name: c.Name, Tones: tones, Quality: string(c.Quality), Notes: c.Notes()}
}

func newGridResponse(g fretboard.Grid) gridResponse {
	out := gridResponse{
		Key:    string(g.Key),
		Tuning: g.Tuning.Name(),
		Mode:   modeResponse{ShowDegrees: g.Mode.ShowDegrees, Pentatonic: g.Mode.Pentatonic},
	}
	if g.Chord != nil {
		c := newChordResponse(*g.Chord)
		out.Chord = &c
	}
	for _, fret := range g.Frets() {
		out.Frets = append(out.Frets, fretResponse{
			Fret:   fret,
			Label:  fretboard.FretLabel(fret),
			Marker: markerName(fretboard.MarkerAt(fret)),
		})
	}
	for si, s := range g.Tuning {
		sr := stringResponse{Name: s.Name, Open: string(s.Open), StartFret: s.StartFret}
		for _, c := range g.Cells[si] {
			sr.Cells = append(sr.Cells, cellResponse{
				Fret:             c.Fret,
				Playable:         c.Playable,
				Pitch:            string(c.Pitch),
				Text:             c.Text,
				Open:             c.IsOpen,
				Nut:              c.IsNut,
				FretWire:         c.FretWire,
				Highlighted:      c.IsHighlighted,
				ChordRoot:        c.IsChordRoot,
				ScaleDegree:      c.ScaleDegree,
				ScaleRoot:        c.IsScaleRoot,
				InDisplayedScale: c.InDisplayedScale,
				Emphasis:         c.Emphasis().String(),
				Dimmed:           c.Dimmed(),
			})
		}
		out.Strings = append(out.Strings, sr)
	}
	return out
}

func newFindResponse(g fretboard.Grid, p theory.Pitch) *findResponse {
	out := &findResponse{
		Pitch:     string(p),
		Canonical: string(theory.Normalize(p)),
		Positions: []positionResponse{},
	}
	for _, pos := range g.Find(p) {
		out.Positions = append(out.Positions, positionResponse{
			String: g.Tuning[pos.String].Name,
			Fret:   pos.Fret,
		})
	}
	return out
}

// EncodeGrid writes g in the /api/grid response shape. A non-empty find adds
// every position sounding that pitch.
func EncodeGrid(w io.Writer, g fretboard.Grid, find theory.Pitch) error {
	resp := newGridResponse(g)
	if find != "" {
		resp.Find = newFindResponse(g, find)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode grid: %w", err)
	}
	return nil
}

func markerName(m fretboard.Marker) string {
	switch m {
	case fretboard.MarkerSingle:
		return "single"
	case fretboard.MarkerDouble:
		return "double"
	default:
		return ""
	}
}

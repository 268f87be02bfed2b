// Package model defines shared data structures.
package model

import "github.com/verte-zerg/frets/internal/theory"

// Config defines startup display settings.
type Config struct {
	Key         theory.Key
	ShowDegrees bool
	Pentatonic  bool
	Color       string
}

// ServerConfig defines settings for the HTTP grid endpoint.
type ServerConfig struct {
	Addr     string
	AllowAll bool
}

// Selection is the presentation state fed to the grid builder.
// It is a value: transitions return a new Selection.
type Selection struct {
	Key         theory.Key
	ChordName   string
	ShowDegrees bool
	Pentatonic  bool
}

// NewSelection builds the initial selection from config.
func NewSelection(cfg Config) Selection {
	return Selection{
		Key:         cfg.Key,
		ShowDegrees: cfg.ShowDegrees,
		Pentatonic:  cfg.Pentatonic,
	}
}

// Chord resolves the highlighted chord against the selected key.
func (s Selection) Chord() (theory.Chord, bool) {
	if s.ChordName == "" {
		return theory.Chord{}, false
	}
	chord, err := s.Key.Chord(s.ChordName)
	if err != nil {
		return theory.Chord{}, false
	}
	return chord, true
}

// WithKey switches key and clears the highlighted chord.
func (s Selection) WithKey(k theory.Key) Selection {
	s.Key = k
	s.ChordName = ""
	return s
}

// WithChord highlights the named chord; an empty name clears it.
func (s Selection) WithChord(name string) Selection {
	s.ChordName = name
	return s
}

// ToggleDegrees flips scale-degree display.
func (s Selection) ToggleDegrees() Selection {
	s.ShowDegrees = !s.ShowDegrees
	return s
}

// TogglePentatonic flips the pentatonic filter. The filter only has a
// visible effect while degrees are shown, so it is left unchanged otherwise.
func (s Selection) TogglePentatonic() Selection {
	if !s.ShowDegrees {
		return s
	}
	s.Pentatonic = !s.Pentatonic
	return s
}

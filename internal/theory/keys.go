package theory

import (
	"errors"
	"fmt"
	"strings"
)

// Key selects a major scale and its diatonic chord set.
type Key string

// Supported keys.
const (
	KeyG Key = "G"
	KeyC Key = "C"
	KeyD Key = "D"
)

// Quality tags a triad.
type Quality string

// Triad qualities.
const (
	Major      Quality = "major"
	Minor      Quality = "minor"
	Diminished Quality = "dim"
)

var (
	// ErrUnknownKey is returned for keys outside the supported set.
	ErrUnknownKey = errors.New("unknown key")
	// ErrUnknownChord is returned when a chord name is not in a key's table.
	ErrUnknownChord = errors.New("unknown chord")
)

// Chord is a named triad with its root first.
type Chord struct {
	Name    string
	Tones   []Pitch
	Quality Quality
}

// Root returns the first chord tone.
func (c Chord) Root() Pitch {
	if len(c.Tones) == 0 {
		return ""
	}
	return c.Tones[0]
}

// Notes formats the chord tones as "G - B - D".
func (c Chord) Notes() string {
	parts := make([]string, len(c.Tones))
	for i, t := range c.Tones {
		parts[i] = string(t)
	}
	return strings.Join(parts, " - ")
}

func (c Chord) clone() Chord {
	tones := make([]Pitch, len(c.Tones))
	copy(tones, c.Tones)
	return Chord{Name: c.Name, Tones: tones, Quality: c.Quality}
}

var keyOrder = []Key{KeyG, KeyC, KeyD}

var scales = map[Key][]Pitch{
	KeyG: {G, A, B, C, D, E, FSharp},
	KeyC: {C, D, E, F, G, A, B},
	KeyD: {D, E, FSharp, G, A, B, CSharp},
}

var chordsByKey = map[Key][]Chord{
	KeyG: {
		{Name: "G", Tones: []Pitch{G, B, D}, Quality: Major},
		{Name: "Am", Tones: []Pitch{A, C, E}, Quality: Minor},
		{Name: "Bm", Tones: []Pitch{B, D, FSharp}, Quality: Minor},
		{Name: "C", Tones: []Pitch{C, E, G}, Quality: Major},
		{Name: "D", Tones: []Pitch{D, FSharp, A}, Quality: Major},
		{Name: "Em", Tones: []Pitch{E, G, B}, Quality: Minor},
		{Name: "F#dim", Tones: []Pitch{FSharp, A, C}, Quality: Diminished},
	},
	KeyC: {
		{Name: "C", Tones: []Pitch{C, E, G}, Quality: Major},
		{Name: "Dm", Tones: []Pitch{D, F, A}, Quality: Minor},
		{Name: "Em", Tones: []Pitch{E, G, B}, Quality: Minor},
		{Name: "F", Tones: []Pitch{F, A, C}, Quality: Major},
		{Name: "G", Tones: []Pitch{G, B, D}, Quality: Major},
		{Name: "Am", Tones: []Pitch{A, C, E}, Quality: Minor},
		{Name: "Bdim", Tones: []Pitch{B, D, F}, Quality: Diminished},
	},
	KeyD: {
		{Name: "D", Tones: []Pitch{D, FSharp, A}, Quality: Major},
		{Name: "Em", Tones: []Pitch{E, G, B}, Quality: Minor},
		{Name: "F#m", Tones: []Pitch{FSharp, A, CSharp}, Quality: Minor},
		{Name: "G", Tones: []Pitch{G, B, D}, Quality: Major},
		{Name: "A", Tones: []Pitch{A, CSharp, E}, Quality: Major},
		{Name: "Bm", Tones: []Pitch{B, D, FSharp}, Quality: Minor},
		{Name: "C#dim", Tones: []Pitch{CSharp, E, G}, Quality: Diminished},
	},
}

// Keys returns the supported keys in display order.
func Keys() []Key {
	out := make([]Key, len(keyOrder))
	copy(out, keyOrder)
	return out
}

// ParseKey resolves a key name such as "g" or "D".
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownKey, s, keyList())
	}
	return k, nil
}

// Valid reports whether k is one of the supported keys.
func (k Key) Valid() bool {
	_, ok := scales[k]
	return ok
}

// Label returns the display name, e.g. "G Major".
func (k Key) Label() string {
	return string(k) + " Major"
}

// Scale returns the seven-note major scale of k, root first.
// Unknown keys return nil.
func (k Key) Scale() []Pitch {
	scale, ok := scales[k]
	if !ok {
		return nil
	}
	out := make([]Pitch, len(scale))
	copy(out, scale)
	return out
}

// Chords returns the diatonic triads of k in scale order.
func (k Key) Chords() []Chord {
	chords := chordsByKey[k]
	out := make([]Chord, len(chords))
	for i, c := range chords {
		out[i] = c.clone()
	}
	return out
}

// Chord looks up a chord of k by name.
func (k Key) Chord(name string) (Chord, error) {
	for _, c := range chordsByKey[k] {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c.clone(), nil
		}
	}
	return Chord{}, fmt.Errorf("%w: %q in key %s", ErrUnknownChord, name, k)
}

// Next returns the key after k in display order, wrapping around.
func (k Key) Next() Key {
	return k.step(1)
}

// Prev returns the key before k in display order, wrapping around.
func (k Key) Prev() Key {
	return k.step(-1)
}

func (k Key) step(delta int) Key {
	idx := 0
	for i, candidate := range keyOrder {
		if candidate == k {
			idx = i
			break
		}
	}
	n := len(keyOrder)
	return keyOrder[((idx+delta)%n+n)%n]
}

func keyList() string {
	names := make([]string, len(keyOrder))
	for i, k := range keyOrder {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

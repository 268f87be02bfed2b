// Package theory provides pitch arithmetic and the key, scale and chord tables.
package theory

import (
	"errors"
	"fmt"
	"strings"
)

// Pitch is a pitch-class name. Canonical names use sharps; flat and other
// enharmonic spellings are accepted and compared through Normalize.
type Pitch string

// Canonical pitch classes.
const (
	C      Pitch = "C"
	CSharp Pitch = "C#"
	D      Pitch = "D"
	DSharp Pitch = "D#"
	E      Pitch = "E"
	F      Pitch = "F"
	FSharp Pitch = "F#"
	G      Pitch = "G"
	GSharp Pitch = "G#"
	A      Pitch = "A"
	ASharp Pitch = "A#"
	B      Pitch = "B"
)

// ErrUnknownPitch is returned when a pitch name cannot be parsed.
var ErrUnknownPitch = errors.New("unknown pitch")

var chromatic = [12]Pitch{C, CSharp, D, DSharp, E, F, FSharp, G, GSharp, A, ASharp, B}

var enharmonics = map[Pitch]Pitch{
	"Db": CSharp,
	"Eb": DSharp,
	"Fb": E,
	"Gb": FSharp,
	"Ab": GSharp,
	"Bb": ASharp,
	"Cb": B,
	"E#": F,
	"B#": C,
}

// Normalize maps an enharmonic spelling to its canonical sharp name.
// Names without an alias are returned unchanged.
func Normalize(p Pitch) Pitch {
	if canonical, ok := enharmonics[p]; ok {
		return canonical
	}
	return p
}

// PitchAtFret returns the pitch sounded offset semitones above open.
// offset must not be negative. An unknown open pitch yields "".
func PitchAtFret(open Pitch, offset int) Pitch {
	idx := index(open)
	if idx < 0 {
		return ""
	}
	return chromatic[(idx+offset)%len(chromatic)]
}

// IsMember reports whether p matches any pitch in set after normalization.
func IsMember(p Pitch, set []Pitch) bool {
	n := Normalize(p)
	for _, candidate := range set {
		if Normalize(candidate) == n {
			return true
		}
	}
	return false
}

// DegreeOf returns the 1-based position of p in scale.
func DegreeOf(p Pitch, scale []Pitch) (int, bool) {
	n := Normalize(p)
	for i, candidate := range scale {
		if Normalize(candidate) == n {
			return i + 1, true
		}
	}
	return 0, false
}

// IsPentatonicDegree reports whether a major-scale degree survives the
// major pentatonic filter, which drops the 4th and 7th.
func IsPentatonicDegree(degree int) bool {
	if degree < 1 || degree > 7 {
		return false
	}
	return degree != 4 && degree != 7
}

// ParsePitch accepts canonical and aliased spellings with a case-insensitive
// letter, e.g. "bb" or "F#". The returned pitch keeps the input spelling.
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownPitch)
	}
	p := Pitch(strings.ToUpper(s[:1]) + s[1:])
	if index(p) < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownPitch, s)
	}
	return p, nil
}

func index(p Pitch) int {
	n := Normalize(p)
	for i, candidate := range chromatic {
		if candidate == n {
			return i
		}
	}
	return -1
}

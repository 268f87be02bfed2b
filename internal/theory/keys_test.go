package theory

import (
	"errors"
	"testing"
)

func TestChordTablesAreDiatonic(t *testing.T) {
	for _, key := range Keys() {
		scale := key.Scale()
		chords := key.Chords()
		if len(chords) != 7 {
			t.Fatalf("key %s: expected 7 chords, got %d", key, len(chords))
		}
		for i, chord := range chords {
			if Normalize(chord.Root()) != Normalize(scale[i]) {
				t.Fatalf("key %s: chord %s root %s, want %s", key, chord.Name, chord.Root(), scale[i])
			}
			for _, tone := range chord.Tones {
				if !IsMember(tone, scale) {
					t.Fatalf("key %s: chord %s tone %s outside scale", key, chord.Name, tone)
				}
			}
		}
	}
}

func TestKeyChordLookup(t *testing.T) {
	chord, err := KeyG.Chord("f#DIM")
	if err != nil {
		t.Fatalf("Chord lookup failed: %v", err)
	}
	if chord.Name != "F#dim" || chord.Quality != Diminished {
		t.Fatalf("unexpected chord: %+v", chord)
	}
	if chord.Notes() != "F# - A - C" {
		t.Fatalf("unexpected notes line: %q", chord.Notes())
	}
	if _, err := KeyC.Chord("F#dim"); !errors.Is(err, ErrUnknownChord) {
		t.Fatalf("expected ErrUnknownChord, got %v", err)
	}
}

func TestTablesAreNotShared(t *testing.T) {
	scale := KeyG.Scale()
	scale[0] = B
	chords := KeyG.Chords()
	chords[0].Tones[0] = B
	if KeyG.Scale()[0] != G {
		t.Fatalf("scale table mutated through accessor")
	}
	if KeyG.Chords()[0].Tones[0] != G {
		t.Fatalf("chord table mutated through accessor")
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey(" d ")
	if err != nil || k != KeyD {
		t.Fatalf("ParseKey(d) = %q, %v", k, err)
	}
	if _, err := ParseKey("F"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if Key("E").Scale() != nil || len(Key("E").Chords()) != 0 {
		t.Fatalf("expected unknown key to have no scale or chords")
	}
}

func TestKeyCycle(t *testing.T) {
	if KeyG.Next() != KeyC || KeyC.Next() != KeyD || KeyD.Next() != KeyG {
		t.Fatalf("unexpected forward key cycle")
	}
	if KeyG.Prev() != KeyD {
		t.Fatalf("expected G to wrap back to D, got %s", KeyG.Prev())
	}
	if KeyD.Label() != "D Major" {
		t.Fatalf("unexpected label %q", KeyD.Label())
	}
}

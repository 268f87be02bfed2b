package theory

import (
	"errors"
	"testing"
)

func TestPitchAtFretPeriod(t *testing.T) {
	for _, open := range []Pitch{G, D, B} {
		for k := 0; k <= 11; k++ {
			if got, want := PitchAtFret(open, k+12), PitchAtFret(open, k); got != want {
				t.Fatalf("PitchAtFret(%s, %d) = %s, want %s", open, k+12, got, want)
			}
		}
	}
}

func TestPitchAtFretValues(t *testing.T) {
	cases := []struct {
		open   Pitch
		offset int
		want   Pitch
	}{
		{G, 0, G},
		{G, 5, C},
		{D, 4, FSharp},
		{B, 1, C},
		{Pitch("Bb"), 2, C},
	}
	for _, tc := range cases {
		if got := PitchAtFret(tc.open, tc.offset); got != tc.want {
			t.Fatalf("PitchAtFret(%s, %d) = %s, want %s", tc.open, tc.offset, got, tc.want)
		}
	}
	if got := PitchAtFret("H", 3); got != "" {
		t.Fatalf("expected no pitch for unknown open string, got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	all := append([]Pitch(nil), chromatic[:]...)
	for alias := range enharmonics {
		all = append(all, alias)
	}
	if len(all) != 21 {
		t.Fatalf("expected 21 spellings, got %d", len(all))
	}
	for _, p := range all {
		once := Normalize(p)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %s: %s then %s", p, once, twice)
		}
	}
	if got := Normalize("Db"); got != CSharp {
		t.Fatalf("expected Db -> C#, got %s", got)
	}
	if got := Normalize("E#"); got != F {
		t.Fatalf("expected E# -> F, got %s", got)
	}
	if got := Normalize(FSharp); got != FSharp {
		t.Fatalf("expected canonical pitch unchanged, got %s", got)
	}
}

func TestIsMember(t *testing.T) {
	tones := []Pitch{ASharp, CSharp, F}
	for _, p := range tones {
		if !IsMember(p, tones) {
			t.Fatalf("expected %s to be a member of its own set", p)
		}
	}
	if !IsMember("Bb", tones) {
		t.Fatalf("expected Bb to match A#")
	}
	if !IsMember(ASharp, []Pitch{"Bb"}) {
		t.Fatalf("expected A# to match a flat-spelled set")
	}
	if IsMember("Db", []Pitch{FSharp, A, C}) {
		t.Fatalf("expected Db to be outside F#dim")
	}
}

func TestDegreeOf(t *testing.T) {
	for _, key := range Keys() {
		scale := key.Scale()
		for i, p := range scale {
			got, ok := DegreeOf(p, scale)
			if !ok || got != i+1 {
				t.Fatalf("key %s: DegreeOf(%s) = %d,%v want %d", key, p, got, ok, i+1)
			}
		}
	}
	if _, ok := DegreeOf(GSharp, KeyG.Scale()); ok {
		t.Fatalf("expected G# to have no degree in G major")
	}
	if got, ok := DegreeOf("Gb", KeyD.Scale()); !ok || got != 3 {
		t.Fatalf("expected Gb to be degree 3 of D major, got %d,%v", got, ok)
	}
}

func TestPentatonicDegreesOfG(t *testing.T) {
	scale := KeyG.Scale()
	in := map[Pitch]bool{G: true, A: true, B: true, D: true, E: true, C: false, FSharp: false}
	for p, want := range in {
		degree, ok := DegreeOf(p, scale)
		if !ok {
			t.Fatalf("expected %s in G major", p)
		}
		if got := IsPentatonicDegree(degree); got != want {
			t.Fatalf("pentatonic(%s) = %v, want %v", p, got, want)
		}
	}
	if IsPentatonicDegree(0) {
		t.Fatalf("expected missing degree to be outside pentatonic")
	}
}

func TestParsePitch(t *testing.T) {
	p, err := ParsePitch(" bb ")
	if err != nil {
		t.Fatalf("ParsePitch failed: %v", err)
	}
	if p != "Bb" {
		t.Fatalf("expected spelling kept as Bb, got %s", p)
	}
	if _, err := ParsePitch("x#"); !errors.Is(err, ErrUnknownPitch) {
		t.Fatalf("expected ErrUnknownPitch, got %v", err)
	}
	if _, err := ParsePitch(""); !errors.Is(err, ErrUnknownPitch) {
		t.Fatalf("expected ErrUnknownPitch for empty input, got %v", err)
	}
}

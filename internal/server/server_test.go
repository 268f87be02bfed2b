package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/verte-zerg/frets/internal/fretboard"
	"github.com/verte-zerg/frets/internal/model"
	"github.com/verte-zerg/frets/internal/theory"
)

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
}

func TestHealthCheck(t *testing.T) {
	srv := New(model.ServerConfig{})
	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
	if srv.Addr() != DefaultAddr {
		t.Errorf("expected default addr, got %q", srv.Addr())
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(model.ServerConfig{AllowAll: true})
	req := httptest.NewRequest(http.MethodOptions, "/api/keys", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestKeysAndChords(t *testing.T) {
	srv := New(model.ServerConfig{})
	var keys []keyResponse
	decode(t, get(t, srv, "/api/keys"), &keys)
	if len(keys) != 3 || keys[0].Name != "G" || keys[2].Label != "D Major" {
		t.Fatalf("unexpected keys: %+v", keys)
	}

	var chords []chordResponse
	decode(t, get(t, srv, "/api/keys/c/chords"), &chords)
	if len(chords) != 7 || chords[6].Name != "Bdim" || chords[6].Quality != "dim" {
		t.Fatalf("unexpected chords: %+v", chords)
	}

	var scale []degreeResponse
	decode(t, get(t, srv, "/api/keys/G/scale"), &scale)
	if len(scale) != 7 || scale[3].Pitch != "C" || scale[3].Pentatonic || !scale[4].Pentatonic {
		t.Fatalf("unexpected scale: %+v", scale)
	}

	w := get(t, srv, "/api/keys/F/chords")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown key, got %d", w.Code)
	}
}

func TestGrid(t *testing.T) {
	srv := New(model.ServerConfig{})
	w := get(t, srv, "/api/grid?key=D&degrees=true&pentatonic=true")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var grid gridResponse
	decode(t, w, &grid)
	if grid.Key != "D" || grid.Tuning != "gDGBD" || grid.Chord != nil {
		t.Fatalf("unexpected grid header: %+v", grid)
	}
	if len(grid.Strings) != 5 || len(grid.Frets) != 16 {
		t.Fatalf("unexpected grid size: %d strings, %d frets", len(grid.Strings), len(grid.Frets))
	}
	if grid.Frets[0].Label != "Open" || grid.Frets[12].Marker != "double" {
		t.Fatalf("unexpected fret rows: %+v %+v", grid.Frets[0], grid.Frets[12])
	}
	g := grid.Strings[2].Cells[0]
	if g.Pitch != "G" || g.ScaleDegree != 4 || g.InDisplayedScale || g.Text != "" || !g.Dimmed {
		t.Fatalf("unexpected G cell: %+v", g)
	}
	short := grid.Strings[0]
	if short.StartFret != 5 || short.Cells[4].Playable || !short.Cells[5].Open {
		t.Fatalf("unexpected short string: %+v", short.Cells[4:6])
	}
}

func TestGridChord(t *testing.T) {
	srv := New(model.ServerConfig{})
	var grid gridResponse
	decode(t, get(t, srv, "/api/grid?key=G&chord=g"), &grid)
	if grid.Chord == nil || grid.Chord.Notes != "G - B - D" {
		t.Fatalf("expected G chord, got %+v", grid.Chord)
	}
	if c := grid.Strings[2].Cells[0]; c.Emphasis != "root" || !c.Highlighted {
		t.Fatalf("expected root emphasis on open G, got %+v", c)
	}
}

func TestGridErrors(t *testing.T) {
	srv := New(model.ServerConfig{})
	cases := map[string]int{
		"/api/grid?key=H":               http.StatusNotFound,
		"/api/grid?key=C&chord=F%23dim": http.StatusNotFound,
		"/api/grid?degrees=maybe":       http.StatusBadRequest,
		"/api/grid?find=H":              http.StatusBadRequest,
	}
	for target, want := range cases {
		w := get(t, srv, target)
		if w.Code != want {
			t.Fatalf("%s: expected %d, got %d", target, want, w.Code)
		}
		var body errorResponse
		decode(t, w, &body)
		if body.Error == "" {
			t.Fatalf("%s: expected error message", target)
		}
	}
}

func TestEncodeGrid(t *testing.T) {
	var buf bytes.Buffer
	sel := model.Selection{Key: theory.KeyG, ChordName: "G"}
	if err := EncodeGrid(&buf, fretboard.FromSelection(sel), ""); err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got gridResponse
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Chord == nil || got.Chord.Name != "G" || len(got.Strings) != 5 {
		t.Fatalf("unexpected grid %+v", got)
	}
	if c := got.Strings[2].Cells[0]; c.Emphasis != "root" || c.Pitch != "G" {
		t.Fatalf("unexpected open G cell %+v", c)
	}
	if got.Find != nil {
		t.Fatalf("expected no find block without a pitch")
	}

	buf.Reset()
	if err := EncodeGrid(&buf, fretboard.FromSelection(sel), theory.D); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got = gridResponse{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Find == nil || len(got.Find.Positions) == 0 {
		t.Fatalf("expected D positions, got %+v", got.Find)
	}
}

func TestGridFind(t *testing.T) {
	srv := New(model.ServerConfig{})
	var grid gridResponse
	decode(t, get(t, srv, "/api/grid?find=bb"), &grid)
	if grid.Find == nil {
		t.Fatalf("expected find block")
	}
	if grid.Find.Pitch != "Bb" || grid.Find.Canonical != "A#" {
		t.Fatalf("unexpected find pitch: %+v", grid.Find)
	}
	want := []positionResponse{
		{String: "5", Fret: 8},
		{String: "4", Fret: 8},
		{String: "3", Fret: 3},
		{String: "3", Fret: 15},
		{String: "2", Fret: 11},
		{String: "1", Fret: 8},
	}
	if len(grid.Find.Positions) != len(want) {
		t.Fatalf("expected %d positions, got %+v", len(want), grid.Find.Positions)
	}
	for i := range want {
		if grid.Find.Positions[i] != want[i] {
			t.Fatalf("position %d: got %+v want %+v", i, grid.Find.Positions[i], want[i])
		}
	}
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/verte-zerg/frets/internal/fretboard"
	"github.com/verte-zerg/frets/internal/model"
	"github.com/verte-zerg/frets/internal/theory"
)

func registerRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/keys", handleKeys)
		r.Get("/keys/{key}/chords", handleChords)
		r.Get("/keys/{key}/scale", handleScale)
		r.Get("/grid", handleGrid)
	})
}

type keyResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type chordResponse struct {
	Name    string   `json:"name"`
	Tones   []string `json:"tones"`
	Quality string   `json:"quality"`
	Notes   string   `json:"notes"`
}

type degreeResponse struct {
	Degree     int    `json:"degree"`
	Pitch      string `json:"pitch"`
	Pentatonic bool   `json:"pentatonic"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func handleKeys(w http.ResponseWriter, _ *http.Request) {
	keys := theory.Keys()
	out := make([]keyResponse, 0, len(keys))
	for _, k := range keys {
		out = append(out, keyResponse{Name: string(k), Label: k.Label()})
	}
	writeJSON(w, http.StatusOK, out)
}

func handleChords(w http.ResponseWriter, r *http.Request) {
	key, err := theory.ParseKey(chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, err)
		return
	}
	chords := key.Chords()
	out := make([]chordResponse, 0, len(chords))
	for _, c := range chords {
		out = append(out, newChordResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	key, err := theory.ParseKey(chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, err)
		return
	}
	scale := key.Scale()
	out := make([]degreeResponse, 0, len(scale))
	for i, p := range scale {
		out = append(out, degreeResponse{
			Degree:     i + 1,
			Pitch:      string(p),
			Pentatonic: theory.IsPentatonicDegree(i + 1),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func handleGrid(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	grid := fretboard.FromSelection(sel)
	resp := newGridResponse(grid)
	if v := r.URL.Query().Get("find"); v != "" {
		p, err := theory.ParsePitch(v)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.Find = newFindResponse(grid, p)
	}
	writeJSON(w, http.StatusOK, resp)
}

var errBadRequest = errors.New("bad request")

func selectionFromQuery(r *http.Request) (model.Selection, error) {
	q := r.URL.Query()
	sel := model.Selection{Key: theory.KeyG}
	if v := q.Get("key"); v != "" {
		key, err := theory.ParseKey(v)
		if err != nil {
			return model.Selection{}, err
		}
		sel.Key = key
	}
	var err error
	if sel.ShowDegrees, err = parseBool(q.Get("degrees"), "degrees"); err != nil {
		return model.Selection{}, err
	}
	if sel.Pentatonic, err = parseBool(q.Get("pentatonic"), "pentatonic"); err != nil {
		return model.Selection{}, err
	}
	if name := q.Get("chord"); name != "" {
		chord, err := sel.Key.Chord(name)
		if err != nil {
			return model.Selection{}, err
		}
		sel = sel.WithChord(chord.Name)
	}
	return sel, nil
}

func parseBool(v, name string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: invalid %s value %q", errBadRequest, name, v)
	}
	return b, nil
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, theory.ErrUnknownKey), errors.Is(err, theory.ErrUnknownChord):
		status = http.StatusNotFound
	case errors.Is(err, errBadRequest), errors.Is(err, theory.ErrUnknownPitch):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Best-effort: headers are already sent.
		_ = err
	}
}

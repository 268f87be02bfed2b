package chart

import (
	"bytes"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	tbl := newTable(column{title: "Degree", right: true}, column{title: "Note"}, column{title: "Pentatonic"})
	tbl.add("1", "G", "yes")
	tbl.add("7", "F#", "no")

	lines := tbl.lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Degree Note Pentatonic" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "     1 G    yes       " {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "     7 F#   no        " {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTablePadsShortRowsAndTrimsOutput(t *testing.T) {
	tbl := newTable(column{title: "String"}, column{title: "Fret", right: true})
	tbl.add("5")
	tbl.add("4", "8", "extra")

	var buf bytes.Buffer
	if err := tbl.write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "String Fret\n5\n4         8\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestTableUsesDisplayWidth(t *testing.T) {
	tbl := newTable(column{title: "M"}, column{title: "X"})
	tbl.add("••", "a")
	if got := tbl.lines()[1]; got != "•• a" {
		t.Fatalf("unexpected line %q", got)
	}
}

package relocate

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fixtureLines builds a 20-line document with the four markers on lines
// 2, 5, 10 and 14 (0-based).
func fixtureLines() []string {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("<p>line %02d</p>", i)
	}
	lines[2] = "  <!-- loading placeholder -->"
	lines[5] = "  <!-- crt wrapper -->"
	lines[10] = "      <!-- top left info -->"
	lines[14] = "    <!-- gameplay screen -->"
	return lines
}

func fixtureMarkers() MarkerSet {
	return MarkerSet{
		PlaceholderStart: "<!-- loading placeholder -->",
		PlaceholderEnd:   "<!-- crt wrapper -->",
		OrphanedStart:    "<!-- top left info -->",
		OrphanedEnd:      "<!-- gameplay screen -->",
	}
}

var fixtureHeader = []string{
	"<!-- injected header -->",
	`<div id="loading">`,
	`    class="screen active">`,
	"<!-- bg -->",
	"<!-- bg (moved) -->",
	"",
}

func TestLocate(t *testing.T) {
	t.Parallel()

	pos, err := fixtureMarkers().Locate(fixtureLines())
	if err != nil {
		t.Fatalf("Locate error: %v", err)
	}

	want := Positions{PlaceholderStart: 2, PlaceholderEnd: 5, OrphanedStart: 10, OrphanedEnd: 14}
	if pos != want {
		t.Errorf("positions mismatch: got %+v, want %+v", pos, want)
	}
}

func TestLocate_FirstMatchWins(t *testing.T) {
	t.Parallel()

	lines := fixtureLines()
	lines[18] = lines[10] // duplicate orphaned_start near the tail

	pos, err := fixtureMarkers().Locate(lines)
	if err != nil {
		t.Fatalf("Locate error: %v", err)
	}
	if pos.OrphanedStart != 10 {
		t.Errorf("expected first match at 10, got %d", pos.OrphanedStart)
	}
}

func TestLocate_SubstringAnywhereInLine(t *testing.T) {
	t.Parallel()

	lines := fixtureLines()
	lines[2] = "<span>prefix</span>  <!-- loading placeholder --> <span>suffix</span>"

	pos, err := fixtureMarkers().Locate(lines)
	if err != nil {
		t.Fatalf("Locate error: %v", err)
	}
	if pos.PlaceholderStart != 2 {
		t.Errorf("expected match at 2, got %d", pos.PlaceholderStart)
	}
}

func TestLocate_MissingMarker(t *testing.T) {
	t.Parallel()

	lines := fixtureLines()
	lines[5] = "<p>wrapper line removed</p>"

	_, err := fixtureMarkers().Locate(lines)
	if !errors.Is(err, ErrMarkerNotFound) {
		t.Fatalf("expected ErrMarkerNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "placeholder_end") {
		t.Errorf("error should name the missing marker: %v", err)
	}
}

func TestLocate_OutOfOrderRejected(t *testing.T) {
	t.Parallel()

	lines := fixtureLines()
	// Move the orphaned block's start above the placeholder block's end.
	lines[10] = "<p>line 10</p>"
	lines[3] = "      <!-- top left info -->"

	_, err := fixtureMarkers().Locate(lines)
	if !errors.Is(err, ErrMarkerOrder) {
		t.Fatalf("expected ErrMarkerOrder, got %v", err)
	}
}

func TestLocate_AdjacentRegionsAllowed(t *testing.T) {
	t.Parallel()

	// placeholder_end and orphaned_start may share a line: the between
	// region is then empty, which is valid.
	lines := fixtureLines()
	lines[10] = "<p>line 10</p>"
	lines[5] = "  <!-- crt wrapper --> <!-- top left info -->"

	pos, err := fixtureMarkers().Locate(lines)
	if err != nil {
		t.Fatalf("Locate error: %v", err)
	}
	if pos.PlaceholderEnd != 5 || pos.OrphanedStart != 5 {
		t.Errorf("expected shared index 5, got %+v", pos)
	}
}

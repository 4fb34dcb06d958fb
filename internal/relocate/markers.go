package relocate

import (
	"errors"
	"fmt"
	"strings"

	"relomark/internal/logging"
)

// Sentinel errors for marker location failures. Both are detected before any
// mutation, so the source file is always left untouched.
var (
	ErrMarkerNotFound = errors.New("marker not found")
	ErrMarkerOrder    = errors.New("markers out of order")
)

// MarkerSet holds the four literal markers that bound the regions.
type MarkerSet struct {
	PlaceholderStart string
	PlaceholderEnd   string
	OrphanedStart    string
	OrphanedEnd      string
}

// Positions holds the first-match line index (0-based) of each marker.
type Positions struct {
	PlaceholderStart int
	PlaceholderEnd   int
	OrphanedStart    int
	OrphanedEnd      int
}

// indexOf returns the index of the first line containing marker, or -1.
func indexOf(lines []string, marker string) int {
	for i, line := range lines {
		if strings.Contains(line, marker) {
			return i
		}
	}
	return -1
}

// Locate scans the lines once per marker, keeping the first match for each,
// and validates the relative order of the results.
func (m MarkerSet) Locate(lines []string) (Positions, error) {
	var pos Positions
	probes := []struct {
		name   string
		marker string
		dst    *int
	}{
		{"placeholder_start", m.PlaceholderStart, &pos.PlaceholderStart},
		{"placeholder_end", m.PlaceholderEnd, &pos.PlaceholderEnd},
		{"orphaned_start", m.OrphanedStart, &pos.OrphanedStart},
		{"orphaned_end", m.OrphanedEnd, &pos.OrphanedEnd},
	}

	for _, p := range probes {
		idx := indexOf(lines, p.marker)
		if idx < 0 {
			return Positions{}, fmt.Errorf("%w: %s (%q)", ErrMarkerNotFound, p.name, p.marker)
		}
		*p.dst = idx
		logging.LocateDebug("marker %s matched line %d", p.name, idx+1)
	}

	if err := pos.validate(); err != nil {
		return Positions{}, err
	}
	return pos, nil
}

// validate enforces placeholder_start < placeholder_end <= orphaned_start <
// orphaned_end. Any other arrangement makes the region slices overlap or
// invert, so it is rejected rather than silently miscut.
func (p Positions) validate() error {
	ordered := p.PlaceholderStart < p.PlaceholderEnd &&
		p.PlaceholderEnd <= p.OrphanedStart &&
		p.OrphanedStart < p.OrphanedEnd
	if !ordered {
		return fmt.Errorf("%w: placeholder %d..%d, orphaned %d..%d",
			ErrMarkerOrder,
			p.PlaceholderStart, p.PlaceholderEnd,
			p.OrphanedStart, p.OrphanedEnd)
	}
	return nil
}

package relocate

import (
	"fmt"

	"relomark/internal/logging"

	"github.com/google/uuid"
)

// Options control a single relocation run.
type Options struct {
	Markers MarkerSet
	Header  []string
	Output  string // destination path; empty means overwrite the input
	DryRun  bool   // locate and reassemble but write nothing
}

// Result describes a completed (or previewed) relocation.
type Result struct {
	RunID     string
	Positions Positions
	Stats     Stats
	Output    string // path written; empty on dry-run
	Before    *Document
	After     *Document
}

// Apply reads the file at path, locates the markers, reassembles the
// document and writes the result. If any marker is missing or the positions
// are out of order the file is left byte-for-byte untouched.
func Apply(path string, opts Options) (*Result, error) {
	runID := uuid.NewString()
	logging.Locate("run %s: reading %s", runID, path)

	doc, err := LoadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	pos, err := opts.Markers.Locate(doc.Lines)
	if err != nil {
		return nil, err
	}
	logging.Locate("run %s: placeholder %d..%d, orphaned %d..%d",
		runID, pos.PlaceholderStart, pos.PlaceholderEnd, pos.OrphanedStart, pos.OrphanedEnd)

	newLines, stats := Reassemble(doc.Lines, pos, opts.Header)
	after := &Document{Lines: newLines, TrailingNewline: doc.TrailingNewline}

	res := &Result{
		RunID:     runID,
		Positions: pos,
		Stats:     stats,
		Before:    doc,
		After:     after,
	}

	if opts.DryRun {
		logging.Write("run %s: dry-run, nothing written", runID)
		return res, nil
	}

	dst := opts.Output
	if dst == "" {
		dst = path
	}
	if err := after.WriteAtomic(dst); err != nil {
		logging.WriteError("run %s: %v", runID, err)
		return nil, fmt.Errorf("write %s: %w", dst, err)
	}
	res.Output = dst
	logging.Write("run %s: wrote %s (%d -> %d lines)", runID, dst, stats.OriginalLines, stats.NewLines)
	return res, nil
}

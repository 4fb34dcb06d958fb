package relocate

// Stats reports before/after line counts for manual inspection.
type Stats struct {
	OriginalLines int
	NewLines      int
	HeaderLines   int
	OrphanedLines int
}

// Reassemble builds the relocated line sequence:
//
//	lines[:placeholder_start]   everything before the placeholder block
//	header                      the injected header lines
//	lines[orphaned_start:orphaned_end]   the relocated orphaned region
//	lines[placeholder_end:orphaned_start]   the span between the two blocks
//	lines[orphaned_end:]        the tail
//
// The placeholder gap lines[placeholder_start:placeholder_end] is consumed
// by the header, so the new count is original + len(header) - gap.
func Reassemble(lines []string, pos Positions, header []string) ([]string, Stats) {
	orphaned := lines[pos.OrphanedStart:pos.OrphanedEnd]

	out := make([]string, 0, len(lines)+len(header))
	out = append(out, lines[:pos.PlaceholderStart]...)
	out = append(out, header...)
	out = append(out, orphaned...)
	out = append(out, lines[pos.PlaceholderEnd:pos.OrphanedStart]...)
	out = append(out, lines[pos.OrphanedEnd:]...)

	stats := Stats{
		OriginalLines: len(lines),
		NewLines:      len(out),
		HeaderLines:   len(header),
		OrphanedLines: len(orphaned),
	}
	return out, stats
}

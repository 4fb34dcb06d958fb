// Package diff computes line-level diffs for change previews.
// Built on the sergi/go-diff engine rather than a hand-rolled LCS.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineType classifies a diff line.
type LineType int

const (
	LineContext LineType = iota // Unchanged context line
	LineAdded                   // Added line
	LineRemoved                 // Removed line
)

// Line is a single line in the diff. OldNum/NewNum are 1-based and zero when
// the line does not exist on that side.
type Line struct {
	OldNum  int
	NewNum  int
	Content string
	Type    LineType
}

// Hunk is a group of changes with surrounding context.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Compute returns hunks describing the change from oldContent to newContent
// with contextLines of surrounding context.
func Compute(oldContent, newContent string, contextLines int) []Hunk {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // disable timeout for accuracy

	// Line-level reduction avoids newline boundary artifacts when
	// converting char diffs back to line ops.
	a, b, lineArray := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	return group(toLines(diffs), contextLines)
}

// Unified renders the change in unified diff style. Returns "" when the
// contents are identical.
func Unified(oldPath, newPath, oldContent, newContent string) string {
	hunks := Compute(oldContent, newContent, 3)
	if len(hunks) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", oldPath, newPath)
	for _, h := range hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			switch l.Type {
			case LineAdded:
				sb.WriteString("+")
			case LineRemoved:
				sb.WriteString("-")
			default:
				sb.WriteString(" ")
			}
			sb.WriteString(l.Content)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// toLines converts diffmatchpatch diffs to numbered line records.
func toLines(diffs []diffmatchpatch.Diff) []Line {
	var out []Line
	oldNum, newNum := 0, 0

	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" && d.Text == "" {
			continue
		}
		for _, content := range strings.Split(text, "\n") {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldNum++
				newNum++
				out = append(out, Line{OldNum: oldNum, NewNum: newNum, Content: content, Type: LineContext})
			case diffmatchpatch.DiffDelete:
				oldNum++
				out = append(out, Line{OldNum: oldNum, Content: content, Type: LineRemoved})
			case diffmatchpatch.DiffInsert:
				newNum++
				out = append(out, Line{NewNum: newNum, Content: content, Type: LineAdded})
			}
		}
	}
	return out
}

// group clusters changed lines into hunks, merging clusters whose context
// windows would overlap.
func group(all []Line, context int) []Hunk {
	var hunks []Hunk
	n := len(all)
	i := 0

	for i < n {
		if all[i].Type == LineContext {
			i++
			continue
		}

		start := i - context
		if start < 0 {
			start = 0
		}

		end := i
		for j := i + 1; j < n; j++ {
			if all[j].Type != LineContext {
				end = j
			} else if j-end > 2*context {
				break
			}
		}

		stop := end + context + 1
		if stop > n {
			stop = n
		}

		h := Hunk{
			OldStart: all[start].OldNum,
			NewStart: all[start].NewNum,
			Lines:    append([]Line(nil), all[start:stop]...),
		}
		for _, l := range h.Lines {
			if l.Type != LineAdded {
				h.OldCount++
			}
			if l.Type != LineRemoved {
				h.NewCount++
			}
		}
		hunks = append(hunks, h)
		i = stop
	}
	return hunks
}

// Package htmlcheck runs advisory structure checks on edited markup.
// Findings are warnings only: relomark edits lines, not a DOM, so a check
// failure never blocks a write.
package htmlcheck

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Warning is a non-fatal structural finding.
type Warning struct {
	Message string
}

// Container elements whose balance a relocation is most likely to break.
var trackedAtoms = []atom.Atom{atom.Div, atom.Section, atom.Main, atom.Header, atom.Footer}

// Check tokenizes content and reports advisory findings: unbalanced
// container tags and markers that occur more than once after the edit.
func Check(content string, markers []string) []Warning {
	var warns []Warning

	depth := make(map[atom.Atom]int, len(trackedAtoms))
	z := html.NewTokenizer(strings.NewReader(content))
loop:
	for {
		switch z.Next() {
		case html.ErrorToken:
			// Tokenizer reports io.EOF at end of input.
			break loop
		case html.StartTagToken:
			if tok := z.Token(); tracked(tok.DataAtom) {
				depth[tok.DataAtom]++
			}
		case html.EndTagToken:
			tok := z.Token()
			if !tracked(tok.DataAtom) {
				continue
			}
			depth[tok.DataAtom]--
			if depth[tok.DataAtom] < 0 {
				warns = append(warns, Warning{
					Message: fmt.Sprintf("unexpected </%s> with no matching open tag", tok.Data),
				})
				depth[tok.DataAtom] = 0
			}
		}
	}

	for _, a := range trackedAtoms {
		if d := depth[a]; d > 0 {
			warns = append(warns, Warning{
				Message: fmt.Sprintf("%d unclosed <%s> element(s)", d, a.String()),
			})
		}
	}

	for _, m := range markers {
		if m == "" {
			continue
		}
		if n := strings.Count(content, m); n > 1 {
			warns = append(warns, Warning{
				Message: fmt.Sprintf("marker %q appears %d times", m, n),
			})
		}
	}

	return warns
}

func tracked(a atom.Atom) bool {
	for _, t := range trackedAtoms {
		if a == t {
			return true
		}
	}
	return false
}

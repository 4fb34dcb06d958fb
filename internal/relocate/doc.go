// Package relocate implements marker-based block relocation on line-oriented
// text files.
//
// A document is read as an ordered sequence of UTF-8 lines. Four literal
// markers are located by first-match substring scans, the orphaned region is
// extracted, and the document is reassembled with that region moved under an
// injected header block. Nothing is written unless every marker is found and
// the positions are in a sane order; writes are staged to a temp file and
// renamed into place.
package relocate

package relocate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"relomark/internal/logging"
)

// Document is an ordered sequence of text lines read from one file.
// TrailingNewline records whether the source ended with a newline so the
// output reproduces it exactly.
type Document struct {
	Lines           []string
	TrailingNewline bool
}

// LoadDocument reads path as UTF-8 text and splits it into lines.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseDocument(string(data)), nil
}

// ParseDocument splits content into lines, recording the trailing newline.
func ParseDocument(content string) *Document {
	doc := &Document{TrailingNewline: strings.HasSuffix(content, "\n")}
	if doc.TrailingNewline {
		content = strings.TrimSuffix(content, "\n")
	}
	if content == "" && !doc.TrailingNewline {
		doc.Lines = []string{}
		return doc
	}
	doc.Lines = strings.Split(content, "\n")
	return doc
}

// Content joins the lines back into file content.
func (d *Document) Content() string {
	s := strings.Join(d.Lines, "\n")
	if d.TrailingNewline {
		s += "\n"
	}
	return s
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// WriteAtomic writes the document to path via a temp file in the same
// directory followed by a rename, so a failure mid-write never truncates an
// existing destination. When overwriting, the previous file mode is kept.
func (d *Document) WriteAtomic(path string) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".relomark-*")
	if err != nil {
		return fmt.Errorf("stage temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(d.Content()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("set file mode: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}

	logging.WriteDebug("staged write renamed into %s (%d lines)", path, len(d.Lines))
	return nil
}

package htmlcheck

import (
	"strings"
	"testing"
)

func TestCheck_BalancedDocument(t *testing.T) {
	t.Parallel()

	content := `<html><body>
<div id="a"><section><p>text</p></section></div>
<div id="b"></div>
</body></html>`

	if warns := Check(content, nil); len(warns) != 0 {
		t.Errorf("expected no warnings, got %v", warns)
	}
}

func TestCheck_UnclosedDiv(t *testing.T) {
	t.Parallel()

	content := `<div id="a"><div id="b"></div>`

	warns := Check(content, nil)
	if len(warns) != 1 {
		t.Fatalf("expected one warning, got %v", warns)
	}
	if !strings.Contains(warns[0].Message, "unclosed <div>") {
		t.Errorf("unexpected warning: %s", warns[0].Message)
	}
}

func TestCheck_StrayEndTag(t *testing.T) {
	t.Parallel()

	content := `<div></div></div>`

	warns := Check(content, nil)
	if len(warns) != 1 {
		t.Fatalf("expected one warning, got %v", warns)
	}
	if !strings.Contains(warns[0].Message, "</div>") {
		t.Errorf("unexpected warning: %s", warns[0].Message)
	}
}

func TestCheck_DuplicateMarker(t *testing.T) {
	t.Parallel()

	content := "<div><!-- m --></div>\n<div><!-- m --></div>\n"

	warns := Check(content, []string{"<!-- m -->", "<!-- absent -->"})
	if len(warns) != 1 {
		t.Fatalf("expected one warning, got %v", warns)
	}
	if !strings.Contains(warns[0].Message, "appears 2 times") {
		t.Errorf("unexpected warning: %s", warns[0].Message)
	}
}

func TestCheck_UntrackedTagsIgnored(t *testing.T) {
	t.Parallel()

	// Unbalanced inline tags are the HTML parser's problem, not ours.
	content := `<div><span><b>text</div>`

	if warns := Check(content, nil); len(warns) != 0 {
		t.Errorf("expected no warnings for inline tags, got %v", warns)
	}
}

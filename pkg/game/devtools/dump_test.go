package devtools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"signalstation/pkg/game/content"
)

func TestDumpContent_IncludesEverySection(t *testing.T) {
	store, err := content.LoadDefault()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	DumpContent(&buf, store)
	out := color.ClearCode(buf.String())

	for _, sec := range store.Sections() {
		if !strings.Contains(out, sec.Title) {
			t.Errorf("dump missing section title %q", sec.Title)
		}
		for _, bullet := range sec.Bullets {
			word := strings.Fields(bullet)[0]
			if !strings.Contains(out, word) {
				t.Errorf("dump missing bullet text from section %q", sec.ID)
			}
		}
		if sec.Link != nil && !strings.Contains(out, sec.Link.URL) {
			t.Errorf("dump missing link URL for section %q", sec.ID)
		}
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four five six seven eight", 15, "")
	if len(lines) < 2 {
		t.Fatalf("wrap returned %d lines, want multiple", len(lines))
	}
	for _, line := range lines {
		if len(line) > 15+8 {
			t.Errorf("line %q exceeds width", line)
		}
	}

	if got := wrap("", 10, ""); got != nil {
		t.Errorf("wrap(\"\") = %v, want nil", got)
	}
}

package content

import (
	"strings"
	"testing"
)

const sampleDoc = `
sections:
  - id: summary
    title: Summary
    bullets:
      - first bullet
      - second bullet
    link:
      label: Site
      url: https://example.com
  - id: skills
    title: Skills
    bullets:
      - Go
`

func TestParse_ValidDocument(t *testing.T) {
	s, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() = %v, want nil", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	sec, ok := s.Lookup("summary")
	if !ok {
		t.Fatal("Lookup(summary) not found")
	}
	if sec.Title != "Summary" {
		t.Errorf("Title = %q, want %q", sec.Title, "Summary")
	}
	if len(sec.Bullets) != 2 || sec.Bullets[0] != "first bullet" {
		t.Errorf("Bullets = %v, want ordered bullets from document", sec.Bullets)
	}
	if sec.Link == nil || sec.Link.URL != "https://example.com" {
		t.Errorf("Link = %+v, want url https://example.com", sec.Link)
	}
}

func TestParse_PreservesDocumentOrder(t *testing.T) {
	s, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	secs := s.Sections()
	if secs[0].ID != "summary" || secs[1].ID != "skills" {
		t.Errorf("Sections() order = [%s %s], want [summary skills]", secs[0].ID, secs[1].ID)
	}
}

func TestLookup_AbsentID(t *testing.T) {
	s, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Lookup("nope"); ok {
		t.Error("Lookup(nope) found a section, want absent")
	}
}

func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"empty document", "sections: []", "no sections"},
		{"missing id", "sections:\n  - title: T", "no id"},
		{"missing title", "sections:\n  - id: a", "no title"},
		{"duplicate id", "sections:\n  - id: a\n    title: A\n  - id: a\n    title: B", "duplicate"},
		{"not yaml", "{{{{", "parsing"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.doc))
			if err == nil {
				t.Fatalf("Parse(%s) = nil error, want error containing %q", c.name, c.want)
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("error = %q, want it to contain %q", err, c.want)
			}
		})
	}
}

func TestLoadDefault_EmbeddedDocumentIsValid(t *testing.T) {
	s, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() = %v, want nil", err)
	}
	if s.Len() == 0 {
		t.Error("embedded document has no sections")
	}
	// Every embedded section should render something.
	for _, sec := range s.Sections() {
		if len(sec.Bullets) == 0 {
			t.Errorf("section %q has no bullets", sec.ID)
		}
	}
}

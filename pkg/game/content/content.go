// Package content models the resume document: an ordered list of sections,
// each with a title, bullets and an optional link. The document is loaded
// once at startup from YAML and is read-only afterwards; a load failure is
// fatal to the interactive experience (there is no retry).
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed sections.yaml
var defaultDocument []byte

// Link is an optional external reference attached to a section.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Section is one resume topic. Bullet order is significant and rendered
// verbatim.
type Section struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Bullets []string `yaml:"bullets"`
	Link    *Link    `yaml:"link"`
}

// Store resolves section ids to displayable content. Lookups are synchronous;
// the document is fully resident after Load.
type Store struct {
	sections []Section
	byID     map[string]Section
}

type document struct {
	Sections []Section `yaml:"sections"`
}

// Parse builds a store from a YAML document.
func Parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing content document: %w", err)
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("content document has no sections")
	}

	s := &Store{
		sections: doc.Sections,
		byID:     make(map[string]Section, len(doc.Sections)),
	}
	for i, sec := range doc.Sections {
		if sec.ID == "" {
			return nil, fmt.Errorf("section %d has no id", i)
		}
		if sec.Title == "" {
			return nil, fmt.Errorf("section %q has no title", sec.ID)
		}
		if _, dup := s.byID[sec.ID]; dup {
			return nil, fmt.Errorf("duplicate section id %q", sec.ID)
		}
		s.byID[sec.ID] = sec
	}
	return s, nil
}

// LoadFile loads a content document from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content document: %w", err)
	}
	return Parse(data)
}

// LoadDefault loads the embedded content document.
func LoadDefault() (*Store, error) {
	return Parse(defaultDocument)
}

// Lookup resolves a section id. The second result is false when no section
// carries that id.
func (s *Store) Lookup(id string) (Section, bool) {
	sec, ok := s.byID[id]
	return sec, ok
}

// Sections returns the sections in document order, for the index list.
func (s *Store) Sections() []Section {
	return s.sections
}

// Len returns the number of sections.
func (s *Store) Len() int {
	return len(s.sections)
}

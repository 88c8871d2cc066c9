// Package stack holds the transient state of the stack generator: the
// per-section selection, the view switch and the mobile drawer flag.
package stack

import (
	"github.com/phravins/stackgen/internal/catalog"
)

// Selection maps a section id to at most one chosen option value.
// An empty value means nothing is selected in that section.
type Selection struct {
	catalog catalog.Catalog
	chosen  map[string]string
}

// NewSelection returns a selection with every catalog section present and empty.
func NewSelection(c catalog.Catalog) Selection {
	chosen := make(map[string]string, c.Len())
	for _, id := range c.SectionIDs() {
		chosen[id] = ""
	}
	return Selection{catalog: c, chosen: chosen}
}

// Toggle applies the exclusive toggle rule to section: choosing the current
// value clears the section, any other value replaces it. Sections and values
// outside the catalog are ignored. It reports whether the selection changed.
func (s *Selection) Toggle(section, value string) bool {
	current, ok := s.chosen[section]
	if !ok {
		return false
	}
	if _, ok := s.catalog.Option(section, value); !ok {
		return false
	}
	if current == value {
		s.chosen[section] = ""
	} else {
		s.chosen[section] = value
	}
	return true
}

// Selected returns the chosen value for section, or "" when none.
func (s Selection) Selected(section string) string {
	return s.chosen[section]
}

// IsSelected reports whether value is the chosen option of section.
func (s Selection) IsSelected(section, value string) bool {
	return value != "" && s.chosen[section] == value
}

// IsDisabled reports whether value must be rendered non-interactive:
// its section already holds a different choice.
func (s Selection) IsDisabled(section, value string) bool {
	current := s.chosen[section]
	return current != "" && current != value
}

// Empty reports whether no section holds a choice.
func (s Selection) Empty() bool {
	for _, v := range s.chosen {
		if v != "" {
			return false
		}
	}
	return true
}

// Values returns a copy of the section to value mapping, including empty sections.
func (s Selection) Values() map[string]string {
	out := make(map[string]string, len(s.chosen))
	for k, v := range s.chosen {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	return Selection{catalog: s.catalog, chosen: s.Values()}
}

// Catalog returns the catalog the selection draws from.
func (s Selection) Catalog() catalog.Catalog {
	return s.catalog
}

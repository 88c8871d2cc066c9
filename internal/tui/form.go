package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/phravins/stackgen/internal/catalog"
)

type rowKind int

const (
	rowHeader rowKind = iota
	rowOption
)

// formRow is one visible line of a filter form: a section header or an
// option of an expanded section.
type formRow struct {
	kind    rowKind
	section int
	option  int
}

// optionState answers how an option is drawn.
type optionState func(sectionID, value string) (checked, disabled bool)

// filterForm is a list of collapsible sections with a cursor. It knows
// nothing about selection; callers decide what a toggle means.
type filterForm struct {
	sections  []catalog.Section
	collapsed map[string]bool
	cursor    int
}

func newFilterForm(c catalog.Catalog) filterForm {
	return filterForm{
		sections:  c.Sections(),
		collapsed: make(map[string]bool),
	}
}

func (f filterForm) rows() []formRow {
	var rows []formRow
	for si, s := range f.sections {
		rows = append(rows, formRow{kind: rowHeader, section: si})
		if f.collapsed[s.ID] {
			continue
		}
		for oi := range s.Options {
			rows = append(rows, formRow{kind: rowOption, section: si, option: oi})
		}
	}
	return rows
}

func (f filterForm) current() (formRow, bool) {
	rows := f.rows()
	if f.cursor < 0 || f.cursor >= len(rows) {
		return formRow{}, false
	}
	return rows[f.cursor], true
}

func (f *filterForm) move(delta int) {
	n := len(f.rows())
	if n == 0 {
		return
	}
	f.cursor += delta
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor >= n {
		f.cursor = n - 1
	}
}

// toggleSection collapses or expands section si. Rows removed by a collapse
// always follow the header, so the cursor only needs clamping.
func (f *filterForm) toggleSection(si int) {
	id := f.sections[si].ID
	f.collapsed[id] = !f.collapsed[id]
	f.move(0)
}

func (f filterForm) isExpanded(id string) bool {
	return !f.collapsed[id]
}

// focus expands section si and puts the cursor on option oi.
func (f *filterForm) focus(si, oi int) {
	f.collapsed[f.sections[si].ID] = false
	for i, r := range f.rows() {
		if r.kind == rowOption && r.section == si && r.option == oi {
			f.cursor = i
			return
		}
	}
}

// match returns the option whose label best fuzzy-matches query.
func (f filterForm) match(query string) (si, oi int, ok bool) {
	if query == "" {
		return 0, 0, false
	}
	type ref struct{ si, oi int }
	var labels []string
	var refs []ref
	for si, s := range f.sections {
		for oi, o := range s.Options {
			labels = append(labels, o.Label)
			refs = append(refs, ref{si, oi})
		}
	}
	matches := fuzzy.Find(query, labels)
	if len(matches) == 0 {
		return 0, 0, false
	}
	best := refs[matches[0].Index]
	return best.si, best.oi, true
}

func (f filterForm) option(r formRow) (catalog.Section, catalog.Option) {
	s := f.sections[r.section]
	return s, s.Options[r.option]
}

func (f filterForm) view(state optionState, focused bool, width int) string {
	var b strings.Builder
	for i, r := range f.rows() {
		prefix := "  "
		if focused && i == f.cursor {
			prefix = cursorStyle.Render("> ")
		}
		s := f.sections[r.section]

		var line string
		if r.kind == rowHeader {
			if i > 0 {
				b.WriteString("\n")
			}
			sign := "−"
			if f.collapsed[s.ID] {
				sign = "+"
			}
			name := sectionHeaderStyle.Render(s.Name)
			gap := width - lipgloss.Width(prefix) - lipgloss.Width(name) - 1
			if gap < 1 {
				gap = 1
			}
			line = name + strings.Repeat(" ", gap) + disclosureSignStyle.Render(sign)
		} else {
			o := s.Options[r.option]
			checked, disabled := state(s.ID, o.Value)
			box := "[ ]"
			if checked {
				box = "[x]"
			}
			style := optionStyle
			switch {
			case disabled:
				style = disabledOptionStyle
			case checked:
				style = checkedOptionStyle
			}
			line = "  " + style.Render(box+" "+o.Label)
		}
		b.WriteString(prefix + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// mobileChecks holds the drawer's own checkbox flags. They start unchecked,
// toggle freely and are never copied into the selection.
type mobileChecks map[string][]bool

func newMobileChecks(c catalog.Catalog) mobileChecks {
	checks := make(mobileChecks, c.Len())
	for _, s := range c.Sections() {
		checks[s.ID] = make([]bool, len(s.Options))
	}
	return checks
}

func (mc mobileChecks) toggle(sectionID string, oi int) {
	if flags, ok := mc[sectionID]; ok && oi >= 0 && oi < len(flags) {
		flags[oi] = !flags[oi]
	}
}

func (mc mobileChecks) state(sections []catalog.Section) optionState {
	return func(sectionID, value string) (bool, bool) {
		for _, s := range sections {
			if s.ID != sectionID {
				continue
			}
			for oi, o := range s.Options {
				if o.Value == value {
					return mc[sectionID][oi], false
				}
			}
		}
		return false, false
	}
}

package web

import (
	"net/url"

	"github.com/phravins/stackgen/internal/catalog"
	"github.com/phravins/stackgen/internal/stack"
)

// pageState is everything a page render depends on. It travels in the query
// string, so a render is a pure function of the request URL.
type pageState struct {
	selection stack.Selection
	view      stack.View
	drawer    stack.Drawer
}

// parseState reads a pageState from query values. Keys and values outside
// the catalog are dropped.
func parseState(c catalog.Catalog, q url.Values) pageState {
	s := pageState{selection: stack.NewSelection(c)}
	for _, id := range c.SectionIDs() {
		if v := q.Get(id); v != "" {
			s.selection.Toggle(id, v)
		}
	}
	if q.Get("view") == stack.Generated.String() {
		s.view.Generate()
	}
	if q.Get("drawer") == stack.DrawerOpen.String() {
		s.drawer.Open()
	}
	return s
}

func (s pageState) clone() pageState {
	s.selection = s.selection.Clone()
	return s
}

func (s pageState) values() url.Values {
	q := url.Values{}
	for _, id := range s.selection.Catalog().SectionIDs() {
		if v := s.selection.Selected(id); v != "" {
			q.Set(id, v)
		}
	}
	if s.view == stack.Generated {
		q.Set("view", s.view.String())
	}
	if s.drawer.IsOpen() {
		q.Set("drawer", s.drawer.String())
	}
	return q
}

func (s pageState) href() string {
	if q := s.values().Encode(); q != "" {
		return "/?" + q
	}
	return "/"
}

func (s pageState) toggleHref(sectionID, value string) string {
	next := s.clone()
	next.selection.Toggle(sectionID, value)
	return next.href()
}

func (s pageState) generateHref() string {
	next := s.clone()
	next.view.Generate()
	return next.href()
}

func (s pageState) backHref() string {
	next := s.clone()
	next.view.Back()
	return next.href()
}

func (s pageState) drawerHref(open bool) string {
	next := s.clone()
	if open {
		next.drawer.Open()
	} else {
		next.drawer.Close()
	}
	return next.href()
}

// Package section maps navigation paths onto the tabs of each business area.
package section

import (
	"strings"

	"bizdash/internal/dashboard"
)

// Tab is a static tab descriptor.
type Tab struct {
	ID    string         `json:"id"`
	Label string         `json:"label"`
	Path  string         `json:"path"`
	Icon  string         `json:"icon"`
	View  dashboard.Kind `json:"view"`
}

// Section is one business area: a root path and its ordered tabs. The first tab
// is the section root and the fallback for paths that match nothing.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Root  string `json:"root"`
	Icon  string `json:"icon"`
	Tabs  []Tab  `json:"tabs"`
}

// StripItem is a tab as drawn in the tab strip.
type StripItem struct {
	Tab
	Active bool `json:"active"`
}

// Resolve returns the id of the tab that owns path. A tab owns path when its
// path equals path, or, for tabs other than the section root, when its path is
// a prefix of path. Tabs are tried in order. Unmatched paths fall back to the
// first tab.
func (s Section) Resolve(path string) string {
	return s.resolve(path).ID
}

func (s Section) resolve(path string) Tab {
	for _, t := range s.Tabs {
		if path == t.Path {
			return t
		}
		if t.Path != s.Root && strings.HasPrefix(path, t.Path) {
			return t
		}
	}
	if len(s.Tabs) == 0 {
		return Tab{}
	}
	return s.Tabs[0]
}

// Mount returns the tab resolved for path; its View is the view to render.
func (s Section) Mount(path string) Tab {
	return s.resolve(path)
}

// Strip returns the tab strip for path with exactly the resolved tab active.
func (s Section) Strip(path string) []StripItem {
	active := s.Resolve(path)
	out := make([]StripItem, len(s.Tabs))
	for i, t := range s.Tabs {
		out[i] = StripItem{Tab: t, Active: t.ID == active}
	}
	return out
}

// TabByID looks a tab up by id.
func (s Section) TabByID(id string) (Tab, bool) {
	for _, t := range s.Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

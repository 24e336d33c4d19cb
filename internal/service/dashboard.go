package service

import (
	"context"
	"errors"
	"fmt"

	"bizdash/internal/dashboard"
	"bizdash/internal/section"
	"bizdash/internal/storage"
)

var ErrSectionNotFound = errors.New("section not found")

type NavItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Root   string `json:"root"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// Page - всё, что нужно для отрисовки одной страницы.
type Page struct {
	Path     string              `json:"path"`
	Sections []NavItem           `json:"sections"`
	Section  string              `json:"section"`
	Title    string              `json:"title"`
	Tabs     []section.StripItem `json:"tabs"`
	ActiveID string              `json:"active_id"`
	View     dashboard.View      `json:"view"`
}

type Resolution struct {
	Section string `json:"section"`
	ID      string `json:"id"`
}

type DashboardService struct {
	data     *storage.Dataset
	settings *SettingsService
}

func NewDashboardService(data *storage.Dataset, settings *SettingsService) *DashboardService {
	return &DashboardService{data: data, settings: settings}
}

func (s *DashboardService) Sections() []section.Section {
	return section.All()
}

func (s *DashboardService) Resolve(path string) (Resolution, error) {
	const op = "service.dashboard.Resolve"

	sec, ok := section.Lookup(path)
	if !ok {
		return Resolution{}, fmt.Errorf("%s: %q: %w", op, path, ErrSectionNotFound)
	}
	return Resolution{Section: sec.ID, ID: sec.Resolve(path)}, nil
}

// Page собирает страницу для path. Вкладка и подсветка берутся из одного Mount.
func (s *DashboardService) Page(ctx context.Context, path string, q dashboard.Query) (Page, error) {
	const op = "service.dashboard.Page"

	sec, ok := section.Lookup(path)
	if !ok {
		return Page{}, fmt.Errorf("%s: %q: %w", op, path, ErrSectionNotFound)
	}

	tab := sec.Mount(path)

	in := dashboard.Input{Data: s.data, Query: q}
	if dashboard.NeedsSettings(tab.View) {
		st, err := s.settings.Load(ctx)
		if err != nil {
			return Page{}, fmt.Errorf("%s: %w", op, err)
		}
		in.Integrations = st.Integrations
		in.Notifications = st.Notifications
	}

	view, err := dashboard.Build(tab.View, in)
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", op, err)
	}

	return Page{
		Path:     path,
		Sections: nav(sec.ID),
		Section:  sec.ID,
		Title:    sec.Title,
		Tabs:     sec.Strip(path),
		ActiveID: tab.ID,
		View:     view,
	}, nil
}

func nav(active string) []NavItem {
	all := section.All()
	out := make([]NavItem, len(all))
	for i, sec := range all {
		out[i] = NavItem{ID: sec.ID, Title: sec.Title, Root: sec.Root, Icon: sec.Icon, Active: sec.ID == active}
	}
	return out
}

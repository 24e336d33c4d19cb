package section

import (
	"strings"

	"bizdash/internal/dashboard"
)

var (
	CRM = Section{
		ID:    "crm",
		Title: "CRM",
		Root:  "/crm",
		Icon:  "users",
		Tabs: []Tab{
			{ID: "overview", Label: "Overview", Path: "/crm", Icon: "layout-dashboard", View: dashboard.CRMOverview},
			{ID: "customers", Label: "Customers", Path: "/crm/customers", Icon: "users", View: dashboard.CRMCustomers},
			{ID: "sales", Label: "Sales", Path: "/crm/sales", Icon: "dollar-sign", View: dashboard.CRMSales},
			{ID: "marketing", Label: "Marketing", Path: "/crm/marketing", Icon: "megaphone", View: dashboard.CRMMarketing},
			{ID: "support", Label: "Support", Path: "/crm/support", Icon: "headphones", View: dashboard.CRMSupport},
		},
	}

	Manufacturing = Section{
		ID:    "manufacturing",
		Title: "Manufacturing",
		Root:  "/manufacturing",
		Icon:  "factory",
		Tabs: []Tab{
			{ID: "overview", Label: "Overview", Path: "/manufacturing", Icon: "layout-dashboard", View: dashboard.MfgOverview},
			{ID: "production", Label: "Production", Path: "/manufacturing/production", Icon: "factory", View: dashboard.MfgProduction},
			{ID: "quality", Label: "Quality Control", Path: "/manufacturing/quality", Icon: "clipboard-check", View: dashboard.MfgQuality},
			{ID: "maintenance", Label: "Maintenance", Path: "/manufacturing/maintenance", Icon: "wrench", View: dashboard.MfgMaintenance},
			{ID: "planning", Label: "Planning", Path: "/manufacturing/planning", Icon: "calendar-range", View: dashboard.MfgPlanning},
		},
	}

	Projects = Section{
		ID:    "projects",
		Title: "Projects",
		Root:  "/projects",
		Icon:  "briefcase",
		Tabs: []Tab{
			{ID: "overview", Label: "Overview", Path: "/projects", Icon: "layout-dashboard", View: dashboard.ProjOverview},
			{ID: "active", Label: "Active Projects", Path: "/projects/active", Icon: "briefcase", View: dashboard.ProjActive},
			{ID: "tasks", Label: "Tasks", Path: "/projects/tasks", Icon: "check-square", View: dashboard.ProjTasks},
			{ID: "resources", Label: "Resources", Path: "/projects/resources", Icon: "users", View: dashboard.ProjResources},
			{ID: "calendar", Label: "Calendar", Path: "/projects/calendar", Icon: "calendar", View: dashboard.ProjCalendar},
		},
	}

	Settings = Section{
		ID:    "settings",
		Title: "Settings",
		Root:  "/settings",
		Icon:  "settings",
		Tabs: []Tab{
			{ID: "overview", Label: "General", Path: "/settings", Icon: "settings", View: dashboard.SetGeneral},
			{ID: "profile", Label: "Profile", Path: "/settings/profile", Icon: "user", View: dashboard.SetProfile},
			{ID: "security", Label: "Security", Path: "/settings/security", Icon: "shield", View: dashboard.SetSecurity},
			{ID: "notifications", Label: "Notifications", Path: "/settings/notifications", Icon: "bell", View: dashboard.SetNotifications},
			{ID: "integrations", Label: "Integrations", Path: "/settings/integrations", Icon: "plug", View: dashboard.SetIntegrations},
		},
	}
)

// All lists the sections in navigation order.
func All() []Section {
	return []Section{CRM, Manufacturing, Projects, Settings}
}

// Lookup picks the section by the first segment of path.
func Lookup(path string) (Section, bool) {
	first := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(first, '/'); i >= 0 {
		first = first[:i]
	}
	for _, s := range All() {
		if s.ID == first {
			return s, true
		}
	}
	return Section{}, false
}

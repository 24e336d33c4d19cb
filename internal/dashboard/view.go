// Package dashboard builds the domain views of the business dashboard: summary
// metrics, chart series and filtered record tables, all from an injected dataset.
package dashboard

import (
	"fmt"

	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

// Kind identifies one domain view. Section tabs carry a Kind; the mounted view is
// always built from the Kind of the resolved tab.
type Kind string

const (
	CRMOverview  Kind = "crm.overview"
	CRMCustomers Kind = "crm.customers"
	CRMSales     Kind = "crm.sales"
	CRMMarketing Kind = "crm.marketing"
	CRMSupport   Kind = "crm.support"

	MfgOverview    Kind = "manufacturing.overview"
	MfgProduction  Kind = "manufacturing.production"
	MfgQuality     Kind = "manufacturing.quality"
	MfgMaintenance Kind = "manufacturing.maintenance"
	MfgPlanning    Kind = "manufacturing.planning"

	ProjOverview  Kind = "projects.overview"
	ProjActive    Kind = "projects.active"
	ProjTasks     Kind = "projects.tasks"
	ProjResources Kind = "projects.resources"
	ProjCalendar  Kind = "projects.calendar"

	SetGeneral       Kind = "settings.general"
	SetProfile       Kind = "settings.profile"
	SetSecurity      Kind = "settings.security"
	SetNotifications Kind = "settings.notifications"
	SetIntegrations  Kind = "settings.integrations"
)

type Metric struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
	Trend  string `json:"trend,omitempty"` // up | down
}

type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
	ChartPie  ChartKind = "pie"
	ChartArea ChartKind = "area"
)

type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Chart is handed to the client-side charting library as-is.
type Chart struct {
	Title  string    `json:"title"`
	Kind   ChartKind `json:"kind"`
	Labels []string  `json:"labels"`
	Series []Series  `json:"series"`
}

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Card is a titled block of label/value pairs, used by the form-like settings views.
type Card struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// FilterSpec describes the search box and status dropdown of a view.
type FilterSpec struct {
	Search      string   `json:"search"`
	Status      string   `json:"status"`
	Options     []string `json:"options"`
	Placeholder string   `json:"placeholder"`
}

type View struct {
	Kind        Kind        `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Metrics     []Metric    `json:"metrics,omitempty"`
	Charts      []Chart     `json:"charts,omitempty"`
	Cards       []Card      `json:"cards,omitempty"`
	TableTitle  string      `json:"table_title,omitempty"`
	Table       *Table      `json:"table,omitempty"`
	Filter      *FilterSpec `json:"filter,omitempty"`
}

// Input is everything a view builder may read. Integrations and Notifications
// come from the settings repository, not from Data.
type Input struct {
	Data          *storage.Dataset
	Query         Query
	Integrations  []storage.Integration
	Notifications []storage.NotificationPref
}

type Builder func(in Input) View

var builders = map[Kind]Builder{
	CRMOverview:  crmOverview,
	CRMCustomers: crmCustomers,
	CRMSales:     crmSales,
	CRMMarketing: crmMarketing,
	CRMSupport:   crmSupport,

	MfgOverview:    mfgOverview,
	MfgProduction:  mfgProduction,
	MfgQuality:     mfgQuality,
	MfgMaintenance: mfgMaintenance,
	MfgPlanning:    mfgPlanning,

	ProjOverview:  projOverview,
	ProjActive:    projActive,
	ProjTasks:     projTasks,
	ProjResources: projResources,
	ProjCalendar:  projCalendar,

	SetGeneral:       setGeneral,
	SetProfile:       setProfile,
	SetSecurity:      setSecurity,
	SetNotifications: setNotifications,
	SetIntegrations:  setIntegrations,
}

// Build renders the view registered for kind.
func Build(kind Kind, in Input) (View, error) {
	b, ok := builders[kind]
	if !ok {
		return View{}, fmt.Errorf("dashboard: unknown view %q", kind)
	}
	if in.Data == nil {
		return View{}, fmt.Errorf("dashboard: view %q: nil dataset", kind)
	}
	return b(in), nil
}

// Kinds lists every registered view.
func Kinds() []Kind {
	out := make([]Kind, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	return out
}

// NeedsSettings reports whether the view reads the settings repository.
func NeedsSettings(kind Kind) bool {
	return kind == SetNotifications || kind == SetIntegrations
}

func filterSpec(q Query, placeholder string, options []string) *FilterSpec {
	status := q.Status
	if status == "" {
		status = constants.FilterAll
	}
	return &FilterSpec{
		Search:      q.Search,
		Status:      status,
		Options:     append([]string{constants.FilterAll}, options...),
		Placeholder: placeholder,
	}
}

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

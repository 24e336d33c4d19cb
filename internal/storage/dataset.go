package storage

// Dataset — все демонстрационные данные дашборда. Собирается один раз при старте
// и дальше только читается.
type Dataset struct {
	Customers []Customer `json:"customers" yaml:"customers"`
	Sales     []Sale     `json:"sales" yaml:"sales"`
	Campaigns []Campaign `json:"campaigns" yaml:"campaigns"`
	Tickets   []Ticket   `json:"tickets" yaml:"tickets"`

	Sites       []ProductionSite  `json:"sites" yaml:"sites"`
	Orders      []ProductionOrder `json:"orders" yaml:"orders"`
	Inspections []QualityCheck    `json:"inspections" yaml:"inspections"`
	Maintenance []MaintenanceTask `json:"maintenance" yaml:"maintenance"`
	Plan        []PlanItem        `json:"plan" yaml:"plan"`

	Projects  []Project       `json:"projects" yaml:"projects"`
	Tasks     []Task          `json:"tasks" yaml:"tasks"`
	Resources []Resource      `json:"resources" yaml:"resources"`
	Events    []CalendarEvent `json:"events" yaml:"events"`

	General       GeneralSettings    `json:"general" yaml:"general"`
	Profile       Profile            `json:"profile" yaml:"profile"`
	Security      Security           `json:"security" yaml:"security"`
	Notifications []NotificationPref `json:"notifications" yaml:"notifications"`
	Integrations  []Integration      `json:"integrations" yaml:"integrations"`
}

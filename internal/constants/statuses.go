package constants

// FilterAll — значение фильтра "без фильтра" для всех выпадающих списков статусов.
const FilterAll = "All"

// CRM
const (
	CustomerActive   = "Active"
	CustomerInactive = "Inactive"

	SaleCompleted = "Completed"
	SalePending   = "Pending"

	CampaignActive    = "Active"
	CampaignScheduled = "Scheduled"
	CampaignCompleted = "Completed"

	TicketOpen       = "Open"
	TicketInProgress = "In Progress"
	TicketCompleted  = "Completed"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Manufacturing
const (
	SiteOperational = "Operational"
	SiteMaintenance = "Maintenance"
	SiteOffline     = "Offline"

	OrderRunning   = "Running"
	OrderScheduled = "Scheduled"
	OrderCompleted = "Completed"
	OrderDelayed   = "Delayed"

	QualityPassed  = "Passed"
	QualityFailed  = "Failed"
	QualityPending = "Pending"

	MaintenanceScheduled  = "Scheduled"
	MaintenanceInProgress = "In Progress"
	MaintenanceCompleted  = "Completed"

	PlanOnTrack = "On Track"
	PlanAtRisk  = "At Risk"
	PlanBehind  = "Behind"
)

// Projects
const (
	ProjectActive    = "Active"
	ProjectOnHold    = "On Hold"
	ProjectCompleted = "Completed"

	TaskTodo       = "To Do"
	TaskInProgress = "In Progress"
	TaskDone       = "Done"

	ResourceAvailable  = "Available"
	ResourceAllocated  = "Allocated"
	ResourceOverloaded = "Overloaded"

	EventMeeting   = "Meeting"
	EventMilestone = "Milestone"
	EventDeadline  = "Deadline"
)

// Settings
const (
	SessionCurrent = "Current"
	SessionActive  = "Active"

	ChannelEmail = "Email"
	ChannelPush  = "Push"
	ChannelSMS   = "SMS"

	IntegrationConnected    = "connected"
	IntegrationDisconnected = "disconnected"
)

// Наборы значений для выпадающих списков, в порядке отображения.
var (
	CustomerStatuses    = []string{CustomerActive, CustomerInactive}
	SaleStatuses        = []string{SaleCompleted, SalePending}
	CampaignStatuses    = []string{CampaignActive, CampaignScheduled, CampaignCompleted}
	TicketStatuses      = []string{TicketOpen, TicketInProgress, TicketCompleted}
	SiteStatuses        = []string{SiteOperational, SiteMaintenance, SiteOffline}
	OrderStatuses       = []string{OrderRunning, OrderScheduled, OrderCompleted, OrderDelayed}
	QualityResults      = []string{QualityPassed, QualityFailed, QualityPending}
	MaintenanceStatuses = []string{MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted}
	PlanStatuses        = []string{PlanOnTrack, PlanAtRisk, PlanBehind}
	ProjectStatuses     = []string{ProjectActive, ProjectOnHold, ProjectCompleted}
	TaskStatuses        = []string{TaskTodo, TaskInProgress, TaskDone}
	ResourceStatuses    = []string{ResourceAvailable, ResourceAllocated, ResourceOverloaded}
	EventKinds          = []string{EventMeeting, EventMilestone, EventDeadline}
	SessionStatuses     = []string{SessionCurrent, SessionActive}
	Channels            = []string{ChannelEmail, ChannelPush, ChannelSMS}
	IntegrationStatuses = []string{IntegrationConnected, IntegrationDisconnected}
)

// Tone maps a status value onto a badge colour class used by the templates.
var Tone = map[string]string{
	CustomerActive:          "green",
	CustomerInactive:        "gray",
	SaleCompleted:           "green",
	SalePending:             "yellow",
	CampaignScheduled:       "blue",
	TicketOpen:              "red",
	TicketInProgress:        "yellow",
	PriorityHigh:            "red",
	PriorityMedium:          "yellow",
	PriorityLow:             "gray",
	SiteOperational:         "green",
	SiteMaintenance:         "yellow",
	SiteOffline:             "red",
	OrderRunning:            "blue",
	OrderDelayed:            "red",
	QualityPassed:           "green",
	QualityFailed:           "red",
	PlanOnTrack:             "green",
	PlanAtRisk:              "yellow",
	PlanBehind:              "red",
	ProjectOnHold:           "yellow",
	TaskTodo:                "gray",
	TaskDone:                "green",
	ResourceAvailable:       "green",
	ResourceAllocated:       "blue",
	ResourceOverloaded:      "red",
	EventMeeting:            "blue",
	EventMilestone:          "green",
	EventDeadline:           "red",
	SessionCurrent:          "green",
	IntegrationConnected:    "green",
	IntegrationDisconnected: "gray",
}

package dashboard

import (
	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

var projectColumns = []Column[storage.Project]{
	{Header: "Project", Value: func(p storage.Project) Cell { return Text(p.Name) }},
	{Header: "Manager", Value: func(p storage.Project) Cell { return Text(p.Manager) }},
	{Header: "Progress", Value: func(p storage.Project) Cell { return Progress(p.Progress) }},
	{Header: "Status", Value: func(p storage.Project) Cell { return Badge(p.Status) }},
	{Header: "Start", Value: func(p storage.Project) Cell { return Text(p.Start) }},
	{Header: "End", Value: func(p storage.Project) Cell { return Text(p.End) }},
	{Header: "Budget", Value: func(p storage.Project) Cell { return Money(p.Budget) }},
}

var taskColumns = []Column[storage.Task]{
	{Header: "Task", Value: func(t storage.Task) Cell { return Text(t.Title) }},
	{Header: "Project", Value: func(t storage.Task) Cell { return Text(t.Project) }},
	{Header: "Assignee", Value: func(t storage.Task) Cell { return Text(t.Assignee) }},
	{Header: "Priority", Value: func(t storage.Task) Cell { return Badge(t.Priority) }},
	{Header: "Status", Value: func(t storage.Task) Cell { return Badge(t.Status) }},
	{Header: "Due", Value: func(t storage.Task) Cell { return Text(t.Due) }},
}

var resourceColumns = []Column[storage.Resource]{
	{Header: "Name", Value: func(r storage.Resource) Cell { return Text(r.Name) }},
	{Header: "Role", Value: func(r storage.Resource) Cell { return Text(r.Role) }},
	{Header: "Department", Value: func(r storage.Resource) Cell { return Text(r.Department) }},
	{Header: "Allocation", Value: func(r storage.Resource) Cell { return Progress(r.Allocation) }},
	{Header: "Status", Value: func(r storage.Resource) Cell { return Badge(r.Status) }},
}

var eventColumns = []Column[storage.CalendarEvent]{
	{Header: "Event", Value: func(e storage.CalendarEvent) Cell { return Text(e.Title) }},
	{Header: "Project", Value: func(e storage.CalendarEvent) Cell { return Text(e.Project) }},
	{Header: "Type", Value: func(e storage.CalendarEvent) Cell { return Badge(e.Kind) }},
	{Header: "Date", Value: func(e storage.CalendarEvent) Cell { return Text(e.Date) }},
	{Header: "Time", Value: func(e storage.CalendarEvent) Cell { return Text(e.Time) }},
}

func projOverview(in Input) View {
	return View{
		Kind:        ProjOverview,
		Title:       "Projects Overview",
		Description: "Portfolio health across all projects",
		Metrics: []Metric{
			{Label: "Total Projects", Value: "24", Change: "+3", Trend: "up"},
			{Label: "Active Projects", Value: "12", Change: "+2", Trend: "up"},
			{Label: "Completed This Quarter", Value: "5", Change: "+1", Trend: "up"},
			{Label: "Budget Utilisation", Value: "68%", Change: "+5%", Trend: "up"},
		},
		Charts: []Chart{
			{
				Title:  "Projects by Status",
				Kind:   ChartPie,
				Labels: constants.ProjectStatuses,
				Series: []Series{{Name: "Projects", Values: []float64{12, 3, 9}}},
			},
			{
				Title:  "Tasks Completed",
				Kind:   ChartBar,
				Labels: months,
				Series: []Series{{Name: "Tasks", Values: []float64{45, 52, 61, 58, 70, 66}}},
			},
		},
		TableTitle: "Project Summary",
		Table:      NewTable(in.Data.Projects, Query{}, projectColumns),
	}
}

func projActive(in Input) View {
	return View{
		Kind:        ProjActive,
		Title:       "Active Projects",
		Description: "Progress and budget of running projects",
		Metrics: []Metric{
			{Label: "On Schedule", Value: "9", Change: "+1", Trend: "up"},
			{Label: "At Risk", Value: "2", Change: "-1", Trend: "down"},
			{Label: "Avg. Progress", Value: "58%", Change: "+7%", Trend: "up"},
			{Label: "Total Budget", Value: "$1.2M", Change: "+4%", Trend: "up"},
		},
		Charts: []Chart{
			{
				Title:  "Budget vs Spent",
				Kind:   ChartBar,
				Labels: []string{"Website Redesign", "Mobile App Development", "ERP Migration"},
				Series: []Series{
					{Name: "Budget", Values: []float64{50000, 120000, 250000}},
					{Name: "Spent", Values: []float64{38000, 52000, 41000}},
				},
			},
		},
		TableTitle: "Projects",
		Table:      NewTable(in.Data.Projects, in.Query, projectColumns),
		Filter:     filterSpec(in.Query, "Search projects...", constants.ProjectStatuses),
	}
}

func projTasks(in Input) View {
	return View{
		Kind:        ProjTasks,
		Title:       "Tasks",
		Description: "Task assignments across projects",
		Metrics: []Metric{
			{Label: "Open Tasks", Value: "86", Change: "-4", Trend: "down"},
			{Label: "In Progress", Value: "31", Change: "+6", Trend: "up"},
			{Label: "Overdue", Value: "5", Change: "-2", Trend: "down"},
			{Label: "Completed This Week", Value: "22", Change: "+8", Trend: "up"},
		},
		Charts: []Chart{
			{
				Title:  "Tasks by Status",
				Kind:   ChartPie,
				Labels: constants.TaskStatuses,
				Series: []Series{{Name: "Tasks", Values: []float64{55, 31, 140}}},
			},
		},
		TableTitle: "Task List",
		Table:      NewTable(in.Data.Tasks, in.Query, taskColumns),
		Filter:     filterSpec(in.Query, "Search tasks...", constants.TaskStatuses),
	}
}

func projResources(in Input) View {
	return View{
		Kind:        ProjResources,
		Title:       "Resources",
		Description: "Team allocation and availability",
		Metrics: []Metric{
			{Label: "Team Members", Value: "42", Change: "+2", Trend: "up"},
			{Label: "Avg. Allocation", Value: "78%", Change: "+3%", Trend: "up"},
			{Label: "Available", Value: "6", Change: "-1", Trend: "down"},
			{Label: "Overloaded", Value: "3", Change: "+1", Trend: "up"},
		},
		Charts: []Chart{
			{
				Title:  "Allocation by Department",
				Kind:   ChartBar,
				Labels: []string{"Design", "Engineering", "Operations", "Marketing"},
				Series: []Series{{Name: "Allocation %", Values: []float64{85, 92, 64, 58}}},
			},
		},
		TableTitle: "Team",
		Table:      NewTable(in.Data.Resources, in.Query, resourceColumns),
		Filter:     filterSpec(in.Query, "Search people...", constants.ResourceStatuses),
	}
}

func projCalendar(in Input) View {
	return View{
		Kind:        ProjCalendar,
		Title:       "Calendar",
		Description: "Meetings, milestones and deadlines",
		Metrics: []Metric{
			{Label: "Events This Week", Value: "9"},
			{Label: "Upcoming Milestones", Value: "4"},
			{Label: "Deadlines This Month", Value: "6"},
		},
		Charts: []Chart{
			{
				Title:  "Events per Week",
				Kind:   ChartBar,
				Labels: []string{"W11", "W12", "W13", "W14"},
				Series: []Series{{Name: "Events", Values: []float64{7, 9, 6, 8}}},
			},
		},
		TableTitle: "Schedule",
		Table:      NewTable(in.Data.Events, in.Query, eventColumns),
		Filter:     filterSpec(in.Query, "Search events...", constants.EventKinds),
	}
}

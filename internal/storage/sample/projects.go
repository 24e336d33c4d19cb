package sample

import (
	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

func projects() []storage.Project {
	return []storage.Project{
		{ID: 1, Name: "Website Redesign", Manager: "Sarah Johnson", Progress: 75, Status: constants.ProjectActive, Start: "2024-01-15", End: "2024-04-30", Budget: 50000},
		{ID: 2, Name: "Mobile App Development", Manager: "Michael Brown", Progress: 45, Status: constants.ProjectActive, Start: "2024-02-01", End: "2024-07-31", Budget: 120000},
		{ID: 3, Name: "ERP Migration", Manager: "Emma Wilson", Progress: 20, Status: constants.ProjectOnHold, Start: "2024-03-01", End: "2024-12-31", Budget: 250000},
		{ID: 4, Name: "Marketing Automation", Manager: "David Lee", Progress: 100, Status: constants.ProjectCompleted, Start: "2023-10-01", End: "2024-02-28", Budget: 35000},
	}
}

func tasks() []storage.Task {
	return []storage.Task{
		{ID: 1, Title: "Design homepage mockups", Project: "Website Redesign", Assignee: "Anna Kim", Priority: constants.PriorityHigh, Status: constants.TaskInProgress, Due: "2024-03-20"},
		{ID: 2, Title: "Implement authentication flow", Project: "Mobile App Development", Assignee: "James Miller", Priority: constants.PriorityHigh, Status: constants.TaskTodo, Due: "2024-03-25"},
		{ID: 3, Title: "Write API documentation", Project: "Mobile App Development", Assignee: "Olivia Davis", Priority: constants.PriorityMedium, Status: constants.TaskTodo, Due: "2024-04-02"},
		{ID: 4, Title: "Data mapping workshop", Project: "ERP Migration", Assignee: "Robert Chen", Priority: constants.PriorityLow, Status: constants.TaskDone, Due: "2024-03-08"},
		{ID: 5, Title: "Content migration", Project: "Website Redesign", Assignee: "Anna Kim", Priority: constants.PriorityMedium, Status: constants.TaskInProgress, Due: "2024-04-10"},
	}
}

func resources() []storage.Resource {
	return []storage.Resource{
		{ID: 1, Name: "Anna Kim", Role: "UI Designer", Department: "Design", Allocation: 90, Status: constants.ResourceAllocated},
		{ID: 2, Name: "James Miller", Role: "Backend Developer", Department: "Engineering", Allocation: 100, Status: constants.ResourceOverloaded},
		{ID: 3, Name: "Olivia Davis", Role: "Technical Writer", Department: "Engineering", Allocation: 40, Status: constants.ResourceAvailable},
		{ID: 4, Name: "Robert Chen", Role: "Business Analyst", Department: "Operations", Allocation: 65, Status: constants.ResourceAllocated},
	}
}

func events() []storage.CalendarEvent {
	return []storage.CalendarEvent{
		{ID: 1, Title: "Sprint planning", Project: "Mobile App Development", Kind: constants.EventMeeting, Date: "2024-03-18", Time: "10:00"},
		{ID: 2, Title: "Design review", Project: "Website Redesign", Kind: constants.EventMilestone, Date: "2024-03-21", Time: "14:00"},
		{ID: 3, Title: "Beta release", Project: "Mobile App Development", Kind: constants.EventDeadline, Date: "2024-04-15", Time: "17:00"},
		{ID: 4, Title: "Stakeholder sync", Project: "ERP Migration", Kind: constants.EventMeeting, Date: "2024-03-19", Time: "09:30"},
	}
}

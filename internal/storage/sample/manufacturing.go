package sample

import (
	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

func sites() []storage.ProductionSite {
	return []storage.ProductionSite{
		{ID: 1, Name: "Plant A", Location: "Detroit, MI", Output: 1250, Capacity: 85, Status: constants.SiteOperational},
		{ID: 2, Name: "Plant B", Location: "Austin, TX", Output: 980, Capacity: 72, Status: constants.SiteOperational},
		{ID: 3, Name: "Plant C", Location: "Monterrey, MX", Output: 430, Capacity: 38, Status: constants.SiteMaintenance},
		{ID: 4, Name: "Plant D", Location: "Columbus, OH", Output: 0, Capacity: 0, Status: constants.SiteOffline},
	}
}

func orders() []storage.ProductionOrder {
	return []storage.ProductionOrder{
		{ID: 1, Product: "Industrial Pump X200", Line: "Line 1", Quantity: 500, Progress: 75, Status: constants.OrderRunning, Start: "2024-03-01", End: "2024-03-20"},
		{ID: 2, Product: "Control Valve V12", Line: "Line 2", Quantity: 1200, Progress: 40, Status: constants.OrderRunning, Start: "2024-03-05", End: "2024-03-28"},
		{ID: 3, Product: "Gear Assembly G5", Line: "Line 3", Quantity: 800, Progress: 100, Status: constants.OrderCompleted, Start: "2024-02-15", End: "2024-03-10"},
		{ID: 4, Product: "Hydraulic Cylinder H8", Line: "Line 1", Quantity: 300, Progress: 0, Status: constants.OrderScheduled, Start: "2024-03-22", End: "2024-04-05"},
		{ID: 5, Product: "Motor Housing M3", Line: "Line 4", Quantity: 650, Progress: 55, Status: constants.OrderDelayed, Start: "2024-02-28", End: "2024-03-18"},
	}
}

func inspections() []storage.QualityCheck {
	return []storage.QualityCheck{
		{ID: 1, Batch: "B-2024-031", Product: "Industrial Pump X200", Inspector: "Emma Wilson", Defects: 0, Result: constants.QualityPassed, Date: "2024-03-15"},
		{ID: 2, Batch: "B-2024-030", Product: "Control Valve V12", Inspector: "James Miller", Defects: 7, Result: constants.QualityFailed, Date: "2024-03-14"},
		{ID: 3, Batch: "B-2024-029", Product: "Gear Assembly G5", Inspector: "Emma Wilson", Defects: 1, Result: constants.QualityPassed, Date: "2024-03-13"},
		{ID: 4, Batch: "B-2024-032", Product: "Motor Housing M3", Inspector: "Olivia Davis", Defects: 0, Result: constants.QualityPending, Date: "2024-03-16"},
	}
}

func maintenance() []storage.MaintenanceTask {
	return []storage.MaintenanceTask{
		{ID: 1, Equipment: "CNC Machine #4", Kind: "Preventive", Technician: "Robert Chen", Priority: constants.PriorityMedium, Status: constants.MaintenanceScheduled, Due: "2024-03-20"},
		{ID: 2, Equipment: "Conveyor Belt B2", Kind: "Corrective", Technician: "Linda Park", Priority: constants.PriorityHigh, Status: constants.MaintenanceInProgress, Due: "2024-03-16"},
		{ID: 3, Equipment: "Hydraulic Press P1", Kind: "Inspection", Technician: "Robert Chen", Priority: constants.PriorityLow, Status: constants.MaintenanceCompleted, Due: "2024-03-10"},
		{ID: 4, Equipment: "Paint Booth PB-2", Kind: "Preventive", Technician: "Tom Baker", Priority: constants.PriorityMedium, Status: constants.MaintenanceScheduled, Due: "2024-03-25"},
	}
}

func plan() []storage.PlanItem {
	return []storage.PlanItem{
		{ID: 1, Product: "Industrial Pump X200", Start: "2024-04-01", End: "2024-04-30", Demand: 1500, Capacity: 80, Status: constants.PlanOnTrack},
		{ID: 2, Product: "Control Valve V12", Start: "2024-04-01", End: "2024-05-15", Demand: 3000, Capacity: 95, Status: constants.PlanAtRisk},
		{ID: 3, Product: "Gear Assembly G5", Start: "2024-04-15", End: "2024-05-31", Demand: 2200, Capacity: 60, Status: constants.PlanOnTrack},
		{ID: 4, Product: "Motor Housing M3", Start: "2024-03-20", End: "2024-04-20", Demand: 1800, Capacity: 100, Status: constants.PlanBehind},
	}
}

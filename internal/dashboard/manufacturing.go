package dashboard

import (
	"strconv"

	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

var siteColumns = []Column[storage.ProductionSite]{
	{Header: "Site", Value: func(s storage.ProductionSite) Cell { return Text(s.Name) }},
	{Header: "Location", Value: func(s storage.ProductionSite) Cell { return Text(s.Location) }},
	{Header: "Output (units/day)", Value: func(s storage.ProductionSite) Cell { return Number(s.Output) }},
	{Header: "Capacity", Value: func(s storage.ProductionSite) Cell { return Progress(s.Capacity) }},
	{Header: "Status", Value: func(s storage.ProductionSite) Cell { return Badge(s.Status) }},
}

var orderColumns = []Column[storage.ProductionOrder]{
	{Header: "Product", Value: func(o storage.ProductionOrder) Cell { return Text(o.Product) }},
	{Header: "Line", Value: func(o storage.ProductionOrder) Cell { return Text(o.Line) }},
	{Header: "Quantity", Value: func(o storage.ProductionOrder) Cell { return Number(o.Quantity) }},
	{Header: "Progress", Value: func(o storage.ProductionOrder) Cell { return Progress(o.Progress) }},
	{Header: "Status", Value: func(o storage.ProductionOrder) Cell { return Badge(o.Status) }},
	{Header: "Start", Value: func(o storage.ProductionOrder) Cell { return Text(o.Start) }},
	{Header: "End", Value: func(o storage.ProductionOrder) Cell { return Text(o.End) }},
}

var inspectionColumns = []Column[storage.QualityCheck]{
	{Header: "Batch", Value: func(q storage.QualityCheck) Cell { return Text(q.Batch) }},
	{Header: "Product", Value: func(q storage.QualityCheck) Cell { return Text(q.Product) }},
	{Header: "Inspector", Value: func(q storage.QualityCheck) Cell { return Text(q.Inspector) }},
	{Header: "Defects", Value: func(q storage.QualityCheck) Cell { return Text(strconv.Itoa(q.Defects)) }},
	{Header: "Result", Value: func(q storage.QualityCheck) Cell { return Badge(q.Result) }},
	{Header: "Date", Value: func(q storage.QualityCheck) Cell { return Text(q.Date) }},
}

var maintenanceColumns = []Column[storage.MaintenanceTask]{
	{Header: "Equipment", Value: func(m storage.MaintenanceTask) Cell { return Text(m.Equipment) }},
	{Header: "Type", Value: func(m storage.MaintenanceTask) Cell { return Text(m.Kind) }},
	{Header: "Technician", Value: func(m storage.MaintenanceTask) Cell { return Text(m.Technician) }},
	{Header: "Priority", Value: func(m storage.MaintenanceTask) Cell { return Badge(m.Priority) }},
	{Header: "Status", Value: func(m storage.MaintenanceTask) Cell { return Badge(m.Status) }},
	{Header: "Due", Value: func(m storage.MaintenanceTask) Cell { return Text(m.Due) }},
}

var planColumns = []Column[storage.PlanItem]{
	{Header: "Product", Value: func(p storage.PlanItem) Cell { return Text(p.Product) }},
	{Header: "Start", Value: func(p storage.PlanItem) Cell { return Text(p.Start) }},
	{Header: "End", Value: func(p storage.PlanItem) Cell { return Text(p.End) }},
	{Header: "Demand", Value: func(p storage.PlanItem) Cell { return Number(p.Demand) }},
	{Header: "Capacity Used", Value: func(p storage.PlanItem) Cell { return Progress(p.Capacity) }},
	{Header: "Status", Value: func(p storage.PlanItem) Cell { return Badge(p.Status) }},
}

func mfgOverview(in Input) View {
	return View{
		Kind:        MfgOverview,
		Title:       "Manufacturing Overview",
		Description: "Production output, site utilisation and quality",
		Metrics: []Metric{
			{Label: "Daily Output", Value: "2,660 units", Change: "+6%", Trend: "up"},
			{Label: "Overall Efficiency", Value: "87%", Change: "+2%", Trend: "up"},
			{Label: "Defect Rate", Value: "1.8%", Change: "-0.4%", Trend: "down"},
			{Label: "Downtime", Value: "3.2h", Change: "-15%", Trend: "down"},
		},
		Charts: []Chart{
			{
				Title:  "Production Output",
				Kind:   ChartLine,
				Labels: months,
				Series: []Series{
					{Name: "Actual", Values: []float64{2100, 2350, 2280, 2500, 2620, 2660}},
					{Name: "Planned", Values: []float64{2200, 2300, 2400, 2500, 2600, 2700}},
				},
			},
		},
		TableTitle: "Production Sites",
		Table:      NewTable(in.Data.Sites, Query{}, siteColumns),
	}
}

func mfgProduction(in Input) View {
	return View{
		Kind:        MfgProduction,
		Title:       "Production",
		Description: "Work orders on the production lines",
		Metrics: []Metric{
			{Label: "Active Orders", Value: "12", Change: "+3", Trend: "up"},
			{Label: "Units Produced", Value: "18,450", Change: "+9%", Trend: "up"},
			{Label: "On-Time Delivery", Value: "92%", Change: "+1%", Trend: "up"},
			{Label: "Delayed Orders", Value: "2", Change: "+1", Trend: "down"},
		},
		Charts: []Chart{
			{
				Title:  "Output by Line",
				Kind:   ChartBar,
				Labels: []string{"Line 1", "Line 2", "Line 3", "Line 4"},
				Series: []Series{{Name: "Units", Values: []float64{5200, 4800, 4650, 3800}}},
			},
		},
		TableTitle: "Production Orders",
		Table:      NewTable(in.Data.Orders, in.Query, orderColumns),
		Filter:     filterSpec(in.Query, "Search orders...", constants.OrderStatuses),
	}
}

func mfgQuality(in Input) View {
	return View{
		Kind:        MfgQuality,
		Title:       "Quality Control",
		Description: "Batch inspections and defect tracking",
		Metrics: []Metric{
			{Label: "Inspections", Value: "342", Change: "+22", Trend: "up"},
			{Label: "Pass Rate", Value: "96.4%", Change: "+0.8%", Trend: "up"},
			{Label: "Defects Found", Value: "58", Change: "-11%", Trend: "down"},
			{Label: "Pending Reviews", Value: "7", Change: "-2", Trend: "down"},
		},
		Charts: []Chart{
			{
				Title:  "Defect Rate",
				Kind:   ChartLine,
				Labels: months,
				Series: []Series{{Name: "Defect %", Values: []float64{2.6, 2.4, 2.1, 2.2, 1.9, 1.8}}},
			},
			{
				Title:  "Inspection Results",
				Kind:   ChartPie,
				Labels: constants.QualityResults,
				Series: []Series{{Name: "Batches", Values: []float64{312, 23, 7}}},
			},
		},
		TableTitle: "Recent Inspections",
		Table:      NewTable(in.Data.Inspections, in.Query, inspectionColumns),
		Filter:     filterSpec(in.Query, "Search batches...", constants.QualityResults),
	}
}

func mfgMaintenance(in Input) View {
	return View{
		Kind:        MfgMaintenance,
		Title:       "Maintenance",
		Description: "Equipment maintenance schedule and work orders",
		Metrics: []Metric{
			{Label: "Scheduled", Value: "14", Change: "+3", Trend: "up"},
			{Label: "In Progress", Value: "4", Change: "0"},
			{Label: "Equipment Uptime", Value: "97.2%", Change: "+0.5%", Trend: "up"},
			{Label: "MTBF", Value: "420h", Change: "+8%", Trend: "up"},
		},
		Charts: []Chart{
			{
				Title:  "Maintenance by Type",
				Kind:   ChartBar,
				Labels: []string{"Preventive", "Corrective", "Inspection"},
				Series: []Series{{Name: "Work Orders", Values: []float64{28, 9, 15}}},
			},
		},
		TableTitle: "Maintenance Tasks",
		Table:      NewTable(in.Data.Maintenance, in.Query, maintenanceColumns),
		Filter:     filterSpec(in.Query, "Search equipment...", constants.MaintenanceStatuses),
	}
}

func mfgPlanning(in Input) View {
	return View{
		Kind:        MfgPlanning,
		Title:       "Planning",
		Description: "Production plan against demand and capacity",
		Metrics: []Metric{
			{Label: "Planned Units", Value: "8,500", Change: "+10%", Trend: "up"},
			{Label: "Capacity Utilisation", Value: "84%", Change: "+4%", Trend: "up"},
			{Label: "At-Risk Items", Value: "1", Change: "0"},
			{Label: "Forecast Accuracy", Value: "91%", Change: "+2%", Trend: "up"},
		},
		Charts: []Chart{
			{
				Title:  "Demand vs Capacity",
				Kind:   ChartBar,
				Labels: []string{"Apr", "May", "Jun"},
				Series: []Series{
					{Name: "Demand", Values: []float64{2800, 3100, 2600}},
					{Name: "Capacity", Values: []float64{3000, 3000, 3000}},
				},
			},
		},
		TableTitle: "Production Plan",
		Table:      NewTable(in.Data.Plan, in.Query, planColumns),
		Filter:     filterSpec(in.Query, "Search products...", constants.PlanStatuses),
	}
}

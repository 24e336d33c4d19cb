package dashboard

import (
	"strconv"

	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

var customerColumns = []Column[storage.Customer]{
	{Header: "Company", Value: func(c storage.Customer) Cell { return Text(c.Name) }},
	{Header: "Contact", Value: func(c storage.Customer) Cell { return Text(c.Contact) }},
	{Header: "Email", Value: func(c storage.Customer) Cell { return Text(c.Email) }},
	{Header: "Phone", Value: func(c storage.Customer) Cell { return Text(c.Phone) }},
	{Header: "Status", Value: func(c storage.Customer) Cell { return Badge(c.Status) }},
	{Header: "Last Purchase", Value: func(c storage.Customer) Cell { return Text(c.LastPurchase) }},
	{Header: "Total Spent", Value: func(c storage.Customer) Cell { return Money(c.TotalSpent) }},
}

var saleColumns = []Column[storage.Sale]{
	{Header: "Customer", Value: func(s storage.Sale) Cell { return Text(s.Customer) }},
	{Header: "Product", Value: func(s storage.Sale) Cell { return Text(s.Product) }},
	{Header: "Amount", Value: func(s storage.Sale) Cell { return Money(s.Amount) }},
	{Header: "Status", Value: func(s storage.Sale) Cell { return Badge(s.Status) }},
	{Header: "Date", Value: func(s storage.Sale) Cell { return Text(s.Date) }},
}

var campaignColumns = []Column[storage.Campaign]{
	{Header: "Campaign", Value: func(c storage.Campaign) Cell { return Text(c.Name) }},
	{Header: "Channel", Value: func(c storage.Campaign) Cell { return Text(c.Channel) }},
	{Header: "Status", Value: func(c storage.Campaign) Cell { return Badge(c.Status) }},
	{Header: "Budget", Value: func(c storage.Campaign) Cell { return Money(c.Budget) }},
	{Header: "Leads", Value: func(c storage.Campaign) Cell { return Number(c.Leads) }},
	{Header: "Conversion", Value: func(c storage.Campaign) Cell {
		return Text(strconv.FormatFloat(c.Conversion, 'f', 1, 64) + "%")
	}},
}

var ticketColumns = []Column[storage.Ticket]{
	{Header: "Customer", Value: func(t storage.Ticket) Cell { return Text(t.Customer) }},
	{Header: "Subject", Value: func(t storage.Ticket) Cell { return Text(t.Subject) }},
	{Header: "Priority", Value: func(t storage.Ticket) Cell { return Badge(t.Priority) }},
	{Header: "Status", Value: func(t storage.Ticket) Cell { return Badge(t.Status) }},
	{Header: "Assigned To", Value: func(t storage.Ticket) Cell { return Text(t.AssignedTo) }},
	{Header: "Created", Value: func(t storage.Ticket) Cell { return Text(t.Created) }},
}

func crmOverview(in Input) View {
	return View{
		Kind:        CRMOverview,
		Title:       "CRM Overview",
		Description: "Customer relationships, pipeline and support at a glance",
		Metrics: []Metric{
			{Label: "Total Customers", Value: "1,734", Change: "+12%", Trend: "up"},
			{Label: "Total Revenue", Value: "$2.4M", Change: "+8.2%", Trend: "up"},
			{Label: "Active Deals", Value: "156", Change: "+5%", Trend: "up"},
			{Label: "Conversion Rate", Value: "24.8%", Change: "-1.2%", Trend: "down"},
		},
		Charts: []Chart{
			{
				Title:  "Sales Trend",
				Kind:   ChartLine,
				Labels: months,
				Series: []Series{{Name: "Sales", Values: []float64{4000, 3000, 5000, 4500, 6000, 5500}}},
			},
			{
				Title:  "Customer Segments",
				Kind:   ChartPie,
				Labels: []string{"Enterprise", "Mid-Market", "Small Business"},
				Series: []Series{{Name: "Customers", Values: []float64{400, 300, 300}}},
			},
		},
		TableTitle: "Recent Sales",
		Table:      NewTable(in.Data.Sales, Query{}, saleColumns),
	}
}

func crmCustomers(in Input) View {
	return View{
		Kind:        CRMCustomers,
		Title:       "Customers",
		Description: "Manage customer accounts and contacts",
		Metrics: []Metric{
			{Label: "Total Customers", Value: "1,734", Change: "+12%", Trend: "up"},
			{Label: "Active Customers", Value: "1,482", Change: "+8%", Trend: "up"},
			{Label: "New This Month", Value: "48", Change: "+15%", Trend: "up"},
			{Label: "Avg. Lifetime Value", Value: "$12,450", Change: "+3%", Trend: "up"},
		},
		Charts: []Chart{
			{
				Title:  "Customer Growth",
				Kind:   ChartBar,
				Labels: months,
				Series: []Series{{Name: "New Customers", Values: []float64{32, 41, 38, 45, 52, 48}}},
			},
		},
		TableTitle: "Customer List",
		Table:      NewTable(in.Data.Customers, in.Query, customerColumns),
		Filter:     filterSpec(in.Query, "Search customers...", constants.CustomerStatuses),
	}
}

func crmSales(in Input) View {
	return View{
		Kind:        CRMSales,
		Title:       "Sales",
		Description: "Track deals, revenue and product performance",
		Metrics: []Metric{
			{Label: "Monthly Revenue", Value: "$245,000", Change: "+15%", Trend: "up"},
			{Label: "Deals Closed", Value: "38", Change: "+6%", Trend: "up"},
			{Label: "Pending Deals", Value: "12", Change: "-2%", Trend: "down"},
			{Label: "Avg. Deal Size", Value: "$6,450", Change: "+4%", Trend: "up"},
		},
		Charts: []Chart{
			{
				Title:  "Revenue",
				Kind:   ChartArea,
				Labels: months,
				Series: []Series{
					{Name: "Revenue", Values: []float64{180000, 195000, 210000, 205000, 230000, 245000}},
					{Name: "Target", Values: []float64{200000, 200000, 210000, 220000, 230000, 240000}},
				},
			},
			{
				Title:  "Sales by Product",
				Kind:   ChartBar,
				Labels: []string{"Enterprise Suite", "Professional Package", "Basic Plan", "Analytics Add-on"},
				Series: []Series{{Name: "Units", Values: []float64{45, 80, 120, 60}}},
			},
		},
		TableTitle: "Sales Transactions",
		Table:      NewTable(in.Data.Sales, in.Query, saleColumns),
		Filter:     filterSpec(in.Query, "Search sales...", constants.SaleStatuses),
	}
}

func crmMarketing(in Input) View {
	return View{
		Kind:        CRMMarketing,
		Title:       "Marketing",
		Description: "Campaign performance and lead generation",
		Metrics: []Metric{
			{Label: "Active Campaigns", Value: "8", Change: "+2", Trend: "up"},
			{Label: "Total Leads", Value: "2,845", Change: "+18%", Trend: "up"},
			{Label: "Cost per Lead", Value: "$24.50", Change: "-6%", Trend: "down"},
			{Label: "Marketing ROI", Value: "320%", Change: "+12%", Trend: "up"},
		},
		Charts: []Chart{
			{
				Title:  "Leads by Channel",
				Kind:   ChartBar,
				Labels: []string{"Email", "Social", "Paid Search", "Events", "Webinar"},
				Series: []Series{{Name: "Leads", Values: []float64{980, 620, 540, 380, 325}}},
			},
			{
				Title:  "Budget Allocation",
				Kind:   ChartPie,
				Labels: []string{"Digital", "Events", "Content", "Other"},
				Series: []Series{{Name: "Budget", Values: []float64{45, 25, 20, 10}}},
			},
		},
		TableTitle: "Campaigns",
		Table:      NewTable(in.Data.Campaigns, in.Query, campaignColumns),
		Filter:     filterSpec(in.Query, "Search campaigns...", constants.CampaignStatuses),
	}
}

func crmSupport(in Input) View {
	return View{
		Kind:        CRMSupport,
		Title:       "Support",
		Description: "Customer support tickets and service levels",
		Metrics: []Metric{
			{Label: "Open Tickets", Value: "23", Change: "-4", Trend: "down"},
			{Label: "Avg. Response Time", Value: "2.4h", Change: "-12%", Trend: "down"},
			{Label: "Resolution Rate", Value: "94%", Change: "+2%", Trend: "up"},
			{Label: "Customer Satisfaction", Value: "4.6/5", Change: "+0.2", Trend: "up"},
		},
		Charts: []Chart{
			{
				Title:  "Ticket Volume",
				Kind:   ChartLine,
				Labels: months,
				Series: []Series{
					{Name: "Opened", Values: []float64{120, 135, 110, 142, 128, 115}},
					{Name: "Resolved", Values: []float64{115, 130, 118, 138, 131, 120}},
				},
			},
			{
				Title:  "Tickets by Priority",
				Kind:   ChartPie,
				Labels: []string{constants.PriorityHigh, constants.PriorityMedium, constants.PriorityLow},
				Series: []Series{{Name: "Tickets", Values: []float64{15, 45, 40}}},
			},
		},
		TableTitle: "Support Tickets",
		Table:      NewTable(in.Data.Tickets, in.Query, ticketColumns),
		Filter:     filterSpec(in.Query, "Search tickets...", constants.TicketStatuses),
	}
}

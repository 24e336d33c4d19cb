package sample

import (
	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

func customers() []storage.Customer {
	return []storage.Customer{
		{ID: 1, Name: "Acme Corporation", Contact: "John Smith", Email: "john@acme.com", Phone: "+1 555-123-4567", Status: constants.CustomerActive, LastPurchase: "2024-03-15", TotalSpent: 125000},
		{ID: 2, Name: "Global Industries", Contact: "Sarah Johnson", Email: "sarah@global.com", Phone: "+1 555-987-6543", Status: constants.CustomerActive, LastPurchase: "2024-03-10", TotalSpent: 85000},
		{ID: 3, Name: "Tech Solutions Ltd", Contact: "Michael Brown", Email: "michael@techsolutions.com", Phone: "+1 555-456-7890", Status: constants.CustomerInactive, LastPurchase: "2024-02-28", TotalSpent: 45000},
	}
}

func sales() []storage.Sale {
	return []storage.Sale{
		{ID: 1, Customer: "Acme Corporation", Product: "Enterprise Suite", Amount: 25000, Status: constants.SaleCompleted, Date: "2024-03-15"},
		{ID: 2, Customer: "Global Industries", Product: "Professional Package", Amount: 15000, Status: constants.SalePending, Date: "2024-03-14"},
		{ID: 3, Customer: "Tech Solutions Ltd", Product: "Basic Plan", Amount: 5000, Status: constants.SaleCompleted, Date: "2024-03-13"},
		{ID: 4, Customer: "Northwind Traders", Product: "Enterprise Suite", Amount: 27500, Status: constants.SalePending, Date: "2024-03-12"},
		{ID: 5, Customer: "Blue Harbor Logistics", Product: "Analytics Add-on", Amount: 8200, Status: constants.SaleCompleted, Date: "2024-03-11"},
	}
}

func campaigns() []storage.Campaign {
	return []storage.Campaign{
		{ID: 1, Name: "Spring Product Launch", Channel: "Email", Status: constants.CampaignActive, Budget: 12000, Leads: 420, Conversion: 4.8},
		{ID: 2, Name: "Trade Show Follow-up", Channel: "Events", Status: constants.CampaignCompleted, Budget: 8000, Leads: 180, Conversion: 9.1},
		{ID: 3, Name: "Search Ads Q2", Channel: "Paid Search", Status: constants.CampaignScheduled, Budget: 15000, Leads: 0, Conversion: 0},
		{ID: 4, Name: "Customer Webinar Series", Channel: "Webinar", Status: constants.CampaignActive, Budget: 3500, Leads: 260, Conversion: 6.3},
		{ID: 5, Name: "LinkedIn Awareness", Channel: "Social", Status: constants.CampaignActive, Budget: 6000, Leads: 310, Conversion: 2.7},
	}
}

func tickets() []storage.Ticket {
	return []storage.Ticket{
		{ID: 1, Customer: "Acme Corporation", Subject: "Login issues with dashboard", Priority: constants.PriorityHigh, Status: constants.TicketOpen, AssignedTo: "Alex Turner", Created: "2024-03-15"},
		{ID: 2, Customer: "Global Industries", Subject: "Invoice discrepancy", Priority: constants.PriorityMedium, Status: constants.TicketInProgress, AssignedTo: "Maria Garcia", Created: "2024-03-14"},
		{ID: 3, Customer: "Tech Solutions Ltd", Subject: "Feature request: CSV export", Priority: constants.PriorityLow, Status: constants.TicketCompleted, AssignedTo: "David Lee", Created: "2024-03-12"},
		{ID: 4, Customer: "Northwind Traders", Subject: "API rate limit exceeded", Priority: constants.PriorityHigh, Status: constants.TicketInProgress, AssignedTo: "Alex Turner", Created: "2024-03-11"},
	}
}

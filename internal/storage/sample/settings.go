package sample

import (
	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

func general() storage.GeneralSettings {
	return storage.GeneralSettings{
		CompanyName: "Acme Business Suite",
		Timezone:    "America/New_York",
		Language:    "English",
		Currency:    "USD",
		DateFormat:  "MM/DD/YYYY",
	}
}

func profile() storage.Profile {
	return storage.Profile{
		Name:       "John Doe",
		Email:      "john.doe@example.com",
		Phone:      "+1 555-010-2030",
		Role:       "Administrator",
		Department: "Operations",
		Bio:        "Operations lead responsible for CRM and production reporting.",
	}
}

func security() storage.Security {
	return storage.Security{
		TwoFactorEnabled: true,
		PasswordChanged:  "2024-01-20",
		Sessions: []storage.Session{
			{ID: 1, Device: "Chrome on macOS", Location: "New York, US", LastActive: "Now", Status: constants.SessionCurrent},
			{ID: 2, Device: "Safari on iPhone", Location: "New York, US", LastActive: "2 hours ago", Status: constants.SessionActive},
			{ID: 3, Device: "Firefox on Windows", Location: "Chicago, US", LastActive: "3 days ago", Status: constants.SessionActive},
		},
	}
}

func notifications() []storage.NotificationPref {
	return []storage.NotificationPref{
		{ID: "email-orders", Label: "Order updates", Description: "Status changes on sales and production orders", Channel: constants.ChannelEmail, Enabled: true},
		{ID: "email-reports", Label: "Weekly reports", Description: "Summary of CRM and manufacturing KPIs", Channel: constants.ChannelEmail, Enabled: true},
		{ID: "push-tickets", Label: "Support tickets", Description: "New and escalated support tickets", Channel: constants.ChannelPush, Enabled: false},
		{ID: "sms-alerts", Label: "Critical alerts", Description: "Equipment failures and overdue maintenance", Channel: constants.ChannelSMS, Enabled: true},
	}
}

func integrations() []storage.Integration {
	return []storage.Integration{
		{ID: "slack", Name: "Slack", Description: "Team notifications and alerts", Status: constants.IntegrationConnected, LastSync: strPtr("2024-03-15 10:30")},
		{ID: "google-drive", Name: "Google Drive", Description: "Document storage and sharing", Status: constants.IntegrationConnected, LastSync: strPtr("2024-03-15 09:15")},
		{ID: "salesforce", Name: "Salesforce", Description: "CRM data synchronization", Status: constants.IntegrationDisconnected},
		{ID: "quickbooks", Name: "QuickBooks", Description: "Accounting and invoicing", Status: constants.IntegrationDisconnected},
	}
}

func strPtr(s string) *string {
	return &s
}

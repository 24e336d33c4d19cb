package dashboard

import (
	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

var sessionColumns = []Column[storage.Session]{
	{Header: "Device", Value: func(s storage.Session) Cell { return Text(s.Device) }},
	{Header: "Location", Value: func(s storage.Session) Cell { return Text(s.Location) }},
	{Header: "Last Active", Value: func(s storage.Session) Cell { return Text(s.LastActive) }},
	{Header: "Status", Value: func(s storage.Session) Cell { return Badge(s.Status) }},
}

var notificationColumns = []Column[storage.NotificationPref]{
	{Header: "Notification", Value: func(n storage.NotificationPref) Cell { return Text(n.Label) }},
	{Header: "Description", Value: func(n storage.NotificationPref) Cell { return Text(n.Description) }},
	{Header: "Channel", Value: func(n storage.NotificationPref) Cell { return Text(n.Channel) }},
	{Header: "Enabled", Value: func(n storage.NotificationPref) Cell { return Toggle(n.Enabled) }},
}

var integrationColumns = []Column[storage.Integration]{
	{Header: "Integration", Value: func(i storage.Integration) Cell { return Text(i.Name) }},
	{Header: "Description", Value: func(i storage.Integration) Cell { return Text(i.Description) }},
	{Header: "Status", Value: func(i storage.Integration) Cell { return Badge(i.Status) }},
	{Header: "Last Sync", Value: func(i storage.Integration) Cell {
		if i.LastSync == nil {
			return Text("Never")
		}
		return Text(*i.LastSync)
	}},
	{Header: "Connected", Value: func(i storage.Integration) Cell {
		return Toggle(i.Status == constants.IntegrationConnected)
	}},
}

func setGeneral(in Input) View {
	g := in.Data.General
	return View{
		Kind:        SetGeneral,
		Title:       "General Settings",
		Description: "Company-wide preferences",
		Cards: []Card{
			{
				Title: "Company",
				Fields: []Field{
					{Label: "Company Name", Value: g.CompanyName},
					{Label: "Currency", Value: g.Currency},
				},
			},
			{
				Title: "Regional",
				Fields: []Field{
					{Label: "Timezone", Value: g.Timezone},
					{Label: "Language", Value: g.Language},
					{Label: "Date Format", Value: g.DateFormat},
				},
			},
		},
	}
}

func setProfile(in Input) View {
	p := in.Data.Profile
	return View{
		Kind:        SetProfile,
		Title:       "Profile",
		Description: "Personal information",
		Cards: []Card{
			{
				Title: "Personal Information",
				Fields: []Field{
					{Label: "Full Name", Value: p.Name},
					{Label: "Email", Value: p.Email},
					{Label: "Phone", Value: p.Phone},
				},
			},
			{
				Title: "Work",
				Fields: []Field{
					{Label: "Role", Value: p.Role},
					{Label: "Department", Value: p.Department},
					{Label: "Bio", Value: p.Bio},
				},
			},
		},
	}
}

func setSecurity(in Input) View {
	s := in.Data.Security
	twoFactor := "Disabled"
	if s.TwoFactorEnabled {
		twoFactor = "Enabled"
	}
	return View{
		Kind:        SetSecurity,
		Title:       "Security",
		Description: "Password, two-factor authentication and sessions",
		Cards: []Card{
			{
				Title: "Account Security",
				Fields: []Field{
					{Label: "Two-Factor Authentication", Value: twoFactor},
					{Label: "Password Last Changed", Value: s.PasswordChanged},
				},
			},
		},
		TableTitle: "Active Sessions",
		Table:      NewTable(s.Sessions, Query{}, sessionColumns),
	}
}

func setNotifications(in Input) View {
	return View{
		Kind:        SetNotifications,
		Title:       "Notifications",
		Description: "Choose which notifications you receive",
		TableTitle:  "Notification Preferences",
		Table:       NewTable(in.Notifications, in.Query, notificationColumns),
		Filter:      filterSpec(in.Query, "Search notifications...", constants.Channels),
	}
}

func setIntegrations(in Input) View {
	return View{
		Kind:        SetIntegrations,
		Title:       "Integrations",
		Description: "Connect third-party services",
		TableTitle:  "Available Integrations",
		Table:       NewTable(in.Integrations, in.Query, integrationColumns),
		Filter:      filterSpec(in.Query, "Search integrations...", constants.IntegrationStatuses),
	}
}

package storage

import (
	"context"
	"errors"
	"strconv"
)

var (
	ErrIntegrationNotFound  = errors.New("integration not found")
	ErrNotificationNotFound = errors.New("notification preference not found")
)

type GeneralSettings struct {
	CompanyName string `json:"company_name" yaml:"company_name"`
	Timezone    string `json:"timezone" yaml:"timezone"`
	Language    string `json:"language" yaml:"language"`
	Currency    string `json:"currency" yaml:"currency"`
	DateFormat  string `json:"date_format" yaml:"date_format"`
}

type Profile struct {
	Name       string `json:"name" yaml:"name"`
	Email      string `json:"email" yaml:"email"`
	Phone      string `json:"phone" yaml:"phone"`
	Role       string `json:"role" yaml:"role"`
	Department string `json:"department" yaml:"department"`
	Bio        string `json:"bio" yaml:"bio"`
}

type Session struct {
	ID         int    `json:"id" yaml:"id"`
	Device     string `json:"device" yaml:"device"`
	Location   string `json:"location" yaml:"location"`
	LastActive string `json:"last_active" yaml:"last_active"`
	Status     string `json:"status" yaml:"status"`
}

func (s Session) RowKey() string         { return strconv.Itoa(s.ID) }
func (s Session) SearchFields() []string { return []string{s.Device, s.Location} }
func (s Session) FilterValue() string    { return s.Status }

type Security struct {
	TwoFactorEnabled bool      `json:"two_factor_enabled" yaml:"two_factor_enabled"`
	PasswordChanged  string    `json:"password_changed" yaml:"password_changed"`
	Sessions         []Session `json:"sessions" yaml:"sessions"`
}

type NotificationPref struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Channel     string `json:"channel" yaml:"channel"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

func (n NotificationPref) RowKey() string         { return n.ID }
func (n NotificationPref) SearchFields() []string { return []string{n.Label, n.Description} }
func (n NotificationPref) FilterValue() string    { return n.Channel }

type Integration struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Status      string  `json:"status" yaml:"status"`
	LastSync    *string `json:"last_sync" yaml:"last_sync"`
}

func (i Integration) RowKey() string         { return i.ID }
func (i Integration) SearchFields() []string { return []string{i.Name, i.Description} }
func (i Integration) FilterValue() string    { return i.Status }

// SettingsRepository хранит переключатели страницы настроек (интеграции, уведомления).
// Записи справочников (клиенты, проекты и т.д.) через него не проходят.
type SettingsRepository interface {
	GetIntegrations(ctx context.Context) ([]Integration, error)
	SaveIntegrationStatus(ctx context.Context, id string, status string, lastSync *string) error
	GetNotifications(ctx context.Context) ([]NotificationPref, error)
	SaveNotification(ctx context.Context, id string, enabled bool) error
}

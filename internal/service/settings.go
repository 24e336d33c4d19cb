package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

const lastSyncLayout = "2006-01-02 15:04"

type SettingsStorage interface {
	GetIntegrations(ctx context.Context) ([]storage.Integration, error)
	SaveIntegrationStatus(ctx context.Context, id string, status string, lastSync *string) error
	GetNotifications(ctx context.Context) ([]storage.NotificationPref, error)
	SaveNotification(ctx context.Context, id string, enabled bool) error
}

type SettingsService struct {
	storage SettingsStorage
	now     func() time.Time

	// чтение статуса и запись переключённого должны идти парой
	toggleMu sync.Mutex
}

func NewSettingsService(storage SettingsStorage) *SettingsService {
	return &SettingsService{storage: storage, now: time.Now}
}

// Settings - текущее состояние переключателей.
type Settings struct {
	Integrations  []storage.Integration      `json:"integrations"`
	Notifications []storage.NotificationPref `json:"notifications"`
}

// Load читает интеграции и уведомления параллельно.
func (s *SettingsService) Load(ctx context.Context) (Settings, error) {
	const op = "service.settings.Load"

	var res Settings
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		integrations, err := s.storage.GetIntegrations(gctx)
		if err != nil {
			return fmt.Errorf("integrations: %w", err)
		}
		res.Integrations = integrations
		return nil
	})

	g.Go(func() error {
		notifications, err := s.storage.GetNotifications(gctx)
		if err != nil {
			return fmt.Errorf("notifications: %w", err)
		}
		res.Notifications = notifications
		return nil
	})

	if err := g.Wait(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

func (s *SettingsService) Integrations(ctx context.Context) ([]storage.Integration, error) {
	const op = "service.settings.Integrations"

	integrations, err := s.storage.GetIntegrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return integrations, nil
}

func (s *SettingsService) Notifications(ctx context.Context) ([]storage.NotificationPref, error) {
	const op = "service.settings.Notifications"

	notifications, err := s.storage.GetNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return notifications, nil
}

// ToggleIntegration подключает отключённую интеграцию и наоборот.
// При подключении last sync = текущее время, при отключении сбрасывается.
func (s *SettingsService) ToggleIntegration(ctx context.Context, id string) (storage.Integration, error) {
	const op = "service.settings.ToggleIntegration"

	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	integrations, err := s.storage.GetIntegrations(ctx)
	if err != nil {
		return storage.Integration{}, fmt.Errorf("%s: %w", op, err)
	}

	var (
		current storage.Integration
		found   bool
	)
	for _, in := range integrations {
		if in.ID == id {
			current, found = in, true
			break
		}
	}
	if !found {
		return storage.Integration{}, fmt.Errorf("%s: %q: %w", op, id, storage.ErrIntegrationNotFound)
	}

	if current.Status == constants.IntegrationConnected {
		current.Status = constants.IntegrationDisconnected
		current.LastSync = nil
	} else {
		current.Status = constants.IntegrationConnected
		synced := s.now().Format(lastSyncLayout)
		current.LastSync = &synced
	}

	if err := s.storage.SaveIntegrationStatus(ctx, id, current.Status, current.LastSync); err != nil {
		return storage.Integration{}, fmt.Errorf("%s: %w", op, err)
	}

	return current, nil
}

func (s *SettingsService) SetNotification(ctx context.Context, id string, enabled bool) (storage.NotificationPref, error) {
	const op = "service.settings.SetNotification"

	if err := s.storage.SaveNotification(ctx, id, enabled); err != nil {
		return storage.NotificationPref{}, fmt.Errorf("%s: %w", op, err)
	}

	notifications, err := s.storage.GetNotifications(ctx)
	if err != nil {
		return storage.NotificationPref{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, n := range notifications {
		if n.ID == id {
			return n, nil
		}
	}

	return storage.NotificationPref{}, fmt.Errorf("%s: %q: %w", op, id, storage.ErrNotificationNotFound)
}

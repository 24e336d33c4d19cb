// Package memory keeps settings toggles in process memory only. Nothing is
// persisted: a restart brings back the values the dataset started with.
package memory

import (
	"context"
	"fmt"
	"sync"

	"bizdash/internal/storage"
)

type Storage struct {
	mu            sync.RWMutex
	integrations  []storage.Integration
	notifications []storage.NotificationPref
}

func New(integrations []storage.Integration, notifications []storage.NotificationPref) *Storage {
	s := &Storage{
		integrations:  make([]storage.Integration, len(integrations)),
		notifications: make([]storage.NotificationPref, len(notifications)),
	}
	for i, in := range integrations {
		s.integrations[i] = copyIntegration(in)
	}
	copy(s.notifications, notifications)
	return s
}

func (s *Storage) GetIntegrations(_ context.Context) ([]storage.Integration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]storage.Integration, len(s.integrations))
	for i, in := range s.integrations {
		out[i] = copyIntegration(in)
	}
	return out, nil
}

func (s *Storage) SaveIntegrationStatus(_ context.Context, id string, status string, lastSync *string) error {
	const op = "storage.memory.SaveIntegrationStatus"

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.integrations {
		if s.integrations[i].ID == id {
			s.integrations[i].Status = status
			s.integrations[i].LastSync = copyString(lastSync)
			return nil
		}
	}
	return fmt.Errorf("%s: %q: %w", op, id, storage.ErrIntegrationNotFound)
}

func (s *Storage) GetNotifications(_ context.Context) ([]storage.NotificationPref, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]storage.NotificationPref, len(s.notifications))
	copy(out, s.notifications)
	return out, nil
}

func (s *Storage) SaveNotification(_ context.Context, id string, enabled bool) error {
	const op = "storage.memory.SaveNotification"

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Enabled = enabled
			return nil
		}
	}
	return fmt.Errorf("%s: %q: %w", op, id, storage.ErrNotificationNotFound)
}

func copyIntegration(in storage.Integration) storage.Integration {
	in.LastSync = copyString(in.LastSync)
	return in
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

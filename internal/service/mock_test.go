package service

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"bizdash/internal/storage"
)

type MockSettingsStorage struct {
	mock.Mock
}

func (m *MockSettingsStorage) GetIntegrations(ctx context.Context) ([]storage.Integration, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	integrations, ok := args.Get(0).([]storage.Integration)
	if !ok {
		return nil, fmt.Errorf("expected []storage.Integration, got %T", args.Get(0))
	}

	return integrations, args.Error(1)
}

func (m *MockSettingsStorage) SaveIntegrationStatus(ctx context.Context, id string, status string, lastSync *string) error {
	args := m.Called(ctx, id, status, lastSync)
	return args.Error(0)
}

func (m *MockSettingsStorage) GetNotifications(ctx context.Context) ([]storage.NotificationPref, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	prefs, ok := args.Get(0).([]storage.NotificationPref)
	if !ok {
		return nil, fmt.Errorf("expected []storage.NotificationPref, got %T", args.Get(0))
	}

	return prefs, args.Error(1)
}

func (m *MockSettingsStorage) SaveNotification(ctx context.Context, id string, enabled bool) error {
	args := m.Called(ctx, id, enabled)
	return args.Error(0)
}

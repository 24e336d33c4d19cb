package sqlite

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/internal/constants"
	"bizdash/internal/storage"
	"bizdash/internal/storage/sample"
)

func newSeeded(t *testing.T) (*Storage, *storage.Dataset) {
	t.Helper()

	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ds := sample.Default()
	require.NoError(t, s.Seed(context.Background(), ds.Integrations, ds.Notifications))
	return s, ds
}

func TestSeed_KeepsOrderAndValues(t *testing.T) {
	s, ds := newSeeded(t)

	integrations, err := s.GetIntegrations(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(ds.Integrations, integrations); diff != "" {
		t.Errorf("integrations mismatch (-want +got):\n%s", diff)
	}

	notifications, err := s.GetNotifications(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(ds.Notifications, notifications); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestSeed_DoesNotOverwriteSavedToggles(t *testing.T) {
	s, ds := newSeeded(t)
	ctx := context.Background()

	require.NoError(t, s.SaveIntegrationStatus(ctx, "slack", constants.IntegrationDisconnected, nil))
	require.NoError(t, s.Seed(ctx, ds.Integrations, ds.Notifications))

	got, err := s.GetIntegrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, constants.IntegrationDisconnected, got[0].Status)
	assert.Nil(t, got[0].LastSync)
}

func TestSaveIntegrationStatus(t *testing.T) {
	s, _ := newSeeded(t)
	ctx := context.Background()

	sync := "2024-03-16 09:30"
	require.NoError(t, s.SaveIntegrationStatus(ctx, "quickbooks", constants.IntegrationConnected, &sync))

	got, err := s.GetIntegrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, constants.IntegrationConnected, got[3].Status)
	require.NotNil(t, got[3].LastSync)
	assert.Equal(t, sync, *got[3].LastSync)

	err = s.SaveIntegrationStatus(ctx, "jira", constants.IntegrationConnected, nil)
	assert.ErrorIs(t, err, storage.ErrIntegrationNotFound)
}

func TestSaveNotification(t *testing.T) {
	s, _ := newSeeded(t)
	ctx := context.Background()

	require.NoError(t, s.SaveNotification(ctx, "email-orders", false))
	// повторная запись того же значения не должна считаться "не найдено"
	require.NoError(t, s.SaveNotification(ctx, "email-orders", false))

	got, err := s.GetNotifications(ctx)
	require.NoError(t, err)
	assert.False(t, got[0].Enabled)

	err = s.SaveNotification(ctx, "missing", true)
	assert.ErrorIs(t, err, storage.ErrNotificationNotFound)
}

func TestEmptyTables(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetIntegrations(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

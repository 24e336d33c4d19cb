package mysql

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/internal/constants"
	"bizdash/internal/storage"
	"bizdash/internal/storage/sample"
)

// Тесты ходят в настоящий MySQL, DSN берём из окружения, например
// BIZDASH_MYSQL_DSN="root:@tcp(localhost:3306)/bizdash_test?parseTime=true&clientFoundRows=true"
const dsnEnv = "BIZDASH_MYSQL_DSN"

var testStorage *Storage

func TestMain(m *testing.M) {
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		fmt.Printf("%s не задан, тесты mysql пропущены\n", dsnEnv)
		os.Exit(0)
	}

	var err error
	testStorage, err = Open(dsn)
	if err != nil {
		panic(fmt.Errorf("не удалось подключиться к тестовой БД: %w", err))
	}

	if err := testStorage.Ping(context.Background()); err != nil {
		panic(fmt.Errorf("ping failed: %w", err))
	}

	if err := testStorage.Migrate(context.Background()); err != nil {
		panic(err)
	}

	code := m.Run()

	_ = testStorage.Close()
	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := testStorage.db.ExecContext(ctx, `DELETE FROM settings_integrations`)
	require.NoError(t, err)
	_, err = testStorage.db.ExecContext(ctx, `DELETE FROM settings_notifications`)
	require.NoError(t, err)

	ds := sample.Default()
	require.NoError(t, testStorage.Seed(ctx, ds.Integrations, ds.Notifications))
}

func TestIntegrations(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	got, err := testStorage.GetIntegrations(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "slack", got[0].ID)
	assert.Nil(t, got[2].LastSync)

	sync := "2024-03-16 10:00"
	require.NoError(t, testStorage.SaveIntegrationStatus(ctx, "salesforce", constants.IntegrationConnected, &sync))

	got, err = testStorage.GetIntegrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, constants.IntegrationConnected, got[2].Status)
	require.NotNil(t, got[2].LastSync)
	assert.Equal(t, sync, *got[2].LastSync)

	err = testStorage.SaveIntegrationStatus(ctx, "jira", constants.IntegrationConnected, nil)
	assert.ErrorIs(t, err, storage.ErrIntegrationNotFound)
}

func TestNotifications(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	// значение не меняется, но строка найдена
	require.NoError(t, testStorage.SaveNotification(ctx, "email-orders", true))
	require.NoError(t, testStorage.SaveNotification(ctx, "push-tickets", true))

	got, err := testStorage.GetNotifications(ctx)
	require.NoError(t, err)
	assert.True(t, got[2].Enabled)

	err = testStorage.SaveNotification(ctx, "missing", true)
	assert.ErrorIs(t, err, storage.ErrNotificationNotFound)
}

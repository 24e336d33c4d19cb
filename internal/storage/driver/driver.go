// Package driver opens the settings repository selected in the config.
package driver

import (
	"context"
	"fmt"

	"bizdash/internal/config"
	"bizdash/internal/storage"
	"bizdash/internal/storage/memory"
	"bizdash/internal/storage/mysql"
	"bizdash/internal/storage/sample"
	"bizdash/internal/storage/sqlite"
)

const (
	Memory = "memory"
	SQLite = "sqlite"
	MySQL  = "mysql"
)

// Dataset возвращает встроенные данные или фикстуру из data_path.
func Dataset(cfg config.Config) (*storage.Dataset, error) {
	if cfg.DataPath == "" {
		return sample.Default(), nil
	}
	return sample.LoadFile(cfg.DataPath)
}

// Open открывает хранилище переключателей и засевает его значениями из ds.
// Возвращаемую функцию нужно вызвать при остановке.
func Open(ctx context.Context, cfg config.Config, ds *storage.Dataset) (storage.SettingsRepository, func() error, error) {
	const op = "storage.driver.Open"

	noop := func() error { return nil }

	switch cfg.Storage.Driver {
	case "", Memory:
		return memory.New(ds.Integrations, ds.Notifications), noop, nil

	case SQLite:
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", op, err)
		}
		if err := s.Seed(ctx, ds.Integrations, ds.Notifications); err != nil {
			s.Close()
			return nil, noop, fmt.Errorf("%s: %w", op, err)
		}
		return s, s.Close, nil

	case MySQL:
		s, err := mysql.New(cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", op, err)
		}
		if err := s.Ping(ctx); err != nil {
			s.Close()
			return nil, noop, fmt.Errorf("%s: ping: %w", op, err)
		}
		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, noop, fmt.Errorf("%s: %w", op, err)
		}
		if err := s.Seed(ctx, ds.Integrations, ds.Notifications); err != nil {
			s.Close()
			return nil, noop, fmt.Errorf("%s: %w", op, err)
		}
		return s, s.Close, nil
	}

	return nil, noop, fmt.Errorf("%s: unknown storage driver %q", op, cfg.Storage.Driver)
}

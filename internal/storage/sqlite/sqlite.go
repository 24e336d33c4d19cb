package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"bizdash/internal/storage"
)

type Storage struct {
	db *sql.DB
}

// New открывает файл базы (":memory:" для тестов) и создаёт таблицы настроек.
func New(path string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// sqlite не любит конкурентных писателей, а ":memory:" живёт в одном соединении
	db.SetMaxOpenConns(1)

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings_integrations (
			id          TEXT PRIMARY KEY,
			position    INTEGER NOT NULL,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL,
			last_sync   TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS settings_notifications (
			id          TEXT PRIMARY KEY,
			position    INTEGER NOT NULL,
			label       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			channel     TEXT NOT NULL,
			enabled     INTEGER NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: create tables: %w", op, err)
		}
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// Seed вставляет недостающие строки. Уже сохранённые переключатели не трогает.
func (s *Storage) Seed(ctx context.Context, integrations []storage.Integration, notifications []storage.NotificationPref) error {
	const op = "storage.sqlite.Seed"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer tx.Rollback()

	for i, in := range integrations {
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO settings_integrations (id, position, name, description, status, last_sync)
			VALUES (?, ?, ?, ?, ?, ?)`,
			in.ID, i, in.Name, in.Description, in.Status, nullString(in.LastSync))
		if err != nil {
			return fmt.Errorf("%s: integration %q: %w", op, in.ID, err)
		}
	}

	for i, n := range notifications {
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO settings_notifications (id, position, label, description, channel, enabled)
			VALUES (?, ?, ?, ?, ?, ?)`,
			n.ID, i, n.Label, n.Description, n.Channel, n.Enabled)
		if err != nil {
			return fmt.Errorf("%s: notification %q: %w", op, n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

func (s *Storage) GetIntegrations(ctx context.Context) ([]storage.Integration, error) {
	const op = "storage.sqlite.GetIntegrations"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, status, last_sync
		FROM settings_integrations
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []storage.Integration{}
	for rows.Next() {
		var (
			in       storage.Integration
			lastSync sql.NullString
		)
		if err := rows.Scan(&in.ID, &in.Name, &in.Description, &in.Status, &lastSync); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if lastSync.Valid {
			v := lastSync.String
			in.LastSync = &v
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return out, nil
}

func (s *Storage) SaveIntegrationStatus(ctx context.Context, id string, status string, lastSync *string) error {
	const op = "storage.sqlite.SaveIntegrationStatus"

	res, err := s.db.ExecContext(ctx,
		`UPDATE settings_integrations SET status = ?, last_sync = ? WHERE id = ?`,
		status, nullString(lastSync), id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(op, id, res, storage.ErrIntegrationNotFound)
}

func (s *Storage) GetNotifications(ctx context.Context) ([]storage.NotificationPref, error) {
	const op = "storage.sqlite.GetNotifications"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, description, channel, enabled
		FROM settings_notifications
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []storage.NotificationPref{}
	for rows.Next() {
		var n storage.NotificationPref
		if err := rows.Scan(&n.ID, &n.Label, &n.Description, &n.Channel, &n.Enabled); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return out, nil
}

func (s *Storage) SaveNotification(ctx context.Context, id string, enabled bool) error {
	const op = "storage.sqlite.SaveNotification"

	res, err := s.db.ExecContext(ctx,
		`UPDATE settings_notifications SET enabled = ? WHERE id = ?`, enabled, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(op, id, res, storage.ErrNotificationNotFound)
}

func checkAffected(op, id string, res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %q: %w", op, id, notFound)
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}


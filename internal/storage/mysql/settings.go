package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"bizdash/internal/storage"
)

// Seed вставляет недостающие строки (INSERT IGNORE), сохранённые значения остаются.
func (s *Storage) Seed(ctx context.Context, integrations []storage.Integration, notifications []storage.NotificationPref) error {
	const op = "storage.mysql.Seed"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: не удалось начать транзакцию: %w", op, err)
	}
	defer tx.Rollback()

	intStmt, err := tx.PrepareContext(ctx, `
		INSERT IGNORE INTO settings_integrations (id, position, name, description, status, last_sync)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare integrations: %w", op, err)
	}
	defer intStmt.Close()

	for i, in := range integrations {
		if _, err := intStmt.ExecContext(ctx, in.ID, i, in.Name, in.Description, in.Status, nullString(in.LastSync)); err != nil {
			return fmt.Errorf("%s: интеграция id=%s: %w", op, in.ID, err)
		}
	}

	notifStmt, err := tx.PrepareContext(ctx, `
		INSERT IGNORE INTO settings_notifications (id, position, label, description, channel, enabled)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare notifications: %w", op, err)
	}
	defer notifStmt.Close()

	for i, n := range notifications {
		if _, err := notifStmt.ExecContext(ctx, n.ID, i, n.Label, n.Description, n.Channel, n.Enabled); err != nil {
			return fmt.Errorf("%s: уведомление id=%s: %w", op, n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: ошибка коммита транзакции: %w", op, err)
	}

	return nil
}

func (s *Storage) GetIntegrations(ctx context.Context) ([]storage.Integration, error) {
	const op = "storage.mysql.GetIntegrations"

	stmt := `SELECT id, name, description, status, last_sync FROM settings_integrations ORDER BY position`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения интеграций: %w", op, err)
	}
	defer rows.Close()

	integrations := []storage.Integration{}
	for rows.Next() {
		var (
			in       storage.Integration
			lastSync sql.NullString
		)
		if err := rows.Scan(&in.ID, &in.Name, &in.Description, &in.Status, &lastSync); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		if lastSync.Valid {
			v := lastSync.String
			in.LastSync = &v
		}
		integrations = append(integrations, in)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return integrations, nil
}

func (s *Storage) SaveIntegrationStatus(ctx context.Context, id string, status string, lastSync *string) error {
	const op = "storage.mysql.SaveIntegrationStatus"

	res, err := s.db.ExecContext(ctx,
		`UPDATE settings_integrations SET status = ?, last_sync = ? WHERE id = ?`,
		status, nullString(lastSync), id)
	if err != nil {
		return fmt.Errorf("%s: ошибка обновления интеграции id=%s: %w", op, id, err)
	}

	return checkAffected(op, id, res, storage.ErrIntegrationNotFound)
}

func (s *Storage) GetNotifications(ctx context.Context) ([]storage.NotificationPref, error) {
	const op = "storage.mysql.GetNotifications"

	stmt := `SELECT id, label, description, channel, enabled FROM settings_notifications ORDER BY position`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения уведомлений: %w", op, err)
	}
	defer rows.Close()

	prefs := []storage.NotificationPref{}
	for rows.Next() {
		var n storage.NotificationPref
		if err := rows.Scan(&n.ID, &n.Label, &n.Description, &n.Channel, &n.Enabled); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		prefs = append(prefs, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return prefs, nil
}

func (s *Storage) SaveNotification(ctx context.Context, id string, enabled bool) error {
	const op = "storage.mysql.SaveNotification"

	res, err := s.db.ExecContext(ctx,
		`UPDATE settings_notifications SET enabled = ? WHERE id = ?`, enabled, id)
	if err != nil {
		return fmt.Errorf("%s: ошибка обновления уведомления id=%s: %w", op, id, err)
	}

	return checkAffected(op, id, res, storage.ErrNotificationNotFound)
}

func checkAffected(op, id string, res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: id=%s: %w", op, id, notFound)
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

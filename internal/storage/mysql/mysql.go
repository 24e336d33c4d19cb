package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"bizdash/internal/config"
)

type Storage struct {
	db *sql.DB
}

func New(cfg config.Config) (*Storage, error) {
	dsn := mysql.Config{
		User:                 cfg.DBUser,
		Passwd:               cfg.DBPassword,
		Net:                  "tcp",
		Addr:                 net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort)),
		DBName:               cfg.DBName,
		ParseTime:            true,
		AllowNativePasswords: true,
		// UPDATE без изменений должен возвращать 1 затронутую строку, иначе путаем с "не найдено"
		ClientFoundRows: true,
	}

	return Open(dsn.FormatDSN())
}

// Open подключается по готовому DSN. Используется тестами.
func Open(dsn string) (*Storage, error) {
	const op = "storage.mysql.Open"

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate создаёт таблицы настроек, если их ещё нет.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.mysql.Migrate"

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings_integrations (
			id          VARCHAR(64)  NOT NULL PRIMARY KEY,
			position    INT          NOT NULL,
			name        VARCHAR(128) NOT NULL,
			description VARCHAR(255) NOT NULL DEFAULT '',
			status      VARCHAR(32)  NOT NULL,
			last_sync   VARCHAR(32)  NULL
		)`,
		`CREATE TABLE IF NOT EXISTS settings_notifications (
			id          VARCHAR(64)  NOT NULL PRIMARY KEY,
			position    INT          NOT NULL,
			label       VARCHAR(128) NOT NULL,
			description VARCHAR(255) NOT NULL DEFAULT '',
			channel     VARCHAR(32)  NOT NULL,
			enabled     BOOLEAN      NOT NULL DEFAULT FALSE
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: ошибка создания таблицы: %w", op, err)
		}
	}

	return nil
}

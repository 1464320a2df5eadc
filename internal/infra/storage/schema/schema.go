package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
)

// ErrApply возвращается при ошибке создания схемы
var ErrApply = errors.New("schema: failed to apply schema")

// statements идемпотентные DDL-запросы; выполняются при старте сервиса
// Порядок важен: bookings и employee_blackouts ссылаются на employees
var statements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		email               TEXT,
		timezone            TEXT NOT NULL DEFAULT 'America/Chicago',
		active              BOOLEAN NOT NULL DEFAULT TRUE,
		daily_start_minutes INTEGER NOT NULL DEFAULT 540,
		daily_end_minutes   INTEGER NOT NULL DEFAULT 1020,
		slack_webhook_url   TEXT,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS employee_blackouts (
		id          BIGSERIAL PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		day         DATE NOT NULL,
		UNIQUE (employee_id, day)
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id                 TEXT PRIMARY KEY,
		employee_id        TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		customer_name      TEXT NOT NULL,
		customer_email     TEXT NOT NULL,
		day                DATE NOT NULL,
		start_minutes      INTEGER NOT NULL,
		duration_minutes   INTEGER NOT NULL,
		cancel_token       TEXT NOT NULL UNIQUE,
		cancel_expires     TIMESTAMPTZ NOT NULL,
		reschedule_token   TEXT NOT NULL UNIQUE,
		reschedule_expires TIMESTAMPTZ NOT NULL,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_employee_day ON bookings (employee_id, day)`,
}

// Apply создает таблицы и индексы, если они еще не существуют
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", ErrApply, err)
		}
	}
	return nil
}

package blackout

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Repository репозиторий для работы с blackout-датами сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория blackout-дат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// RegisterBatch регистрирует набор blackout-дат одним запросом
// Повторная регистрация пары (employee_id, day) молча игнорируется
// (ON CONFLICT DO NOTHING), поэтому операция идемпотентна.
// Вызывается внутри транзакции сервиса: либо весь набор, либо ничего
func (r *Repository) RegisterBatch(ctx context.Context, employeeID string, days []types.DateString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := registerBatchQuery(employeeID, days)
	if err != nil {
		return fmt.Errorf("%w: RegisterBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RegisterBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// registerBatchQuery собирает multi-VALUES вставку набора blackout-дат
// Суффикс ON CONFLICT делает повторную регистрацию даты no-op
func registerBatchQuery(employeeID string, days []types.DateString) (string, []interface{}, error) {
	insertBuilder := psqlbuilder.Insert("employee_blackouts").
		Columns("employee_id", "day")

	for _, day := range days {
		insertBuilder = insertBuilder.Values(employeeID, string(day))
	}

	return insertBuilder.
		Suffix("ON CONFLICT (employee_id, day) DO NOTHING").
		ToSql()
}

// HasDay проверяет, является ли дата blackout-датой сотрудника
func (r *Repository) HasDay(ctx context.Context, employeeID string, day types.DateString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("employee_blackouts").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"day": string(day)}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: HasDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: HasDay - rows error: %v", ErrScanRow, err)
	}

	return found, nil
}

// ListDays возвращает все blackout-даты сотрудника по возрастанию
func (r *Repository) ListDays(ctx context.Context, employeeID string) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day").
		From("employee_blackouts").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]types.DateString, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("%w: ListDays - scan day: %v", ErrScanRow, err)
		}
		days = append(days, types.NewDateString(day))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

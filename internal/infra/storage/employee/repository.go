package employee

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового сотрудника
// Все значения по умолчанию уже применены на уровне сервиса
func (r *Repository) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("employees").
		Columns(
			"id",
			"name",
			"email",
			"timezone",
			"active",
			"daily_start_minutes",
			"daily_end_minutes",
			"slack_webhook_url",
		).
		Values(
			emp.ID,
			emp.Name,
			emp.Email,
			emp.Timezone,
			emp.Active,
			emp.DailyStartMinutes,
			emp.DailyEndMinutes,
			emp.SlackWebhookURL,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	emp.CreatedAt = createdAt.Time

	return emp, nil
}

// Update обновляет только те поля, которые заданы в patch
// nil-поля не трогают сохранённые значения
func (r *Repository) Update(ctx context.Context, id string, patch *domain.EmployeePatch) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("employees").
		Where(squirrel.Eq{"id": id})

	if patch.Name != nil {
		updateBuilder = updateBuilder.Set("name", *patch.Name)
	}
	if patch.Email != nil {
		updateBuilder = updateBuilder.Set("email", *patch.Email)
	}
	if patch.Timezone != nil {
		updateBuilder = updateBuilder.Set("timezone", *patch.Timezone)
	}
	if patch.Active != nil {
		updateBuilder = updateBuilder.Set("active", *patch.Active)
	}
	if patch.DailyStartMinutes != nil {
		updateBuilder = updateBuilder.Set("daily_start_minutes", *patch.DailyStartMinutes)
	}
	if patch.DailyEndMinutes != nil {
		updateBuilder = updateBuilder.Set("daily_end_minutes", *patch.DailyEndMinutes)
	}
	if patch.SlackWebhookURL != nil {
		updateBuilder = updateBuilder.Set("slack_webhook_url", *patch.SlackWebhookURL)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := employeeColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	emp, err := scanEmployee(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan employee: %v", ErrScanRow, err)
	}

	return emp, nil
}

// ListActive возвращает всех активных сотрудников, отсортированных по имени
// Деактивированные сотрудники не попадают в выдачу, но сохраняют историю бронирований
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listActiveQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return employees, nil
}

// listActiveQuery собирает выборку активных сотрудников
// Сортировка по имени - это контракт листинга, а не косметика
func listActiveQuery() (string, []interface{}, error) {
	return employeeColumns().
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()
}

func employeeColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"email",
		"timezone",
		"active",
		"daily_start_minutes",
		"daily_end_minutes",
		"slack_webhook_url",
		"created_at",
	).From("employees")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var emp domain.Employee
	var createdAt sql.NullTime

	err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.Timezone,
		&emp.Active,
		&emp.DailyStartMinutes,
		&emp.DailyEndMinutes,
		&emp.SlackWebhookURL,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	emp.CreatedAt = createdAt.Time

	return &emp, nil
}

package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Repository репозиторий для работы с реестром бронирований
// Единственный писатель таблицы bookings; token-операции только
// читают и условно удаляют
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе с обоими action-токенами
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"employee_id",
			"customer_name",
			"customer_email",
			"day",
			"start_minutes",
			"duration_minutes",
			"cancel_token",
			"cancel_expires",
			"reschedule_token",
			"reschedule_expires",
		).
		Values(
			b.ID,
			b.EmployeeID,
			b.CustomerName,
			b.CustomerEmail,
			string(b.Day),
			b.StartMinutes,
			b.DurationMinutes,
			b.CancelToken,
			b.CancelExpires,
			b.RescheduleToken,
			b.RescheduleExpires,
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

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByEmployeeAndDay получает бронирования сотрудника на дату
// Внутри транзакции добавляет FOR UPDATE - блокировка против гонки
// при одновременном создании бронирований на один слот
func (r *Repository) GetByEmployeeAndDay(ctx context.Context, employeeID string, day types.DateString) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := getByEmployeeAndDayQuery(employeeID, day, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// DeleteByCancelToken условно удаляет бронирование по cancel-токену
// Удаление атомарно на уровне строки: при одновременных запросах с одним
// токеном ровно один увидит удалённую строку, остальные - ErrBookingNotFound.
// Просроченный, неверный или уже использованный токен неразличимы
func (r *Repository) DeleteByCancelToken(ctx context.Context, token string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := deleteByCancelTokenQuery(token)
	if err != nil {
		return "", fmt.Errorf("%w: DeleteByCancelToken - build delete query: %v", ErrBuildQuery, err)
	}

	var id string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrBookingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: DeleteByCancelToken - execute delete: %v", ErrExecQuery, err)
	}

	return id, nil
}

// GetByRescheduleToken получает бронирование по действующему reschedule-токену
// Бронирование не изменяется: перенос завершает внешний flow бронирования,
// а до тех пор токен можно предъявлять повторно
func (r *Repository) GetByRescheduleToken(ctx context.Context, token string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := getByRescheduleTokenQuery(token)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRescheduleToken - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRescheduleToken - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// getByEmployeeAndDayQuery собирает выборку бронирований сотрудника на дату
func getByEmployeeAndDayQuery(employeeID string, day types.DateString, forUpdate bool) (string, []interface{}, error) {
	selectBuilder := bookingColumns().
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"day": string(day)}).
		OrderBy("start_minutes ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder.ToSql()
}

// deleteByCancelTokenQuery собирает условное удаление по cancel-токену
// Предикат по cancel_expires обязателен: просроченный токен не удаляет ничего
func deleteByCancelTokenQuery(token string) (string, []interface{}, error) {
	return psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"cancel_token": token}).
		Where(squirrel.Expr("cancel_expires > NOW()")).
		Suffix("RETURNING id").
		ToSql()
}

// getByRescheduleTokenQuery собирает выборку по действующему reschedule-токену
func getByRescheduleTokenQuery(token string) (string, []interface{}, error) {
	return bookingColumns().
		Where(squirrel.Eq{"reschedule_token": token}).
		Where(squirrel.Expr("reschedule_expires > NOW()")).
		ToSql()
}

func bookingColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"employee_id",
		"customer_name",
		"customer_email",
		"day",
		"start_minutes",
		"duration_minutes",
		"cancel_token",
		"cancel_expires",
		"reschedule_token",
		"reschedule_expires",
		"created_at",
	).From("bookings")
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var day time.Time
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.EmployeeID,
			&b.CustomerName,
			&b.CustomerEmail,
			&day,
			&b.StartMinutes,
			&b.DurationMinutes,
			&b.CancelToken,
			&b.CancelExpires,
			&b.RescheduleToken,
			&b.RescheduleExpires,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.Day = types.NewDateString(day)
		b.CreatedAt = createdAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

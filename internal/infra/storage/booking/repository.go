package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	"github.com/m04kA/Arena-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Arena-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/Arena-BookingService/pkg/types"
)

// uniqueViolationCode код ошибки Postgres при нарушении уникального ограничения
const uniqueViolationCode = "23505"

// slotKeyConstraint имя уникального ограничения на (club_id, sport_id, booking_date, start_time)
const slotKeyConstraint = "bookings_slot_key"

var bookingColumns = []string{
	"id",
	"user_id",
	"club_id",
	"sport_id",
	"booking_date",
	"start_time",
	"end_time",
	"contact_name",
	"contact_phone",
	"amount",
	"payment_status",
	"gateway_order_id",
	"gateway_payment_id",
	"gateway_signature",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Уникальность слота гарантирует ограничение bookings_slot_key в БД:
// нарушение ограничения транслируется в ErrSlotTaken. Проверка "существует ли
// бронирование" перед вставкой не требуется и не должна быть единственной
// защитой - под конкурентной нагрузкой решает только constraint
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"club_id",
			"sport_id",
			"booking_date",
			"start_time",
			"end_time",
			"contact_name",
			"contact_phone",
			"amount",
			"payment_status",
		).
		Values(
			booking.UserID,
			booking.ClubID,
			booking.SportID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.ContactName,
			booking.ContactPhone,
			booking.Amount,
			booking.PaymentStatus,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		if isSlotKeyViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByIDAndOrderRef получает бронирование по ID и ссылке на заказ платёжного шлюза
// Используется при подтверждении оплаты: callback обязан указывать оба идентификатора
func (r *Repository) GetByIDAndOrderRef(ctx context.Context, id int64, orderRef string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id, "gateway_order_id": orderRef}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndOrderRef - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByIDAndOrderRef")
}

// GetReservedStartTimes получает отсортированный список занятых времён начала
// для (клуб, спорт, дата). Любой ряд считается занятым независимо от payment_status.
// Внутри транзакции добавляет FOR UPDATE для блокировки прочитанных рядов
func (r *Repository) GetReservedStartTimes(ctx context.Context, clubID, sportID int64, date time.Time) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("start_time").
		From("bookings").
		Where(squirrel.Eq{
			"club_id":      clubID,
			"sport_id":     sportID,
			"booking_date": date,
		}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedStartTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedStartTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	startTimes := make([]string, 0)
	for rows.Next() {
		var ts types.TimeString
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("%w: GetReservedStartTimes - scan start_time: %v", ErrScanRow, err)
		}
		startTimes = append(startTimes, ts.String())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservedStartTimes - rows error: %v", ErrScanRow, err)
	}

	return startTimes, nil
}

// GetByUserID получает список бронирований пользователя (сначала новые)
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// SetGatewayOrder сохраняет ссылку на заказ платёжного шлюза на бронировании
func (r *Repository) SetGatewayOrder(ctx context.Context, id int64, orderRef string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("gateway_order_id", orderRef).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetGatewayOrder - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetGatewayOrder")
}

// MarkPaid переводит бронирование pending -> paid и сохраняет идентификаторы платежа
// Обновляет только ряды со статусом pending: повторный вызов (двойной callback)
// не изменит ни одного ряда и вернёт ErrInvalidTransition
func (r *Repository) MarkPaid(ctx context.Context, id int64, paymentRef, signature string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", domain.PaymentStatusPaid).
		Set("gateway_payment_id", paymentRef).
		Set("gateway_signature", signature).
		Where(squirrel.Eq{
			"id":             id,
			"payment_status": domain.PaymentStatusPending,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingTransition(ctx, executor, query, args, "MarkPaid")
}

// MarkPaidDirect переводит бронирование pending -> paid без данных шлюза
// Используется в режиме прямого подтверждения: gateway_* колонки остаются NULL,
// чтобы такие ряды не путались с оплаченными через шлюз
func (r *Repository) MarkPaidDirect(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", domain.PaymentStatusPaid).
		Where(squirrel.Eq{
			"id":             id,
			"payment_status": domain.PaymentStatusPending,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaidDirect - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingTransition(ctx, executor, query, args, "MarkPaidDirect")
}

// MarkFailed переводит бронирование pending -> failed
func (r *Repository) MarkFailed(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", domain.PaymentStatusFailed).
		Where(squirrel.Eq{
			"id":             id,
			"payment_status": domain.PaymentStatusPending,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkFailed - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingTransition(ctx, executor, query, args, "MarkFailed")
}

// MarkRefunded переводит бронирование paid -> refunded
// Вызывается вручную/внешним процессом, HTTP поверхности у операции нет
func (r *Repository) MarkRefunded(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", domain.PaymentStatusRefunded).
		Where(squirrel.Eq{
			"id":             id,
			"payment_status": domain.PaymentStatusPaid,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRefunded - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingTransition(ctx, executor, query, args, "MarkRefunded")
}

// Delete удаляет бронирование (физическое удаление)
// Используется как компенсирующее действие, когда создание заказа в платёжном
// шлюзе не удалось и pending бронирование нельзя оставлять
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

// execExpectingRow выполняет запрос, требующий ровно одного затронутого ряда
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// execExpectingTransition выполняет переход статуса
// Ноль затронутых рядов означает, что бронирование не найдено или уже не в
// исходном статусе - различить это может только вызывающая сторона
func (r *Repository) execExpectingTransition(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrInvalidTransition
	}

	return nil
}

// scanBooking сканирует одну строку результата в бронирование
func (r *Repository) scanBooking(row *sql.Row, op string) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ClubID,
		&booking.SportID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.ContactName,
		&booking.ContactPhone,
		&booking.Amount,
		&booking.PaymentStatus,
		&booking.GatewayOrderID,
		&booking.GatewayPaymentID,
		&booking.GatewaySignature,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ClubID,
			&booking.SportID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.ContactName,
			&booking.ContactPhone,
			&booking.Amount,
			&booking.PaymentStatus,
			&booking.GatewayOrderID,
			&booking.GatewayPaymentID,
			&booking.GatewaySignature,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isSlotKeyViolation проверяет, что ошибка - нарушение уникального ограничения слота
func isSlotKeyViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != uniqueViolationCode {
		return false
	}
	// Любое 23505 на bookings трактуем как занятый слот, но проверяем имя
	// ограничения, если драйвер его сообщил
	return pqErr.Constraint == "" || pqErr.Constraint == slotKeyConstraint
}

package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	"github.com/m04kA/Arena-BookingService/pkg/types"
)

// validateRequest валидирует параметры слота
// Контактные данные проверяются отдельно (validateContact) - после проверок
// клуба, спорта и окна бронирования
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ClubID <= 0 {
		return fmt.Errorf("%w: clubID must be positive", ErrInvalidInput)
	}

	if req.SportID <= 0 {
		return fmt.Errorf("%w: sportID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата и время начала попадают в окно бронирования
// Порядок: прошлое, горизонт (включительно), для сегодняшней даты - время начала
func validateDate(req *Request, now time.Time) error {
	if isDateInPast(req.Date, now) {
		return ErrDateInPast
	}

	maxDate := truncateToDay(now).AddDate(0, 0, domain.MaxAdvanceBookingDays)
	if truncateToDay(req.Date).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxAdvanceBookingDays)
	}

	if isSameDay(req.Date, now) && req.StartTime.IsBefore(types.NewTimeString(now)) {
		return ErrStartTimeInPast
	}

	return nil
}

// validateContact проверяет, что контактные данные заполнены
func validateContact(req *Request) error {
	if strings.TrimSpace(req.ContactName) == "" || strings.TrimSpace(req.ContactPhone) == "" {
		return ErrMissingContact
	}

	if len(req.ContactName) > domain.MaxContactNameLength {
		return fmt.Errorf("%w: contact name too long", ErrInvalidInput)
	}

	if len(req.ContactPhone) > domain.MaxContactPhoneLength {
		return fmt.Errorf("%w: contact phone too long", ErrInvalidInput)
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return truncateToDay(date).Before(truncateToDay(now))
}

// truncateToDay нормализует значение к полуночи UTC его календарной даты
// Дата запроса и now могут быть в разных часовых поясах (дата парсится как
// UTC, now - в поясе сервера): сравниваем календарные дни, а не моменты
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
	// MaxAdvanceBookingDays максимальный горизонт бронирования (включительно)
	MaxAdvanceBookingDays = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxContactNameLength   = 100
	MaxContactPhoneLength  = 15
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerHour используется при расчёте стоимости брони
const MinutesPerHour = 60

// TerminalPaymentStatuses статусы, из которых нет переходов
var TerminalPaymentStatuses = []PaymentStatus{
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

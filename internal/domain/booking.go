package domain

import (
	"time"

	"github.com/m04kA/Arena-BookingService/pkg/types"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking represents a reserved time slot at a sports club.
//
// The tuple (ClubID, SportID, Date, StartTime) is unique across all bookings
// regardless of payment status; the bookings_slot_key constraint in the store
// is the single source of truth for that guarantee.
type Booking struct {
	ID      int64
	UserID  int64
	ClubID  int64
	SportID int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	ContactName  string
	ContactPhone string

	Amount        float64
	PaymentStatus PaymentStatus

	// Gateway references, set by the payment coordinator after order creation
	GatewayOrderID   *string
	GatewayPaymentID *string
	GatewaySignature *string

	CreatedAt time.Time
}

// IsPaid returns true if the booking has been paid for
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentStatusPaid
}

// IsTerminal returns true if no further payment transition is allowed
func (b *Booking) IsTerminal() bool {
	return b.PaymentStatus == PaymentStatusFailed || b.PaymentStatus == PaymentStatusRefunded
}

// CanTransitionTo reports whether the payment status may move to target.
// Allowed transitions: pending→paid, pending→failed, paid→refunded.
func (b *Booking) CanTransitionTo(target PaymentStatus) bool {
	switch b.PaymentStatus {
	case PaymentStatusPending:
		return target == PaymentStatusPaid || target == PaymentStatusFailed
	case PaymentStatusPaid:
		return target == PaymentStatusRefunded
	default:
		return false
	}
}

// DurationHours returns the booked interval length in hours.
// An end time at or before the start is treated as crossing midnight.
func (b *Booking) DurationHours() (float64, error) {
	startMin, err := b.StartTime.Minutes()
	if err != nil {
		return 0, err
	}
	endMin, err := b.EndTime.Minutes()
	if err != nil {
		return 0, err
	}
	if endMin <= startMin {
		endMin += 24 * MinutesPerHour
	}
	return float64(endMin-startMin) / MinutesPerHour, nil
}

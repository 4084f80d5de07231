package confirm_payment

import (
	"context"

	"github.com/m04kA/Arena-BookingService/internal/domain"
)

type PaymentCoordinator interface {
	Confirm(ctx context.Context, bookingID int64, orderRef, paymentRef, signature string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

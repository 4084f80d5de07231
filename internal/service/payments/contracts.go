package payments

import (
	"context"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	"github.com/m04kA/Arena-BookingService/internal/integrations/paymentgateway"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByIDAndOrderRef(ctx context.Context, id int64, orderRef string) (*domain.Booking, error)
	SetGatewayOrder(ctx context.Context, id int64, orderRef string) error
	MarkPaid(ctx context.Context, id int64, paymentRef, signature string) error
	MarkPaidDirect(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// GatewayClient интерфейс клиента платёжного шлюза
type GatewayClient interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string, notes map[string]string) (*paymentgateway.Order, error)
	VerifySignature(orderRef, paymentRef, signature string) bool
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	NotifyConfirmedAsync(booking *domain.Booking)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

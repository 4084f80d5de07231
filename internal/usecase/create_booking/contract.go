package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	"github.com/m04kA/Arena-BookingService/internal/service/payments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetReservedStartTimes(ctx context.Context, clubID, sportID int64, date time.Time) ([]string, error)
}

// ClubRepository интерфейс репозитория клубов
type ClubRepository interface {
	GetApprovedByID(ctx context.Context, id int64) (*domain.Club, error)
}

// PaymentCoordinator интерфейс координатора платежей
type PaymentCoordinator interface {
	Initiate(ctx context.Context, booking *domain.Booking) (*payments.InitiateResult, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

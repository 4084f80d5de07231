package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/Arena-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetReservedStartTimes возвращает занятые времена начала для (клуб, спорт, дата)
	// Любой ряд блокирует слот независимо от payment_status
	GetReservedStartTimes(ctx context.Context, clubID, sportID int64, date time.Time) ([]string, error)
}

// ClubRepository интерфейс репозитория клубов
type ClubRepository interface {
	GetApprovedByID(ctx context.Context, id int64) (*domain.Club, error)
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

package notifications

import (
	"context"

	"github.com/m04kA/Arena-BookingService/internal/domain"
)

// SMSClient интерфейс клиента SMS провайдера
type SMSClient interface {
	Send(ctx context.Context, phone, message string) error
}

// ClubCatalogue интерфейс для чтения данных клуба и спорта для текста сообщения
type ClubCatalogue interface {
	GetApprovedByID(ctx context.Context, id int64) (*domain.Club, error)
	GetSportByID(ctx context.Context, id int64) (*domain.Sport, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_clubs

import (
	"context"

	"github.com/m04kA/Arena-BookingService/internal/domain"
)

type ClubRepository interface {
	ListApproved(ctx context.Context) ([]*domain.Club, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

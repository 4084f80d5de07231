package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Arena-BookingService/internal/infra/storage/booking"
)

type fakeRepo struct {
	booking *domain.Booking
	list    []*domain.Booking
	err     error
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, _ int64) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetByID_OwnBooking(t *testing.T) {
	booking := &domain.Booking{ID: 1, UserID: 10, Date: time.Now()}
	svc := NewService(&fakeRepo{booking: booking}, nopLogger{})

	got, err := svc.GetByID(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, booking, got)
}

func TestGetByID_ForeignBookingDenied(t *testing.T) {
	booking := &domain.Booking{ID: 1, UserID: 10}
	svc := NewService(&fakeRepo{booking: booking}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{err: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	list := []*domain.Booking{{ID: 2, UserID: 10}, {ID: 1, UserID: 10}}
	svc := NewService(&fakeRepo{list: list}, nopLogger{})

	got, err := svc.GetUserBookings(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetUserBookings_InvalidUserID(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_RepoError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), 10)
	assert.ErrorIs(t, err, ErrInternal)
}

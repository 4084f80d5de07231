package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Arena-BookingService/internal/domain"
)

type fakeSMSClient struct {
	sentPhone   string
	sentMessage string
	err         error
}

func (f *fakeSMSClient) Send(_ context.Context, phone, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sentPhone = phone
	f.sentMessage = message
	return nil
}

type fakeCatalogue struct {
	club  *domain.Club
	sport *domain.Sport
}

func (f *fakeCatalogue) GetApprovedByID(_ context.Context, _ int64) (*domain.Club, error) {
	if f.club == nil {
		return nil, errors.New("not found")
	}
	return f.club, nil
}

func (f *fakeCatalogue) GetSportByID(_ context.Context, _ int64) (*domain.Sport, error) {
	if f.sport == nil {
		return nil, errors.New("not found")
	}
	return f.sport, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func paidBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		ClubID:        1,
		SportID:       2,
		Date:          time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		EndTime:       "19:30",
		ContactPhone:  "+919876543210",
		Amount:        750,
		PaymentStatus: domain.PaymentStatusPaid,
	}
}

func TestNotifyConfirmed_SendsSMS(t *testing.T) {
	sms := &fakeSMSClient{}
	catalogue := &fakeCatalogue{
		club:  &domain.Club{ID: 1, Name: "Smash Arena"},
		sport: &domain.Sport{ID: 2, Name: "Badminton"},
	}
	dispatcher := NewDispatcher(sms, catalogue, 5*time.Second, nopLogger{})

	ok := dispatcher.NotifyConfirmed(context.Background(), paidBooking())

	require.True(t, ok)
	assert.Equal(t, "+919876543210", sms.sentPhone)
	assert.Contains(t, sms.sentMessage, "Smash Arena")
	assert.Contains(t, sms.sentMessage, "Badminton")
	assert.Contains(t, sms.sentMessage, "2025-10-20")
	assert.Contains(t, sms.sentMessage, "18:00-19:30")
}

func TestNotifyConfirmed_CatalogueFailureUsesFallbackNames(t *testing.T) {
	sms := &fakeSMSClient{}
	dispatcher := NewDispatcher(sms, &fakeCatalogue{}, 5*time.Second, nopLogger{})

	ok := dispatcher.NotifyConfirmed(context.Background(), paidBooking())

	require.True(t, ok)
	assert.Contains(t, sms.sentMessage, "club #1")
	assert.Contains(t, sms.sentMessage, "sport #2")
}

func TestNotifyConfirmed_SendFailureReturnsFalse(t *testing.T) {
	sms := &fakeSMSClient{err: errors.New("provider down")}
	dispatcher := NewDispatcher(sms, &fakeCatalogue{}, 5*time.Second, nopLogger{})

	ok := dispatcher.NotifyConfirmed(context.Background(), paidBooking())

	assert.False(t, ok)
}

func TestNotifyConfirmed_LogOnlyModeWithoutClient(t *testing.T) {
	dispatcher := NewDispatcher(nil, &fakeCatalogue{}, 5*time.Second, nopLogger{})

	ok := dispatcher.NotifyConfirmed(context.Background(), paidBooking())

	assert.False(t, ok)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Arena-BookingService/pkg/types"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   PaymentStatus
		target PaymentStatus
		want   bool
	}{
		{name: "pending to paid", from: PaymentStatusPending, target: PaymentStatusPaid, want: true},
		{name: "pending to failed", from: PaymentStatusPending, target: PaymentStatusFailed, want: true},
		{name: "pending to refunded", from: PaymentStatusPending, target: PaymentStatusRefunded, want: false},
		{name: "paid to refunded", from: PaymentStatusPaid, target: PaymentStatusRefunded, want: true},
		{name: "paid to failed", from: PaymentStatusPaid, target: PaymentStatusFailed, want: false},
		{name: "failed is terminal", from: PaymentStatusFailed, target: PaymentStatusPaid, want: false},
		{name: "refunded is terminal", from: PaymentStatusRefunded, target: PaymentStatusPaid, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{PaymentStatus: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.target))
		})
	}
}

func TestBooking_IsTerminal(t *testing.T) {
	assert.False(t, (&Booking{PaymentStatus: PaymentStatusPending}).IsTerminal())
	assert.False(t, (&Booking{PaymentStatus: PaymentStatusPaid}).IsTerminal())
	assert.True(t, (&Booking{PaymentStatus: PaymentStatusFailed}).IsTerminal())
	assert.True(t, (&Booking{PaymentStatus: PaymentStatusRefunded}).IsTerminal())
}

func TestBooking_DurationHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{name: "one hour", start: "10:00", end: "11:00", want: 1},
		{name: "ninety minutes", start: "10:00", end: "11:30", want: 1.5},
		{name: "crosses midnight", start: "23:00", end: "00:30", want: 1.5},
		{name: "equal times wrap to full day", start: "10:00", end: "10:00", want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{
				StartTime: types.TimeString(tt.start),
				EndTime:   types.TimeString(tt.end),
			}
			got, err := b.DurationHours()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestClub_ComputeAmount(t *testing.T) {
	club := &Club{PricePerHour: 500}

	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{name: "one hour", start: "10:00", end: "11:00", want: 500},
		{name: "hour and a half", start: "18:00", end: "19:30", want: 750},
		{name: "crosses midnight", start: "23:00", end: "00:30", want: 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := club.ComputeAmount(types.TimeString(tt.start), types.TimeString(tt.end))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	_, err := club.ComputeAmount("bad", "11:00")
	assert.Error(t, err)
}

func TestClub_OffersSport(t *testing.T) {
	club := &Club{Sports: []Sport{{ID: 1, Name: "Badminton"}, {ID: 3, Name: "Tennis"}}}

	assert.True(t, club.OffersSport(1))
	assert.True(t, club.OffersSport(3))
	assert.False(t, club.OffersSport(2))
}

func TestClub_HasValidHours(t *testing.T) {
	valid := &Club{OpenTime: "09:00", CloseTime: "21:00", SlotDurationMinutes: 60}
	assert.True(t, valid.HasValidHours())

	assert.False(t, (&Club{OpenTime: "21:00", CloseTime: "09:00", SlotDurationMinutes: 60}).HasValidHours())
	assert.False(t, (&Club{OpenTime: "09:00", CloseTime: "21:00"}).HasValidHours())
	assert.False(t, (&Club{CloseTime: "21:00", SlotDurationMinutes: 60}).HasValidHours())
}

package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	"github.com/m04kA/Arena-BookingService/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("two hour window with hour slots", func(t *testing.T) {
		slots, err := generateSlots("09:00", "11:00", 60)
		require.NoError(t, err)

		require.Len(t, slots, 2)
		assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
		assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
		assert.Equal(t, types.TimeString("10:00"), slots[1].StartTime)
		assert.Equal(t, types.TimeString("11:00"), slots[1].EndTime)
		assert.True(t, slots[0].Available)
		assert.True(t, slots[1].Available)
	})

	t.Run("trailing partial slot is dropped", func(t *testing.T) {
		// 09:00-11:00 по 45 минут: 09:00-09:45, 09:45-10:30; 10:30-11:15 не помещается
		slots, err := generateSlots("09:00", "11:00", 45)
		require.NoError(t, err)

		require.Len(t, slots, 2)
		assert.Equal(t, types.TimeString("09:45"), slots[0].EndTime)
		assert.Equal(t, types.TimeString("10:30"), slots[1].EndTime)
	})

	t.Run("full day", func(t *testing.T) {
		slots, err := generateSlots("06:00", "23:00", 60)
		require.NoError(t, err)
		assert.Len(t, slots, 17)
	})

	t.Run("open equals close", func(t *testing.T) {
		slots, err := generateSlots("10:00", "10:00", 60)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("open after close", func(t *testing.T) {
		slots, err := generateSlots("21:00", "09:00", 60)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		slots, err := generateSlots("09:00", "21:00", 0)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("duration longer than window", func(t *testing.T) {
		slots, err := generateSlots("09:00", "10:00", 120)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestDropPastSlots(t *testing.T) {
	slots := []domain.Slot{
		{StartTime: "09:00", EndTime: "10:00", Available: true},
		{StartTime: "14:00", EndTime: "15:00", Available: true},
		{StartTime: "15:00", EndTime: "16:00", Available: true},
	}

	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)
	filtered := dropPastSlots(slots, now)

	// Слот 14:00 уже начался и исключается, 15:00 остаётся
	require.Len(t, filtered, 1)
	assert.Equal(t, types.TimeString("15:00"), filtered[0].StartTime)
}

func TestDropPastSlots_SubMinutePrecision(t *testing.T) {
	slots := []domain.Slot{
		{StartTime: "14:30", EndTime: "15:30", Available: true},
		{StartTime: "15:30", EndTime: "16:30", Available: true},
	}

	// В 14:30:45 слот 14:30 уже начался, хотя HH:MM совпадает с текущим
	now := time.Date(2025, 10, 15, 14, 30, 45, 0, time.UTC)
	filtered := dropPastSlots(slots, now)

	require.Len(t, filtered, 1)
	assert.Equal(t, types.TimeString("15:30"), filtered[0].StartTime)
}

func TestDropPastSlots_ExactStart(t *testing.T) {
	slots := []domain.Slot{
		{StartTime: "14:30", EndTime: "15:30", Available: true},
	}

	// Слот, начинающийся ровно сейчас, ещё доступен
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)
	filtered := dropPastSlots(slots, now)

	assert.Len(t, filtered, 1)
}

func TestMarkReserved(t *testing.T) {
	slots := []domain.Slot{
		{StartTime: "09:00", EndTime: "10:00", Available: true},
		{StartTime: "10:00", EndTime: "11:00", Available: true},
		{StartTime: "11:00", EndTime: "12:00", Available: true},
	}

	marked := markReserved(slots, []string{"10:00"})

	require.Len(t, marked, 3)
	assert.True(t, marked[0].Available)
	assert.False(t, marked[1].Available)
	assert.True(t, marked[2].Available)
}

func TestMarkReserved_NoReservations(t *testing.T) {
	slots := []domain.Slot{
		{StartTime: "09:00", EndTime: "10:00", Available: true},
	}

	marked := markReserved(slots, nil)

	require.Len(t, marked, 1)
	assert.True(t, marked[0].Available)
}

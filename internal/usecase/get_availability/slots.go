package get_availability

import (
	"time"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	"github.com/m04kA/Arena-BookingService/pkg/types"
)

// generateSlots генерирует упорядоченную последовательность слотов [start, end)
// от времени открытия с фиксированным шагом durationMinutes
//
// Чистая функция: одинаковые входы всегда дают одинаковую последовательность.
// Последний неполный интервал, выходящий за время закрытия, отбрасывается.
// Если open >= close или duration <= 0, возвращается пустая последовательность
func generateSlots(openTime, closeTime types.TimeString, durationMinutes int) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	if durationMinutes <= 0 || !openTime.IsBefore(closeTime) {
		return slots, nil
	}

	cursor := openTime
	for {
		slotEnd, err := cursor.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}

		// AddMinutes заворачивается через полночь: слот, конец которого
		// оказался "раньше" начала, вышел за пределы суток
		if slotEnd.IsAfter(closeTime) || !cursor.IsBefore(slotEnd) {
			break
		}

		slots = append(slots, domain.Slot{
			StartTime: cursor,
			EndTime:   slotEnd,
			Available: true,
		})

		cursor = slotEnd
	}

	return slots, nil
}

// dropPastSlots убирает слоты, начавшиеся раньше текущего времени
// Применяется только когда запрошенная дата - сегодня: прошедшие слоты
// полностью исключаются из ответа, а не помечаются занятыми
//
// Сравниваются моменты, а не строки HH:MM: в 14:30:45 слот 14:30 уже начался.
// Слот, начинающийся ровно сейчас, остаётся доступным
func dropPastSlots(slots []domain.Slot, now time.Time) []domain.Slot {
	filtered := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		start, err := slot.StartTime.At(now, now.Location())
		if err == nil && start.Before(now) {
			continue
		}
		filtered = append(filtered, slot)
	}

	return filtered
}

// markReserved помечает занятые слоты по множеству занятых времён начала
func markReserved(slots []domain.Slot, reservedStartTimes []string) []domain.Slot {
	reserved := make(map[string]struct{}, len(reservedStartTimes))
	for _, st := range reservedStartTimes {
		reserved[st] = struct{}{}
	}

	for i := range slots {
		if _, ok := reserved[slots[i].StartTime.String()]; ok {
			slots[i].Available = false
		}
	}

	return slots
}

package get_availability

import (
	"github.com/m04kA/Arena-BookingService/internal/domain"
	getAvailability "github.com/m04kA/Arena-BookingService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP модель ответа со слотами на дату
type AvailabilityResponse struct {
	ClubID  int64          `json:"clubId"`
	SportID int64          `json:"sportId"`
	Date    string         `json:"date"` // "2025-10-15"
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		})
	}

	return &AvailabilityResponse{
		ClubID:  resp.ClubID,
		SportID: resp.SportID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

package list_clubs

import (
	"github.com/m04kA/Arena-BookingService/internal/domain"
)

// SportResponse HTTP модель вида спорта
type SportResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ClubResponse HTTP модель клуба в каталоге
type ClubResponse struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	Location            string          `json:"location"`
	OpenTime            string          `json:"openTime"`
	CloseTime           string          `json:"closeTime"`
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	PricePerHour        float64         `json:"pricePerHour"`
	ContactNumber       string          `json:"contactNumber"`
	Sports              []SportResponse `json:"sports"`
}

// ClubsResponse HTTP модель списка клубов
type ClubsResponse struct {
	Clubs []ClubResponse `json:"clubs"`
}

// FromDomain конвертирует список доменных клубов в HTTP response
func FromDomain(items []*domain.Club) *ClubsResponse {
	clubs := make([]ClubResponse, 0, len(items))
	for _, club := range items {
		sports := make([]SportResponse, 0, len(club.Sports))
		for _, sport := range club.Sports {
			sports = append(sports, SportResponse{ID: sport.ID, Name: sport.Name})
		}

		clubs = append(clubs, ClubResponse{
			ID:                  club.ID,
			Name:                club.Name,
			Location:            club.Location,
			OpenTime:            club.OpenTime.String(),
			CloseTime:           club.CloseTime.String(),
			SlotDurationMinutes: club.SlotDurationMinutes,
			PricePerHour:        club.PricePerHour,
			ContactNumber:       club.ContactNumber,
			Sports:              sports,
		})
	}

	return &ClubsResponse{Clubs: clubs}
}

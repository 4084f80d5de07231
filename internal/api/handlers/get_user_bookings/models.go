package get_user_bookings

import (
	"time"

	"github.com/m04kA/Arena-BookingService/internal/domain"
)

// BookingResponse HTTP модель одного бронирования в списке
type BookingResponse struct {
	ID            int64   `json:"id"`
	ClubID        int64   `json:"clubId"`
	SportID       int64   `json:"sportId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
}

// UserBookingsResponse HTTP модель списка бронирований пользователя
type UserBookingsResponse struct {
	UserID   int64             `json:"userId"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomain конвертирует список доменных бронирований в HTTP response
func FromDomain(userID int64, items []*domain.Booking) *UserBookingsResponse {
	bookings := make([]BookingResponse, 0, len(items))
	for _, booking := range items {
		bookings = append(bookings, BookingResponse{
			ID:            booking.ID,
			ClubID:        booking.ClubID,
			SportID:       booking.SportID,
			Date:          booking.Date.Format(domain.DateFormat),
			StartTime:     booking.StartTime.String(),
			EndTime:       booking.EndTime.String(),
			Amount:        booking.Amount,
			PaymentStatus: string(booking.PaymentStatus),
			CreatedAt:     booking.CreatedAt.Format(time.RFC3339),
		})
	}

	return &UserBookingsResponse{
		UserID:   userID,
		Bookings: bookings,
	}
}

package confirm_payment

import (
	"time"

	"github.com/m04kA/Arena-BookingService/internal/domain"
)

// ConfirmPaymentRequest HTTP request model с данными callback'а шлюза
type ConfirmPaymentRequest struct {
	OrderRef   string `json:"orderRef"`
	PaymentRef string `json:"paymentRef"`
	Signature  string `json:"signature"`
}

// ConfirmPaymentResponse HTTP response model
type ConfirmPaymentResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	ClubID        int64   `json:"clubId"`
	SportID       int64   `json:"sportId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
}

// FromDomain конвертирует доменную модель бронирования в HTTP response
func FromDomain(booking *domain.Booking) *ConfirmPaymentResponse {
	return &ConfirmPaymentResponse{
		ID:            booking.ID,
		UserID:        booking.UserID,
		ClubID:        booking.ClubID,
		SportID:       booking.SportID,
		Date:          booking.Date.Format(domain.DateFormat),
		StartTime:     booking.StartTime.String(),
		EndTime:       booking.EndTime.String(),
		Amount:        booking.Amount,
		PaymentStatus: string(booking.PaymentStatus),
		CreatedAt:     booking.CreatedAt.Format(time.RFC3339),
	}
}

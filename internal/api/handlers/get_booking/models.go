package get_booking

import (
	"time"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	"github.com/m04kA/Arena-BookingService/pkg/ptr"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	ClubID          int64   `json:"clubId"`
	SportID         int64   `json:"sportId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	ContactName     string  `json:"contactName"`
	ContactPhone    string  `json:"contactPhone"`
	Amount          float64 `json:"amount"`
	PaymentStatus   string  `json:"paymentStatus"`
	GatewayOrderRef string  `json:"gatewayOrderRef,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// FromDomain конвертирует доменную модель бронирования в HTTP response
func FromDomain(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              booking.ID,
		UserID:          booking.UserID,
		ClubID:          booking.ClubID,
		SportID:         booking.SportID,
		Date:            booking.Date.Format(domain.DateFormat),
		StartTime:       booking.StartTime.String(),
		EndTime:         booking.EndTime.String(),
		ContactName:     booking.ContactName,
		ContactPhone:    booking.ContactPhone,
		Amount:          booking.Amount,
		PaymentStatus:   string(booking.PaymentStatus),
		GatewayOrderRef: ptr.Deref(booking.GatewayOrderID),
		CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
	}
}

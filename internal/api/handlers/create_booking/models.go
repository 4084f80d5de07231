package create_booking

import (
	"time"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	createBooking "github.com/m04kA/Arena-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/Arena-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClubID       int64  `json:"clubId"`
	SportID      int64  `json:"sportId"`
	Date         string `json:"date"`      // "2025-10-15"
	StartTime    string `json:"startTime"` // "10:00"
	EndTime      string `json:"endTime"`   // "11:00"
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	ClubID        int64   `json:"clubId"`
	SportID       int64   `json:"sportId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	ContactName   string  `json:"contactName"`
	ContactPhone  string  `json:"contactPhone"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`

	// Заполняются только при оплате через внешний шлюз
	GatewayOrderRef string `json:"gatewayOrderRef,omitempty"`
	Currency        string `json:"currency,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		ClubID:       r.ClubID,
		SportID:      r.SportID,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		ClubID:          resp.ClubID,
		SportID:         resp.SportID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		ContactName:     resp.ContactName,
		ContactPhone:    resp.ContactPhone,
		Amount:          resp.Amount,
		PaymentStatus:   resp.PaymentStatus,
		GatewayOrderRef: resp.GatewayOrderRef,
		Currency:        resp.Currency,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

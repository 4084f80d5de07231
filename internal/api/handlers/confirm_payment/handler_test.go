package confirm_payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	"github.com/m04kA/Arena-BookingService/internal/service/payments"
)

type fakeCoordinator struct {
	booking *domain.Booking
	err     error
}

func (f *fakeCoordinator) Confirm(_ context.Context, _ int64, _, _, _ string) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, coordinator *fakeCoordinator, bookingID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(coordinator, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/confirm", handler.Handle).Methods(http.MethodPost)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/bookings/"+bookingID+"/confirm", bytes.NewReader(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func validBody() ConfirmPaymentRequest {
	return ConfirmPaymentRequest{
		OrderRef:   "order_abc123",
		PaymentRef: "pay_1",
		Signature:  "sig",
	}
}

func TestHandle_Success(t *testing.T) {
	coordinator := &fakeCoordinator{booking: &domain.Booking{
		ID:            1,
		UserID:        10,
		ClubID:        1,
		SportID:       2,
		Date:          time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		EndTime:       "19:30",
		Amount:        750,
		PaymentStatus: domain.PaymentStatusPaid,
	}}

	recorder := doRequest(t, coordinator, "1", validBody())

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp ConfirmPaymentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, "2025-10-20", resp.Date)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: payments.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "signature mismatch", err: payments.ErrSignatureMismatch, wantStatus: http.StatusUnprocessableEntity},
		{name: "terminal state", err: payments.ErrInvalidState, wantStatus: http.StatusConflict},
		{name: "internal", err: payments.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, &fakeCoordinator{err: tt.err}, "1", validBody())
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandle_InvalidBookingID(t *testing.T) {
	recorder := doRequest(t, &fakeCoordinator{}, "abc", validBody())
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_MissingFields(t *testing.T) {
	body := validBody()
	body.Signature = ""

	recorder := doRequest(t, &fakeCoordinator{}, "1", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

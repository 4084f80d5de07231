package confirm_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Arena-BookingService/internal/api/handlers"
	"github.com/m04kA/Arena-BookingService/internal/service/payments"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "необходимо указать orderRef, paymentRef и signature"
	msgNotFound           = "бронирование не найдено"
	msgSignatureMismatch  = "подпись платежа не прошла проверку"
	msgInvalidState       = "оплата бронирования уже завершена"
)

type Handler struct {
	coordinator PaymentCoordinator
	logger      Logger
}

func NewHandler(coordinator PaymentCoordinator, logger Logger) *Handler {
	return &Handler{
		coordinator: coordinator,
		logger:      logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm - Invalid request body: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.OrderRef == "" || req.PaymentRef == "" || req.Signature == "" {
		h.logger.Warn("POST /bookings/{id}/confirm - Missing fields: booking_id=%d", bookingID)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	booking, err := h.coordinator.Confirm(r.Context(), bookingID, req.OrderRef, req.PaymentRef, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm - Booking not found: booking_id=%d, order_ref=%s",
				bookingID, req.OrderRef)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payments.ErrSignatureMismatch):
			h.logger.Warn("POST /bookings/{id}/confirm - Signature mismatch: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSignatureMismatch)

		case errors.Is(err, payments.ErrInvalidState):
			h.logger.Warn("POST /bookings/{id}/confirm - Invalid payment state: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		default:
			h.logger.Error("POST /bookings/{id}/confirm - Failed to confirm payment: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/confirm - Payment confirmed: booking_id=%d, status=%s",
		bookingID, booking.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}

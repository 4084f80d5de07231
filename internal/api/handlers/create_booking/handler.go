package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Arena-BookingService/internal/api/handlers"
	"github.com/m04kA/Arena-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/Arena-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgClubNotFound       = "клуб не найден"
	msgSportNotOffered    = "клуб не предлагает этот вид спорта"
	msgDateInPast         = "дата бронирования уже прошла"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgStartTimePassed    = "время начала слота уже прошло"
	msgMissingContact     = "необходимо указать контактное имя и телефон"
	msgSlotTaken          = "выбранный слот уже занят"
	msgPaymentInitFailed  = "не удалось открыть оплату, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, club_id=%d, start=%s",
				userID, req.ClubID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrClubNotFound):
			h.logger.Warn("POST /bookings - Club not found: user_id=%d, club_id=%d", userID, req.ClubID)
			handlers.RespondNotFound(w, msgClubNotFound)

		case errors.Is(err, createBooking.ErrSportNotOffered):
			h.logger.Warn("POST /bookings - Sport not offered: user_id=%d, club_id=%d, sport_id=%d",
				userID, req.ClubID, req.SportID)
			handlers.RespondNotFound(w, msgSportNotOffered)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: user_id=%d, club_id=%d", userID, req.ClubID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: user_id=%d, club_id=%d", userID, req.ClubID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrStartTimeInPast):
			h.logger.Warn("POST /bookings - Start time passed: user_id=%d, club_id=%d, start=%s",
				userID, req.ClubID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartTimePassed)

		case errors.Is(err, createBooking.ErrMissingContact):
			h.logger.Warn("POST /bookings - Missing contact: user_id=%d, club_id=%d", userID, req.ClubID)
			handlers.RespondBadRequest(w, msgMissingContact)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrPaymentInitFailed):
			h.logger.Error("POST /bookings - Payment init failed: user_id=%d, club_id=%d, error=%v",
				userID, req.ClubID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentInitFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, club_id=%d, error=%v",
				userID, req.ClubID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, club_id=%d, status=%s",
		result.ID, userID, req.ClubID, result.PaymentStatus)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

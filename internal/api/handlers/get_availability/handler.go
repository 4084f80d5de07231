package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Arena-BookingService/internal/api/handlers"
	"github.com/m04kA/Arena-BookingService/internal/domain"
	getAvailability "github.com/m04kA/Arena-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidClubID   = "некорректный ID клуба"
	msgInvalidSportID  = "некорректный параметр sportId"
	msgInvalidDate     = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgClubNotFound    = "клуб не найден"
	msgSportNotOffered = "клуб не предлагает этот вид спорта"
	msgDateInPast      = "дата уже прошла"
	msgDateTooFar      = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/clubs/{clubId}/availability?sportId=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clubID, err := strconv.ParseInt(vars["clubId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /clubs/{id}/availability - Invalid club ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClubID)
		return
	}

	sportID, err := strconv.ParseInt(r.URL.Query().Get("sportId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /clubs/{id}/availability - Invalid sport ID: club_id=%d, error=%v", clubID, err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /clubs/{id}/availability - Invalid date: club_id=%d, error=%v", clubID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		ClubID:  clubID,
		SportID: sportID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrClubNotFound):
			h.logger.Warn("GET /clubs/{id}/availability - Club not found: club_id=%d", clubID)
			handlers.RespondNotFound(w, msgClubNotFound)

		case errors.Is(err, getAvailability.ErrSportNotOffered):
			h.logger.Warn("GET /clubs/{id}/availability - Sport not offered: club_id=%d, sport_id=%d", clubID, sportID)
			handlers.RespondNotFound(w, msgSportNotOffered)

		case errors.Is(err, getAvailability.ErrDateInPast):
			h.logger.Warn("GET /clubs/{id}/availability - Date in past: club_id=%d", clubID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailability.ErrDateTooFarInFuture):
			h.logger.Warn("GET /clubs/{id}/availability - Date too far in future: club_id=%d", clubID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /clubs/{id}/availability - Invalid input: club_id=%d, error=%v", clubID, err)
			handlers.RespondBadRequest(w, msgInvalidSportID)

		default:
			h.logger.Error("GET /clubs/{id}/availability - Failed to get availability: club_id=%d, sport_id=%d, error=%v",
				clubID, sportID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clubs/{id}/availability - Slots retrieved: club_id=%d, sport_id=%d, slots=%d",
		clubID, sportID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package list_clubs

import (
	"net/http"

	"github.com/m04kA/Arena-BookingService/internal/api/handlers"
)

type Handler struct {
	clubRepo ClubRepository
	logger   Logger
}

func NewHandler(clubRepo ClubRepository, logger Logger) *Handler {
	return &Handler{
		clubRepo: clubRepo,
		logger:   logger,
	}
}

// Handle GET /api/v1/clubs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubRepo.ListApproved(r.Context())
	if err != nil {
		h.logger.Error("GET /clubs - Failed to list clubs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clubs - Clubs retrieved: count=%d", len(clubs))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(clubs))
}

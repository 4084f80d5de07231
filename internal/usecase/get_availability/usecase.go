package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	clubRepo "github.com/m04kA/Arena-BookingService/internal/infra/storage/club"
)

// UseCase use case для получения доступности слотов клуба
type UseCase struct {
	bookingRepo  BookingRepository
	clubRepo     ClubRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clubRepo ClubRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		clubRepo:     clubRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: club=%d, sport=%d, date=%s",
		req.ClubID, req.SportID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация окна бронирования (прошлое, горизонт)
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем одобренный клуб
	club, err := uc.clubRepo.GetApprovedByID(ctx, req.ClubID)
	if err != nil {
		if errors.Is(err, clubRepo.ErrClubNotFound) {
			uc.logger.Warn("GetAvailability: club id=%d not found", req.ClubID)
			return nil, ErrClubNotFound
		}
		uc.logger.Error("GetAvailability: failed to get club id=%d: %v", req.ClubID, err)
		return nil, fmt.Errorf("%w: failed to get club: %v", ErrInternal, err)
	}

	// 5. Проверяем, что клуб предлагает этот вид спорта
	if !club.OffersSport(req.SportID) {
		uc.logger.Warn("GetAvailability: sport id=%d not offered by club id=%d", req.SportID, req.ClubID)
		return nil, ErrSportNotOffered
	}

	// 6. Генерируем слоты из рабочих часов клуба
	slots, err := generateSlots(club.OpenTime, club.CloseTime, club.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 7. Если дата - сегодня, исключаем уже прошедшие слоты
	if isSameDay(req.Date, now) {
		slots = dropPastSlots(slots, now)
	}

	// 8. Получаем занятые времена и помечаем доступность
	reserved, err := uc.bookingRepo.GetReservedStartTimes(ctx, req.ClubID, req.SportID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reserved times: %v", err)
		return nil, fmt.Errorf("%w: failed to get reserved times: %v", ErrInternal, err)
	}

	slots = markReserved(slots, reserved)

	uc.logger.Info("GetAvailability: %d slots for club=%d, sport=%d, date=%s",
		len(slots), req.ClubID, req.SportID, req.Date.Format(domain.DateFormat))

	return &Response{
		ClubID:  req.ClubID,
		SportID: req.SportID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}

package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Arena-BookingService/internal/infra/storage/booking"
	clubRepo "github.com/m04kA/Arena-BookingService/internal/infra/storage/club"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	clubRepo     ClubRepository
	payments     PaymentCoordinator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clubRepo ClubRepository,
	paymentCoordinator PaymentCoordinator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		clubRepo:     clubRepo,
		payments:     paymentCoordinator,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Вставка выполняется в сериализуемой транзакции, но единственная гарантия
// от двойного бронирования - уникальное ограничение bookings_slot_key в БД:
// при конкурентных запросах на один слот ровно один insert проходит, остальные
// получают ErrSlotTaken. Предварительная проверка занятости нужна только для
// быстрого ответа без создания заказа в шлюзе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, club=%d, sport=%d, date=%s, time=%s-%s",
		req.UserID, req.ClubID, req.SportID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация параметров слота
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем одобренный клуб
	club, err := uc.clubRepo.GetApprovedByID(ctx, req.ClubID)
	if err != nil {
		if errors.Is(err, clubRepo.ErrClubNotFound) {
			uc.logger.Warn("CreateBooking: club id=%d not found", req.ClubID)
			return nil, ErrClubNotFound
		}
		uc.logger.Error("CreateBooking: failed to get club id=%d: %v", req.ClubID, err)
		return nil, fmt.Errorf("%w: failed to get club: %v", ErrInternal, err)
	}

	// 4. Проверяем, что клуб предлагает этот вид спорта
	if !club.OffersSport(req.SportID) {
		uc.logger.Warn("CreateBooking: sport id=%d not offered by club id=%d", req.SportID, req.ClubID)
		return nil, ErrSportNotOffered
	}

	// 5. Валидация окна бронирования (прошлое, горизонт, время начала для сегодня)
	if err := validateDate(req, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 6. Проверяем контактные данные
	if err := validateContact(req); err != nil {
		uc.logger.Warn("CreateBooking: contact validation failed: %v", err)
		return nil, err
	}

	// 7. Считаем стоимость (конец раньше начала = переход через полночь)
	amount, err := club.ComputeAmount(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to compute amount: %v", err)
		return nil, fmt.Errorf("%w: failed to compute amount: %v", ErrInternal, err)
	}

	var created *domain.Booking

	// 8. Создаем бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Быстрая проверка занятости (ряды блокируются FOR UPDATE)
		reserved, err := uc.bookingRepo.GetReservedStartTimes(txCtx, req.ClubID, req.SportID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get reserved times: %v", err)
			return fmt.Errorf("%w: failed to get reserved times: %v", ErrInternal, err)
		}

		for _, st := range reserved {
			if st == req.StartTime.String() {
				return ErrSlotTaken
			}
		}

		// 8.2. Вставка; нарушение bookings_slot_key транслируется в ErrSlotTaken
		booking := &domain.Booking{
			UserID:        req.UserID,
			ClubID:        req.ClubID,
			SportID:       req.SportID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			ContactName:   req.ContactName,
			ContactPhone:  req.ContactPhone,
			Amount:        amount,
			PaymentStatus: domain.PaymentStatusPending,
		}

		result, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		created = result
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot taken: club=%d, sport=%d, date=%s, time=%s",
				req.ClubID, req.SportID, req.Date.Format(domain.DateFormat), req.StartTime)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created, amount=%.2f", created.ID, created.Amount)

	// 9. Инициируем оплату (вне транзакции: вызов шлюза не должен держать блокировки)
	// При ошибке шлюза координатор удаляет бронирование компенсирующим действием
	payment, err := uc.payments.Initiate(ctx, created)
	if err != nil {
		uc.logger.Error("CreateBooking: payment initiation failed for booking id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentInitFailed, err)
	}

	return &Response{
		ID:              created.ID,
		UserID:          created.UserID,
		ClubID:          created.ClubID,
		SportID:         created.SportID,
		Date:            created.Date,
		StartTime:       created.StartTime,
		EndTime:         created.EndTime,
		ContactName:     created.ContactName,
		ContactPhone:    created.ContactPhone,
		Amount:          created.Amount,
		PaymentStatus:   string(payment.PaymentStatus),
		GatewayOrderRef: payment.OrderRef,
		Currency:        payment.Currency,
		CreatedAt:       created.CreatedAt,
	}, nil
}

package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Arena-BookingService/internal/infra/storage/booking"
)

// minorUnitsPerUnit множитель перевода суммы в минорные единицы шлюза
const minorUnitsPerUnit = 100

// Mode режим работы координатора, выбирается один раз при старте
type Mode int

const (
	// ModeDirect платёжный шлюз не настроен: бронирование подтверждается сразу
	ModeDirect Mode = iota
	// ModeGateway оплата проходит через внешний шлюз
	ModeGateway
)

// InitiateResult результат инициации оплаты
type InitiateResult struct {
	BookingID     int64
	PaymentStatus domain.PaymentStatus
	OrderRef      string // пустой в режиме ModeDirect
	Amount        float64
	Currency      string
}

// Service координатор платежей
// Владеет всеми переходами payment_status и компенсирующим удалением брони
// при недоступности шлюза
type Service struct {
	mode     Mode
	repo     BookingRepository
	gateway  GatewayClient
	currency string
	notifier Notifier
	logger   Logger
}

// NewDirectService создает координатор в режиме прямого подтверждения (без шлюза)
func NewDirectService(repo BookingRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		mode:     ModeDirect,
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// NewGatewayService создает координатор, проводящий оплату через внешний шлюз
func NewGatewayService(repo BookingRepository, gateway GatewayClient, currency string, notifier Notifier, logger Logger) *Service {
	return &Service{
		mode:     ModeGateway,
		repo:     repo,
		gateway:  gateway,
		currency: currency,
		notifier: notifier,
		logger:   logger,
	}
}

// Mode возвращает режим работы координатора
func (s *Service) Mode() Mode {
	return s.mode
}

// Initiate открывает оплату для только что созданного pending бронирования
//
// В режиме шлюза создаёт внешний заказ и сохраняет его ссылку на брони;
// при любой ошибке шлюза бронирование удаляется (компенсирующее действие),
// чтобы не оставлять pending брони с неработающей ссылкой на заказ.
// В режиме без шлюза бронирование сразу переводится в paid и уходит уведомление
func (s *Service) Initiate(ctx context.Context, booking *domain.Booking) (*InitiateResult, error) {
	if s.mode == ModeDirect {
		return s.initiateDirect(ctx, booking)
	}
	return s.initiateGateway(ctx, booking)
}

func (s *Service) initiateDirect(ctx context.Context, booking *domain.Booking) (*InitiateResult, error) {
	// Данных шлюза нет: gateway_* колонки остаются NULL
	if err := s.repo.MarkPaidDirect(ctx, booking.ID); err != nil {
		s.logger.Error("Initiate: failed to mark booking id=%d paid in direct mode: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: direct confirm: %v", ErrInternal, err)
	}

	booking.PaymentStatus = domain.PaymentStatusPaid
	s.notifier.NotifyConfirmedAsync(booking)

	s.logger.Info("Initiate: booking id=%d confirmed directly (no gateway configured)", booking.ID)

	return &InitiateResult{
		BookingID:     booking.ID,
		PaymentStatus: domain.PaymentStatusPaid,
		Amount:        booking.Amount,
		Currency:      s.currency,
	}, nil
}

func (s *Service) initiateGateway(ctx context.Context, booking *domain.Booking) (*InitiateResult, error) {
	amountMinor := int64(math.Round(booking.Amount * minorUnitsPerUnit))
	receipt := fmt.Sprintf("booking_%d_%s", booking.ID, uuid.NewString())

	notes := map[string]string{
		"booking_id": fmt.Sprintf("%d", booking.ID),
		"club_id":    fmt.Sprintf("%d", booking.ClubID),
		"sport_id":   fmt.Sprintf("%d", booking.SportID),
		"date":       booking.Date.Format(domain.DateFormat),
		"start_time": booking.StartTime.String(),
	}

	order, err := s.gateway.CreateOrder(ctx, amountMinor, s.currency, receipt, notes)
	if err != nil {
		s.logger.Error("Initiate: gateway order creation failed for booking id=%d: %v", booking.ID, err)
		s.compensate(ctx, booking.ID)
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if err := s.repo.SetGatewayOrder(ctx, booking.ID, order.ID); err != nil {
		s.logger.Error("Initiate: failed to store order ref for booking id=%d: %v", booking.ID, err)
		s.compensate(ctx, booking.ID)
		return nil, fmt.Errorf("%w: failed to store order ref: %v", ErrGatewayUnavailable, err)
	}

	s.logger.Info("Initiate: gateway order %s opened for booking id=%d, amount=%d %s",
		order.ID, booking.ID, amountMinor, s.currency)

	return &InitiateResult{
		BookingID:     booking.ID,
		PaymentStatus: domain.PaymentStatusPending,
		OrderRef:      order.ID,
		Amount:        booking.Amount,
		Currency:      s.currency,
	}, nil
}

// compensate удаляет бронирование после неудачной инициации оплаты
// Ошибка удаления только логируется: исходную ошибку шлюза она не заслоняет
func (s *Service) compensate(ctx context.Context, bookingID int64) {
	if err := s.repo.Delete(ctx, bookingID); err != nil {
		s.logger.Error("Initiate: compensation delete failed for booking id=%d: %v", bookingID, err)
		return
	}
	s.logger.Warn("Initiate: booking id=%d deleted after gateway failure", bookingID)
}

// Confirm обрабатывает callback оплаты от шлюза
//
// Идемпотентность: повторный callback с теми же valid параметрами видит
// статус paid с совпадающим payment_ref и завершается без повторной проверки
// подписи и без повторного уведомления
func (s *Service) Confirm(ctx context.Context, bookingID int64, orderRef, paymentRef, signature string) (*domain.Booking, error) {
	booking, err := s.repo.GetByIDAndOrderRef(ctx, bookingID, orderRef)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d with order_ref=%s not found", bookingID, orderRef)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Идемпотентный повтор: уже оплачено тем же платежом
	if booking.IsPaid() {
		if booking.GatewayPaymentID != nil && *booking.GatewayPaymentID == paymentRef {
			s.logger.Info("Confirm: booking id=%d already paid with payment_ref=%s, no-op", bookingID, paymentRef)
			return booking, nil
		}
		s.logger.Warn("Confirm: booking id=%d already paid with a different payment_ref", bookingID)
		return nil, ErrInvalidState
	}

	if booking.IsTerminal() {
		s.logger.Warn("Confirm: booking id=%d is in terminal status %s", bookingID, booking.PaymentStatus)
		return nil, ErrInvalidState
	}

	if !s.gateway.VerifySignature(orderRef, paymentRef, signature) {
		s.logger.Warn("Confirm: signature mismatch for booking id=%d, order_ref=%s", bookingID, orderRef)
		if err := s.repo.MarkFailed(ctx, bookingID); err != nil {
			s.logger.Error("Confirm: failed to mark booking id=%d failed: %v", bookingID, err)
		}
		return nil, ErrSignatureMismatch
	}

	if err := s.repo.MarkPaid(ctx, bookingID, paymentRef, signature); err != nil {
		if errors.Is(err, bookingRepo.ErrInvalidTransition) {
			// Гонка двух callback'ов: другой вызов успел перевести в paid.
			// Перечитываем и, если оплата та же, считаем вызов идемпотентным
			current, readErr := s.repo.GetByIDAndOrderRef(ctx, bookingID, orderRef)
			if readErr == nil && current.IsPaid() &&
				current.GatewayPaymentID != nil && *current.GatewayPaymentID == paymentRef {
				s.logger.Info("Confirm: booking id=%d paid concurrently, no-op", bookingID)
				return current, nil
			}
			return nil, ErrInvalidState
		}
		s.logger.Error("Confirm: failed to mark booking id=%d paid: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	booking.PaymentStatus = domain.PaymentStatusPaid
	booking.GatewayPaymentID = &paymentRef
	booking.GatewaySignature = &signature

	s.notifier.NotifyConfirmedAsync(booking)

	s.logger.Info("Confirm: booking id=%d marked paid, payment_ref=%s", bookingID, paymentRef)

	return booking, nil
}

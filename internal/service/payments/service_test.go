package payments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Arena-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Arena-BookingService/internal/integrations/paymentgateway"
	"github.com/m04kA/Arena-BookingService/pkg/ptr"
)

// fakeRepo хранит одну бронь в памяти и воспроизводит статусные
// переходы репозитория
type fakeRepo struct {
	mu      sync.Mutex
	booking *domain.Booking
	deleted bool

	markPaidErr error
	setOrderErr error
}

func (f *fakeRepo) GetByIDAndOrderRef(_ context.Context, id int64, orderRef string) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.booking == nil || f.deleted || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	if orderRef != "" && (f.booking.GatewayOrderID == nil || *f.booking.GatewayOrderID != orderRef) {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeRepo) SetGatewayOrder(_ context.Context, id int64, orderRef string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setOrderErr != nil {
		return f.setOrderErr
	}
	f.booking.GatewayOrderID = &orderRef
	return nil
}

func (f *fakeRepo) MarkPaid(_ context.Context, id int64, paymentRef, signature string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.markPaidErr != nil {
		return f.markPaidErr
	}
	if f.booking.PaymentStatus != domain.PaymentStatusPending {
		return bookingRepo.ErrInvalidTransition
	}
	f.booking.PaymentStatus = domain.PaymentStatusPaid
	f.booking.GatewayPaymentID = &paymentRef
	f.booking.GatewaySignature = &signature
	return nil
}

func (f *fakeRepo) MarkPaidDirect(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.booking.PaymentStatus != domain.PaymentStatusPending {
		return bookingRepo.ErrInvalidTransition
	}
	f.booking.PaymentStatus = domain.PaymentStatusPaid
	return nil
}

func (f *fakeRepo) MarkFailed(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.booking.PaymentStatus != domain.PaymentStatusPending {
		return bookingRepo.ErrInvalidTransition
	}
	f.booking.PaymentStatus = domain.PaymentStatusFailed
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = true
	return nil
}

type fakeGateway struct {
	order     *paymentgateway.Order
	createErr error
	valid     bool

	lastAmount   int64
	lastCurrency string
}

func (f *fakeGateway) CreateOrder(_ context.Context, amountMinorUnits int64, currency, receipt string, notes map[string]string) (*paymentgateway.Order, error) {
	f.lastAmount = amountMinorUnits
	f.lastCurrency = currency
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.order, nil
}

func (f *fakeGateway) VerifySignature(orderRef, paymentRef, signature string) bool {
	return f.valid
}

type countingNotifier struct {
	mu    sync.Mutex
	count int
}

func (n *countingNotifier) NotifyConfirmedAsync(_ *domain.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.count++
}

func (n *countingNotifier) notified() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.count
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		UserID:        10,
		ClubID:        1,
		SportID:       2,
		Date:          time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		EndTime:       "19:30",
		Amount:        750,
		PaymentStatus: domain.PaymentStatusPending,
	}
}

func TestInitiate_DirectModeConfirmsImmediately(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	notifier := &countingNotifier{}
	svc := NewDirectService(repo, notifier, nopLogger{})

	result, err := svc.Initiate(context.Background(), pendingBooking())
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPaid, result.PaymentStatus)
	assert.Empty(t, result.OrderRef)
	assert.Equal(t, domain.PaymentStatusPaid, repo.booking.PaymentStatus)
	assert.Equal(t, 1, notifier.notified())

	// Без шлюза ссылки на заказ и платёж не заполняются
	assert.Nil(t, repo.booking.GatewayOrderID)
	assert.Nil(t, repo.booking.GatewayPaymentID)
	assert.Nil(t, repo.booking.GatewaySignature)
}

func TestInitiate_GatewayModeOpensOrder(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	gateway := &fakeGateway{order: &paymentgateway.Order{ID: "order_abc123"}}
	svc := NewGatewayService(repo, gateway, "INR", &countingNotifier{}, nopLogger{})

	result, err := svc.Initiate(context.Background(), pendingBooking())
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPending, result.PaymentStatus)
	assert.Equal(t, "order_abc123", result.OrderRef)
	assert.Equal(t, "INR", result.Currency)

	// Сумма уходит в шлюз в минорных единицах
	assert.Equal(t, int64(75000), gateway.lastAmount)
	require.NotNil(t, repo.booking.GatewayOrderID)
	assert.Equal(t, "order_abc123", *repo.booking.GatewayOrderID)
}

func TestInitiate_GatewayFailureCompensates(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	gateway := &fakeGateway{createErr: paymentgateway.ErrGatewayUnavailable}
	svc := NewGatewayService(repo, gateway, "INR", &countingNotifier{}, nopLogger{})

	_, err := svc.Initiate(context.Background(), pendingBooking())

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	// Бронирование удалено компенсирующим действием, слот снова свободен
	assert.True(t, repo.deleted)
}

func TestInitiate_SetOrderFailureCompensates(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking(), setOrderErr: errors.New("connection reset")}
	gateway := &fakeGateway{order: &paymentgateway.Order{ID: "order_abc123"}}
	svc := NewGatewayService(repo, gateway, "INR", &countingNotifier{}, nopLogger{})

	_, err := svc.Initiate(context.Background(), pendingBooking())

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.True(t, repo.deleted)
}

func confirmFixture(valid bool) (*fakeRepo, *countingNotifier, *Service) {
	booking := pendingBooking()
	booking.GatewayOrderID = ptr.Ptr("order_abc123")

	repo := &fakeRepo{booking: booking}
	notifier := &countingNotifier{}
	gateway := &fakeGateway{valid: valid}
	svc := NewGatewayService(repo, gateway, "INR", notifier, nopLogger{})
	return repo, notifier, svc
}

func TestConfirm_MarksPaidAndNotifies(t *testing.T) {
	repo, notifier, svc := confirmFixture(true)

	booking, err := svc.Confirm(context.Background(), 1, "order_abc123", "pay_1", "sig")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPaid, booking.PaymentStatus)
	assert.Equal(t, domain.PaymentStatusPaid, repo.booking.PaymentStatus)
	assert.Equal(t, 1, notifier.notified())
}

func TestConfirm_RepeatedCallbackIsIdempotent(t *testing.T) {
	_, notifier, svc := confirmFixture(true)

	_, err := svc.Confirm(context.Background(), 1, "order_abc123", "pay_1", "sig")
	require.NoError(t, err)

	booking, err := svc.Confirm(context.Background(), 1, "order_abc123", "pay_1", "sig")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPaid, booking.PaymentStatus)
	// Повторный callback не шлёт второе уведомление
	assert.Equal(t, 1, notifier.notified())
}

func TestConfirm_PaidWithDifferentPaymentRef(t *testing.T) {
	_, _, svc := confirmFixture(true)

	_, err := svc.Confirm(context.Background(), 1, "order_abc123", "pay_1", "sig")
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), 1, "order_abc123", "pay_2", "sig")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestConfirm_SignatureMismatchMarksFailed(t *testing.T) {
	repo, notifier, svc := confirmFixture(false)

	_, err := svc.Confirm(context.Background(), 1, "order_abc123", "pay_1", "bad_sig")

	assert.ErrorIs(t, err, ErrSignatureMismatch)
	assert.Equal(t, domain.PaymentStatusFailed, repo.booking.PaymentStatus)
	assert.Equal(t, 0, notifier.notified())
}

func TestConfirm_TerminalStateRejected(t *testing.T) {
	repo, _, svc := confirmFixture(true)
	repo.booking.PaymentStatus = domain.PaymentStatusFailed

	_, err := svc.Confirm(context.Background(), 1, "order_abc123", "pay_1", "sig")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestConfirm_UnknownOrderRef(t *testing.T) {
	_, _, svc := confirmFixture(true)

	_, err := svc.Confirm(context.Background(), 1, "order_other", "pay_1", "sig")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

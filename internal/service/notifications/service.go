package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/Arena-BookingService/internal/domain"
)

// Dispatcher отправляет подтверждение брони по SMS после успешной оплаты
//
// Отправка строго best-effort: любая ошибка провайдера логируется и
// проглатывается, статус бронирования при этом не меняется. Вызывающая сторона
// никогда не получает ошибку из диспетчера
type Dispatcher struct {
	smsClient SMSClient
	catalogue ClubCatalogue
	timeout   time.Duration
	logger    Logger
}

// NewDispatcher создает новый диспетчер уведомлений
// Если smsClient == nil (SMS выключены в конфигурации), текст уведомления
// только логируется - режим работы выбирается один раз при старте
func NewDispatcher(smsClient SMSClient, catalogue ClubCatalogue, timeout time.Duration, logger Logger) *Dispatcher {
	return &Dispatcher{
		smsClient: smsClient,
		catalogue: catalogue,
		timeout:   timeout,
		logger:    logger,
	}
}

// NotifyConfirmed отправляет SMS с подтверждением брони
// Возвращает true при успешной отправке; false - при любой ошибке
func (d *Dispatcher) NotifyConfirmed(ctx context.Context, booking *domain.Booking) bool {
	message := d.buildMessage(ctx, booking)

	if d.smsClient == nil {
		d.logger.Info("NotifyConfirmed: sms disabled, booking id=%d message: %s", booking.ID, message)
		return false
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.smsClient.Send(sendCtx, booking.ContactPhone, message); err != nil {
		d.logger.Error("NotifyConfirmed: failed to send sms for booking id=%d: %v", booking.ID, err)
		return false
	}

	d.logger.Info("NotifyConfirmed: sms sent for booking id=%d", booking.ID)
	return true
}

// NotifyConfirmedAsync запускает отправку в отдельной горутине (fire-and-forget)
// Контекст запроса не используется, чтобы завершение HTTP запроса не обрывало отправку
func (d *Dispatcher) NotifyConfirmedAsync(booking *domain.Booking) {
	b := *booking
	go func() {
		d.NotifyConfirmed(context.Background(), &b)
	}()
}

// buildMessage собирает человекочитаемый текст подтверждения
func (d *Dispatcher) buildMessage(ctx context.Context, booking *domain.Booking) string {
	clubName := fmt.Sprintf("club #%d", booking.ClubID)
	sportName := fmt.Sprintf("sport #%d", booking.SportID)

	// Названия клуба и спорта - украшение текста: их отсутствие не должно
	// блокировать уведомление
	if club, err := d.catalogue.GetApprovedByID(ctx, booking.ClubID); err == nil {
		clubName = club.Name
	}
	if sport, err := d.catalogue.GetSportByID(ctx, booking.SportID); err == nil {
		sportName = sport.Name
	}

	return fmt.Sprintf("Booking confirmed: %s (%s) on %s, %s-%s. Amount: %.2f. See you on the court!",
		clubName,
		sportName,
		booking.Date.Format(domain.DateFormat),
		booking.StartTime.String(),
		booking.EndTime.String(),
		booking.Amount,
	)
}

package payments

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// по паре (id, order_ref)
	ErrBookingNotFound = errors.New("payments: booking not found")

	// ErrGatewayUnavailable возвращается, когда шлюз не смог создать заказ
	// Бронирование при этом удалено компенсирующим действием
	ErrGatewayUnavailable = errors.New("payments: payment gateway unavailable")

	// ErrSignatureMismatch возвращается при неверной подписи callback'а
	// Бронирование переводится в статус failed
	ErrSignatureMismatch = errors.New("payments: signature verification failed")

	// ErrInvalidState возвращается при попытке подтвердить бронирование
	// в терминальном статусе (failed/refunded)
	ErrInvalidState = errors.New("payments: booking is in a terminal payment state")

	// ErrInternal возвращается при внутренних ошибках координатора
	ErrInternal = errors.New("payments: internal error")
)

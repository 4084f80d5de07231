package create_booking

import "errors"

var (
	// ErrClubNotFound возвращается, когда клуб не найден или не одобрен
	ErrClubNotFound = errors.New("create_booking: club not found")

	// ErrSportNotOffered возвращается, когда клуб не предлагает указанный вид спорта
	ErrSportNotOffered = errors.New("create_booking: sport is not offered by this club")

	// ErrDateInPast возвращается, когда дата бронирования раньше сегодняшней
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата дальше горизонта бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrStartTimeInPast возвращается, когда сегодняшний слот уже начался
	ErrStartTimeInPast = errors.New("create_booking: start time already passed")

	// ErrMissingContact возвращается, когда не указаны имя или телефон
	ErrMissingContact = errors.New("create_booking: contact name and phone are required")

	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrPaymentInitFailed возвращается, когда не удалось открыть заказ в шлюзе
	// Созданное бронирование при этом удалено компенсирующим действием
	ErrPaymentInitFailed = errors.New("create_booking: payment initiation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

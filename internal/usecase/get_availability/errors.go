package get_availability

import "errors"

var (
	// ErrClubNotFound возвращается, когда клуб не найден или не одобрен
	ErrClubNotFound = errors.New("club not found")

	// ErrSportNotOffered возвращается, когда клуб не предлагает указанный вид спорта
	ErrSportNotOffered = errors.New("sport is not offered by this club")

	// ErrDateInPast возвращается, когда запрошенная дата раньше сегодняшней
	ErrDateInPast = errors.New("date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата дальше горизонта бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

package club

import "errors"

var (
	// ErrClubNotFound возвращается, когда клуб не найден или не одобрен
	ErrClubNotFound = errors.New("club.repository: club not found")

	// ErrSportNotFound возвращается, когда вид спорта не найден
	ErrSportNotFound = errors.New("club.repository: sport not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("club.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("club.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("club.repository: failed to scan row")
)

package get_availability

import (
	"time"

	"github.com/m04kA/Arena-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ClubID  int64     // ID клуба
	SportID int64     // ID вида спорта
	Date    time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	ClubID  int64         // ID клуба
	SportID int64         // ID вида спорта
	Date    time.Time     // Дата, на которую запрашивались слоты
	Slots   []domain.Slot // Слоты в порядке возрастания времени начала
}

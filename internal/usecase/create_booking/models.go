package create_booking

import (
	"time"

	"github.com/m04kA/Arena-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64            // ID пользователя
	ClubID       int64            // ID клуба
	SportID      int64            // ID вида спорта
	Date         time.Time        // Дата бронирования (без времени)
	StartTime    types.TimeString // Время начала слота (например, "10:00")
	EndTime      types.TimeString // Время конца слота (например, "11:00")
	ContactName  string           // Контактное имя
	ContactPhone string           // Контактный телефон
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID созданного бронирования
	UserID        int64            // ID пользователя
	ClubID        int64            // ID клуба
	SportID       int64            // ID вида спорта
	Date          time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	EndTime       types.TimeString // Время конца
	ContactName   string           // Контактное имя
	ContactPhone  string           // Контактный телефон
	Amount        float64          // Стоимость брони
	PaymentStatus string           // Статус оплаты после инициации

	// Данные для клиентской стороны оплаты (пустые в режиме без шлюза)
	GatewayOrderRef string // Ссылка на заказ платёжного шлюза
	Currency        string // Валюта заказа

	CreatedAt time.Time // Время создания
}

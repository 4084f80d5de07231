package paymentgateway

// orderRequest тело запроса на создание заказа
type orderRequest struct {
	Amount   int64             `json:"amount"` // минорные единицы (пайсы/копейки)
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Order заказ, созданный платёжным шлюзом
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// errorResponse модель ошибки от шлюза
type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

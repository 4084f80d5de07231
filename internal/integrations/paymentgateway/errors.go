package paymentgateway

import "errors"

var (
	// ErrGatewayUnavailable возвращается, когда шлюз недоступен (сеть, timeout, 5xx)
	ErrGatewayUnavailable = errors.New("paymentgateway client: gateway unavailable")

	// ErrOrderRejected возвращается, когда шлюз отклонил создание заказа (4xx)
	ErrOrderRejected = errors.New("paymentgateway client: order rejected")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("paymentgateway client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway client: internal error")
)

package smsprovider

import "errors"

var (
	// ErrSendFailed возвращается, когда провайдер не смог отправить сообщение
	ErrSendFailed = errors.New("smsprovider client: failed to send message")

	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("smsprovider client: invalid phone number")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("smsprovider client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("smsprovider client: internal error")
)

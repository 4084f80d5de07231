package paymentgateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платёжного шлюза (Razorpay-совместимый API)
// Создаётся один раз при старте и внедряется в координатор платежей -
// глобального состояния у клиента нет
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder открывает заказ в шлюзе на сумму в минорных единицах
// receipt - внутренний идентификатор для сверки, notes - произвольные метаданные
func (c *Client) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string, notes map[string]string) (*Order, error) {
	url := fmt.Sprintf("%s/orders", c.baseURL)

	body, err := json.Marshal(orderRequest{
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые ошибки и таймауты - шлюз недоступен
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var gwErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&gwErr); err == nil && gwErr.Error.Description != "" {
			return nil, fmt.Errorf("%w: %s (%s)", ErrOrderRejected, gwErr.Error.Description, gwErr.Error.Code)
		}
		return nil, fmt.Errorf("%w: status code %d", ErrOrderRejected, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrGatewayUnavailable, resp.StatusCode, string(respBody))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%w: empty order id", ErrInvalidResponse)
	}

	c.log.Info("Gateway order created: order_id=%s, amount=%d %s, receipt=%s",
		order.ID, order.Amount, order.Currency, order.Receipt)

	return &order, nil
}

// VerifySignature проверяет подпись callback'а платежа
// Шлюз подписывает строку "orderRef|paymentRef" алгоритмом HMAC-SHA256
// с общим секретом и передаёт hex-представление подписи
func (c *Client) VerifySignature(orderRef, paymentRef, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderRef + "|" + paymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

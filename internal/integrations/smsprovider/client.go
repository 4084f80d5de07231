package smsprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// nonDigitsRegex используется для нормализации номера телефона
var nonDigitsRegex = regexp.MustCompile(`[^0-9]`)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// sendRequest тело запроса на отправку SMS
type sendRequest struct {
	Route    string `json:"route"`
	SenderID string `json:"sender_id"`
	Message  string `json:"message"`
	Numbers  string `json:"numbers"`
}

// sendResponse ответ провайдера
type sendResponse struct {
	Return    bool     `json:"return"`
	RequestID string   `json:"request_id"`
	Message   []string `json:"message"`
}

// Client клиент SMS провайдера с токен-аутентификацией
type Client struct {
	baseURL    string
	apiKey     string
	senderID   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр SMS клиента
func NewClient(baseURL, apiKey, senderID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		senderID: senderID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NormalizePhone приводит номер телефона к виду "только цифры"
// Возвращает ErrInvalidPhone, если после нормализации цифр не осталось
// или их меньше разумного минимума
func NormalizePhone(phone string) (string, error) {
	normalized := nonDigitsRegex.ReplaceAllString(phone, "")
	if len(normalized) < 7 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return normalized, nil
}

// Send отправляет SMS на указанный номер
// Номер нормализуется до цифр перед отправкой
func (c *Client) Send(ctx context.Context, phone, message string) error {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bulkV2", c.baseURL)

	body, err := json.Marshal(sendRequest{
		Route:    "v3",
		SenderID: c.senderID,
		Message:  message,
		Numbers:  normalized,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !result.Return {
		return fmt.Errorf("%w: provider rejected message: %v", ErrSendFailed, result.Message)
	}

	c.log.Info("SMS sent: request_id=%s, number=%s", result.RequestID, normalized)

	return nil
}

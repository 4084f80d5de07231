package paymentgateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func signPayload(secret, orderRef, paymentRef string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderRef + "|" + paymentRef))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "key_id", user)
			assert.Equal(t, "key_secret", pass)

			var req orderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(75000), req.Amount)
			assert.Equal(t, "INR", req.Currency)
			assert.Equal(t, "1", req.Notes["booking_id"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Order{
				ID:       "order_abc123",
				Amount:   req.Amount,
				Currency: req.Currency,
				Receipt:  req.Receipt,
				Status:   "created",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second, nopLogger{})

		order, err := client.CreateOrder(context.Background(), 75000, "INR", "booking_1", map[string]string{"booking_id": "1"})
		require.NoError(t, err)

		assert.Equal(t, "order_abc123", order.ID)
		assert.Equal(t, int64(75000), order.Amount)
	})

	t.Run("rejected with error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too small"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second, nopLogger{})

		_, err := client.CreateOrder(context.Background(), 1, "INR", "booking_1", nil)
		assert.ErrorIs(t, err, ErrOrderRejected)
		assert.Contains(t, err.Error(), "amount too small")
	})

	t.Run("server error means unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second, nopLogger{})

		_, err := client.CreateOrder(context.Background(), 100, "INR", "booking_1", nil)
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	})

	t.Run("network failure means unavailable", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "key_id", "key_secret", time.Second, nopLogger{})

		_, err := client.CreateOrder(context.Background(), 100, "INR", "booking_1", nil)
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	})

	t.Run("empty order id in response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second, nopLogger{})

		_, err := client.CreateOrder(context.Background(), 100, "INR", "booking_1", nil)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestVerifySignature(t *testing.T) {
	client := NewClient("http://gateway", "key_id", "key_secret", time.Second, nopLogger{})

	valid := signPayload("key_secret", "order_abc123", "pay_1")

	assert.True(t, client.VerifySignature("order_abc123", "pay_1", valid))
	assert.False(t, client.VerifySignature("order_abc123", "pay_2", valid))
	assert.False(t, client.VerifySignature("order_other", "pay_1", valid))
	assert.False(t, client.VerifySignature("order_abc123", "pay_1", "deadbeef"))
	assert.False(t, client.VerifySignature("order_abc123", "pay_1", ""))

	signedWithWrongSecret := signPayload("other_secret", "order_abc123", "pay_1")
	assert.False(t, client.VerifySignature("order_abc123", "pay_1", signedWithWrongSecret))
}

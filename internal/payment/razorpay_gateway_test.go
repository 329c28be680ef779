package payment

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

func signPayload(secret, intentID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(intentID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestGateway_VerifySignature(t *testing.T) {
	g := NewRazorpayGateway("key", "secret")

	t.Run("Valid", func(t *testing.T) {
		sig := signPayload("secret", "order_123", "pay_456")
		assert.NoError(t, g.VerifySignature("order_123", "pay_456", sig))
	})

	t.Run("Tampered", func(t *testing.T) {
		sig := signPayload("secret", "order_123", "pay_456")
		err := g.VerifySignature("order_123", "pay_999", sig)
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		sig := signPayload("other-secret", "order_123", "pay_456")
		err := g.VerifySignature("order_123", "pay_456", sig)
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("EmptySignature", func(t *testing.T) {
		err := g.VerifySignature("order_123", "pay_456", "")
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})
}

func TestGateway_CreateIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "key", user)
			assert.Equal(t, "secret", pass)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(25000), body["amount"])
			assert.Equal(t, "INR", body["currency"])

			json.NewEncoder(w).Encode(Intent{
				ID:       "order_test1",
				Amount:   25000,
				Currency: "INR",
				Receipt:  body["receipt"].(string),
				Status:   "created",
			})
		}))
		defer srv.Close()

		g := &razorpayGateway{
			keyID:      "key",
			keySecret:  "secret",
			baseURL:    srv.URL,
			httpClient: &http.Client{Timeout: time.Second},
		}

		intent, err := g.CreateIntent(ctx, 25000, "rcpt-1")
		require.NoError(t, err)
		assert.Equal(t, "order_test1", intent.ID)
		assert.Equal(t, int64(25000), intent.Amount)
		assert.Equal(t, "created", intent.Status)
	})

	t.Run("GatewayError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"description":"bad key"}}`))
		}))
		defer srv.Close()

		g := &razorpayGateway{
			keyID:      "key",
			keySecret:  "wrong",
			baseURL:    srv.URL,
			httpClient: &http.Client{Timeout: time.Second},
		}

		_, err := g.CreateIntent(ctx, 1000, "rcpt-2")
		assert.Error(t, err)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		g := NewRazorpayGateway("key", "secret")

		_, err := g.CreateIntent(ctx, 0, "rcpt-3")
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = g.CreateIntent(ctx, -500, "rcpt-4")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

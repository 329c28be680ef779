package payment

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

	"qrserve-be/internal/logger"

	"go.uber.org/zap"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

// Gateway is the payment boundary: reserve an intent before checkout,
// verify the gateway's signature after it.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, receipt string) (*Intent, error)
	VerifySignature(intentID, paymentID, signature string) error
}

type razorpayGateway struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewRazorpayGateway(keyID, keySecret string) Gateway {
	if keyID == "" || keySecret == "" {
		logger.L().Warn("Razorpay credentials are empty")
	}

	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   razorpayBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateIntent reserves a gateway order for the given amount in minor
// units (paise).
func (g *razorpayGateway) CreateIntent(ctx context.Context, amount int64, receipt string) (*Intent, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", amount),
		zap.String("receipt", receipt),
	)

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	body := map[string]interface{}{
		"amount":   amount,
		"currency": "INR",
		"receipt":  receipt,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating gateway request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Add("Content-Type", "application/json")

	log.Info("Creating payment intent")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("Gateway request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read gateway response", zap.Error(err))
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Gateway returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("gateway error: %s", string(bodyBytes))
	}

	var intent Intent
	if err := json.Unmarshal(bodyBytes, &intent); err != nil {
		log.Error("Failed decoding gateway response", zap.Error(err))
		return nil, err
	}

	log.Info("Payment intent created",
		zap.String("intent_id", intent.ID),
		zap.String("status", intent.Status),
	)

	return &intent, nil
}

// VerifySignature checks the checkout callback: the gateway signs
// "<intent_id>|<payment_id>" with the key secret using HMAC-SHA256.
func (g *razorpayGateway) VerifySignature(intentID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(intentID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}

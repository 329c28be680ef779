package payment

import (
	"time"

	"github.com/google/uuid"
)

// Intent is a gateway payment-intent (a Razorpay "order"): the amount
// the diner is about to pay, reserved at the gateway before the hosted
// checkout opens.
type Intent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Payment is the persisted record of a verified payment. It is written
// only after signature verification succeeds, alongside the order it
// paid for.
type Payment struct {
	ID         uuid.UUID `json:"id"`
	IntentRef  string    `json:"intentRef"`
	PaymentRef string    `json:"paymentRef"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	OrderID    uuid.UUID `json:"orderId"`
	CreatedAt  time.Time `json:"createdAt"`
}

const StatusVerified = "VERIFIED"

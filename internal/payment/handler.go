package payment

import (
	"errors"
	"math"
	"net/http"

	"qrserve-be/internal/order"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-order", h.CreateIntent)
	rg.POST("/verify", h.Verify)
}

type CreateIntentRequest struct {
	Amount float64 `json:"amount"` // major units (rupees)
}

type VerifyRequest struct {
	RazorpayOrderID   string       `json:"razorpay_order_id"`
	RazorpayPaymentID string       `json:"razorpay_payment_id"`
	RazorpaySignature string       `json:"razorpay_signature"`
	TableNumber       int          `json:"tableNumber"`
	Items             []order.Item `json:"items"`
}

func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment data"})
		return
	}

	intent, err := h.svc.CreateIntent(c.Request.Context(), int64(math.Round(req.Amount*100)))
	if errors.Is(err, ErrInvalidAmount) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment data"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Payment gateway error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": intent})
}

// Verify checks the gateway signature and, only on success, places the
// order carried in the request body.
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment data"})
		return
	}

	o, err := h.svc.ConfirmAndPlaceOrder(c.Request.Context(), ConfirmRequest{
		IntentRef:   req.RazorpayOrderID,
		PaymentRef:  req.RazorpayPaymentID,
		Signature:   req.RazorpaySignature,
		TableNumber: req.TableNumber,
		Items:       req.Items,
	})
	switch {
	case errors.Is(err, ErrSignatureMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment Verification Failed"})
	case errors.Is(err, order.ErrInvalidTable), errors.Is(err, order.ErrEmptyItems):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order data"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error"})
	default:
		c.JSON(http.StatusCreated, gin.H{"success": true, "order": o})
	}
}

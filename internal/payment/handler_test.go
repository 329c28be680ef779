package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"qrserve-be/internal/order"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateIntent(ctx context.Context, amount int64) (*Intent, error) {
	args := m.Called(ctx, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Intent), args.Error(1)
}

func (m *MockService) ConfirmAndPlaceOrder(ctx context.Context, req ConfirmRequest) (*order.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func paymentRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/payment"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateIntent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		// 250 rupees becomes 25000 paise.
		svc.On("CreateIntent", mock.Anything, int64(25000)).
			Return(&Intent{ID: "order_x", Amount: 25000, Currency: "INR", Status: "created"}, nil)

		w := postJSON(t, paymentRouter(svc), "/api/payment/create-order",
			CreateIntentRequest{Amount: 250})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "order_x")
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		svc := new(MockService)
		svc.On("CreateIntent", mock.Anything, int64(0)).Return(nil, ErrInvalidAmount)

		w := postJSON(t, paymentRouter(svc), "/api/payment/create-order",
			CreateIntentRequest{Amount: 0})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Verify(t *testing.T) {
	body := VerifyRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_def",
		RazorpaySignature: "sig",
		TableNumber:       3,
		Items:             []order.Item{{Name: "Burger", Price: 100, Quantity: 2}},
	}

	t.Run("VerifiedPlacesOrder", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ConfirmAndPlaceOrder", mock.Anything, mock.Anything).
			Return(&order.Order{ID: uuid.New(), TableNumber: 3, Status: order.StatusPending}, nil)

		w := postJSON(t, paymentRouter(svc), "/api/payment/verify", body)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("BadSignature", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ConfirmAndPlaceOrder", mock.Anything, mock.Anything).
			Return(nil, ErrSignatureMismatch)

		w := postJSON(t, paymentRouter(svc), "/api/payment/verify", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Payment Verification Failed")
	})

	t.Run("InvalidOrderData", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ConfirmAndPlaceOrder", mock.Anything, mock.Anything).
			Return(nil, order.ErrEmptyItems)

		w := postJSON(t, paymentRouter(svc), "/api/payment/verify", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid order data")
	})
}

package payment

import (
	"context"

	"qrserve-be/internal/logger"
	"qrserve-be/internal/order"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateIntent(ctx context.Context, amount int64) (*Intent, error)
	ConfirmAndPlaceOrder(ctx context.Context, req ConfirmRequest) (*order.Order, error)
}

// ConfirmRequest carries the gateway callback fields plus the cart
// content the verified payment covers.
type ConfirmRequest struct {
	IntentRef   string
	PaymentRef  string
	Signature   string
	TableNumber int
	Items       []order.Item
}

type service struct {
	repo    Repository
	gateway Gateway
	orders  order.Service
}

func NewService(repo Repository, gateway Gateway, orders order.Service) Service {
	return &service{repo: repo, gateway: gateway, orders: orders}
}

func (s *service) CreateIntent(ctx context.Context, amount int64) (*Intent, error) {
	return s.gateway.CreateIntent(ctx, amount, uuid.NewString())
}

// ConfirmAndPlaceOrder is the one path from a paid checkout to a
// persisted order: the signature is verified first, and the order is
// created exactly once, only after verification succeeds.
func (s *service) ConfirmAndPlaceOrder(ctx context.Context, req ConfirmRequest) (*order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("intent_ref", req.IntentRef),
		zap.String("payment_ref", req.PaymentRef),
		zap.Int("table_number", req.TableNumber),
	)

	if err := s.gateway.VerifySignature(req.IntentRef, req.PaymentRef, req.Signature); err != nil {
		log.Warn("payment verification failed")
		return nil, err
	}

	o, err := s.orders.Create(ctx, req.TableNumber, req.Items)
	if err != nil {
		return nil, err
	}

	var amount float64
	for _, item := range req.Items {
		amount += item.Price * float64(item.Quantity)
	}

	p := &Payment{
		IntentRef:  req.IntentRef,
		PaymentRef: req.PaymentRef,
		Amount:     int64(amount * 100),
		Status:     StatusVerified,
		OrderID:    o.ID,
	}
	if err := s.repo.SavePayment(ctx, p); err != nil {
		// The order stands; the payment record is bookkeeping.
		log.Error("failed to record verified payment",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
		return o, nil
	}

	log.Info("payment verified and order placed",
		zap.String("order_id", o.ID.String()),
		zap.Int64("amount", p.Amount),
	)

	return o, nil
}

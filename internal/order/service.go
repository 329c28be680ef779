package order

import (
	"context"

	"qrserve-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, tableNumber int, items []Item) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListForTable(ctx context.Context, tableNumber int) ([]*Order, error)
	LatestStatusForTable(ctx context.Context, tableNumber int) (Status, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error)
	Delete(ctx context.Context, orderID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates the submission and persists a new Pending order.
// The table number is not checked against a known table list; only
// positivity is required here.
func (s *service) Create(ctx context.Context, tableNumber int, items []Item) (*Order, error) {
	if tableNumber <= 0 {
		return nil, ErrInvalidTable
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	o, err := s.repo.Insert(ctx, tableNumber, items)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order created",
		zap.String("order_id", o.ID.String()),
		zap.Int("table_number", o.TableNumber),
		zap.Int("item_count", len(o.Items)),
	)

	return o, nil
}

func (s *service) List(ctx context.Context) ([]*Order, error) {
	return s.repo.FetchAll(ctx)
}

func (s *service) ListForTable(ctx context.Context, tableNumber int) ([]*Order, error) {
	orders, err := s.repo.FetchByTable(ctx, tableNumber)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoOrdersForTable
	}
	return orders, nil
}

// LatestStatusForTable reports the status of the table's most recent
// order, which is what the diner's polling loop displays.
func (s *service) LatestStatusForTable(ctx context.Context, tableNumber int) (Status, error) {
	o, err := s.repo.LatestByTable(ctx, tableNumber)
	if err != nil {
		return "", err
	}
	return o.Status, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, ErrInvalidOrderID
	}

	o, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)

	return o, nil
}

func (s *service) Delete(ctx context.Context, orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return ErrInvalidOrderID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order deleted", zap.String("order_id", orderID))
	return nil
}

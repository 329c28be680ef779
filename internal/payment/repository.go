package payment

import (
	"context"
	"database/sql"

	"qrserve-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	SavePayment(ctx context.Context, p *Payment) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SavePayment(ctx context.Context, p *Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO payments (id, intent_ref, payment_ref, amount, status, order_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, p.ID, p.IntentRef, p.PaymentRef, p.Amount, p.Status, p.OrderID).
		Scan(&p.CreatedAt)

	if err != nil {
		logger.FromCtx(ctx).Error("failed to save payment",
			zap.String("intent_ref", p.IntentRef),
			zap.String("payment_ref", p.PaymentRef),
			zap.Error(err),
		)
		return err
	}

	return nil
}

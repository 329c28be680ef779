package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"qrserve-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, tableNumber int, items []Item) (*Order, error)
	FetchAll(ctx context.Context) ([]*Order, error)
	FetchByTable(ctx context.Context, tableNumber int) ([]*Order, error)
	LatestByTable(ctx context.Context, tableNumber int) (*Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status Status) (*Order, error)
	Delete(ctx context.Context, orderID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Insert persists a new order with status Pending. The item snapshot is
// stored as a single JSONB document on the order row.
func (r *repository) Insert(ctx context.Context, tableNumber int, items []Item) (*Order, error) {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	o := &Order{
		ID:          uuid.New(),
		TableNumber: tableNumber,
		Items:       items,
		Status:      StatusPending,
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO orders (id, table_number, items, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, o.ID, o.TableNumber, itemsJSON, o.Status).
		Scan(&o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert order",
			zap.Int("table_number", tableNumber),
			zap.Error(err),
		)
		return nil, err
	}

	return o, nil
}

// FetchAll returns every order, newest first.
func (r *repository) FetchAll(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, table_number, items, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// FetchByTable returns the table's orders, newest first.
func (r *repository) FetchByTable(ctx context.Context, tableNumber int) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, table_number, items, status, created_at, updated_at
		FROM orders
		WHERE table_number = $1
		ORDER BY created_at DESC
	`, tableNumber)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query orders by table",
			zap.Int("table_number", tableNumber),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// LatestByTable returns the most recently created order for the table,
// or ErrNoOrdersForTable.
func (r *repository) LatestByTable(ctx context.Context, tableNumber int) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, table_number, items, status, created_at, updated_at
		FROM orders
		WHERE table_number = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, tableNumber)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoOrdersForTable
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}

// UpdateStatus mutates only status and updated_at. Last write wins;
// there is no version check.
func (r *repository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status Status) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, table_number, items, status, created_at, updated_at
	`, status, orderID)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update order status",
			zap.String("order_id", orderID.String()),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, err
	}

	return o, nil
}

// Delete removes the order row permanently. No audit trail is kept.
func (r *repository) Delete(ctx context.Context, orderID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete order",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var o Order
	var itemsJSON []byte

	err := row.Scan(&o.ID, &o.TableNumber, &itemsJSON, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}

	return &o, nil
}

func scanOrders(rows *sql.Rows) ([]*Order, error) {
	var orders []*Order

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

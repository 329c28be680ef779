package order

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidTable   = errors.New("invalid table number")
	ErrEmptyItems     = errors.New("order has no items")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidOrderID = errors.New("invalid order id")

	// -- Resource State --
	ErrOrderNotFound    = errors.New("order not found")
	ErrNoOrdersForTable = errors.New("no orders found for this table")
)

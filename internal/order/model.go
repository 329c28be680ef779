package order

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusDelivered Status = "Delivered"
	StatusCanceled  Status = "Canceled"
)

// Statuses lists every status an order may hold.
var Statuses = []Status{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCanceled,
}

// Valid reports whether s is one of the five known statuses.
// Membership is the only rule: staff may move an order between any two
// statuses, including reopening a delivered or canceled one.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Item is a denormalized snapshot of a menu entry taken at submission
// time. It carries no reference back to the catalog and never changes
// after the order is created.
type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID          uuid.UUID `json:"id"`
	TableNumber int       `json:"tableNumber"`
	Items       []Item    `json:"items"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

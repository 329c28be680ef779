// Package cart models the diner's transient basket. A cart lives only
// for the table session: it is assembled from menu items, snapshotted
// into order items at submission, and discarded. Nothing here touches
// storage.
package cart

import (
	"errors"

	"qrserve-be/internal/menu"
	"qrserve-be/internal/order"
)

var ErrCartEmpty = errors.New("cart is empty")

type Entry struct {
	Item     menu.Item `json:"item"`
	Quantity int       `json:"quantity"`
}

// Cart keeps entries in the order items were first added.
type Cart struct {
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the item in the cart, merging with an existing
// entry for the same menu item.
func (c *Cart) Add(item menu.Item) {
	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			c.entries[i].Quantity++
			return
		}
	}
	c.entries = append(c.entries, Entry{Item: item, Quantity: 1})
}

// Remove takes one unit of the item out of the cart; the entry is
// dropped when its quantity reaches zero. Removing an absent item is a
// no-op.
func (c *Cart) Remove(itemID int) {
	for i := range c.entries {
		if c.entries[i].Item.ID != itemID {
			continue
		}
		if c.entries[i].Quantity > 1 {
			c.entries[i].Quantity--
		} else {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
		}
		return
	}
}

func (c *Cart) Entries() []Entry {
	return c.entries
}

func (c *Cart) Empty() bool {
	return len(c.entries) == 0
}

// Total is the amount the diner pays: price times quantity over every
// entry.
func (c *Cart) Total() float64 {
	var total float64
	for _, e := range c.entries {
		total += e.Item.Price * float64(e.Quantity)
	}
	return total
}

// Snapshot converts the cart into the denormalized item list an order
// carries. The snapshot copies name and price so later menu changes
// cannot reach into submitted orders.
func (c *Cart) Snapshot() ([]order.Item, error) {
	if c.Empty() {
		return nil, ErrCartEmpty
	}

	items := make([]order.Item, 0, len(c.entries))
	for _, e := range c.entries {
		items = append(items, order.Item{
			Name:     e.Item.Name,
			Price:    e.Item.Price,
			Quantity: e.Quantity,
		})
	}
	return items, nil
}

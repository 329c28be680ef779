// Package board derives the kitchen view from a flat order list. All
// functions are pure: the view is recomputed from a full re-read on
// every refresh and holds no state of its own.
package board

import (
	"sort"
	"strconv"
	"strings"

	"qrserve-be/internal/order"
)

// FilterAll matches every status.
const FilterAll = "All"

// GroupByTable partitions orders by table number. Within a group the
// input ordering is preserved, so a newest-first input yields
// newest-first groups.
func GroupByTable(orders []*order.Order) map[int][]*order.Order {
	groups := make(map[int][]*order.Order)
	for _, o := range orders {
		groups[o.TableNumber] = append(groups[o.TableNumber], o)
	}
	return groups
}

// TableTotal sums price*quantity across every item of every order in
// the group. An item without a price contributes 0. An empty group
// totals 0.
func TableTotal(orders []*order.Order) float64 {
	var total float64
	for _, o := range orders {
		for _, item := range o.Items {
			total += item.Price * float64(item.Quantity)
		}
	}
	return total
}

// Filter keeps an order when its status matches statusFilter (or the
// filter is All) and tableQuery is a substring of the table number's
// decimal form. The substring match is deliberate: it supports
// partial-digit search from the admin panel.
func Filter(orders []*order.Order, statusFilter, tableQuery string) []*order.Order {
	var kept []*order.Order
	for _, o := range orders {
		if statusFilter != FilterAll && string(o.Status) != statusFilter {
			continue
		}
		if tableQuery != "" && !strings.Contains(strconv.Itoa(o.TableNumber), tableQuery) {
			continue
		}
		kept = append(kept, o)
	}
	return kept
}

// TableView is one table's basket on the kitchen board.
type TableView struct {
	TableNumber int            `json:"tableNumber"`
	Orders      []*order.Order `json:"orders"`
	Total       float64        `json:"total"`
}

// Build groups orders and computes per-table totals, sorted by table
// number for a stable board layout.
func Build(orders []*order.Order) []TableView {
	groups := GroupByTable(orders)

	views := make([]TableView, 0, len(groups))
	for table, tableOrders := range groups {
		views = append(views, TableView{
			TableNumber: table,
			Orders:      tableOrders,
			Total:       TableTotal(tableOrders),
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].TableNumber < views[j].TableNumber
	})
	return views
}

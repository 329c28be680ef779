// Package menu serves the static catalog diners order from. Items are
// not persisted anywhere; orders carry their own denormalized snapshot.
package menu

import (
	"errors"
	"sort"
)

type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

var ErrItemNotFound = errors.New("menu item not found")

var catalog = []Item{
	{ID: 1, Name: "Burger", Price: 100, Category: "Fast Food", Image: "/images/burger.jpg"},
	{ID: 2, Name: "Pizza", Price: 200, Category: "Fast Food", Image: "/images/pizza.jpg"},
	{ID: 3, Name: "Pasta", Price: 150, Category: "Italian", Image: "/images/pasta.jpg"},
	{ID: 4, Name: "French Fries", Price: 80, Category: "Fast Food", Image: "/images/fries.jpg"},
	{ID: 5, Name: "Cake", Price: 180, Category: "Snacks", Image: "/images/cake.jpg"},
	{ID: 6, Name: "Coffee", Price: 70, Category: "Beverages", Image: "/images/coffee.jpg"},
	{ID: 7, Name: "Veg Sandwich", Price: 90, Category: "Fast Food", Image: "/images/sandwich.jpg"},
	{ID: 8, Name: "Paneer Tikka", Price: 220, Category: "Indian", Image: "/images/paneer_tikka.jpg"},
	{ID: 9, Name: "Spring Rolls", Price: 140, Category: "Chinese", Image: "/images/spring_rolls.jpg"},
	{ID: 10, Name: "Momos", Price: 120, Category: "Chinese", Image: "/images/momos.jpg"},
	{ID: 11, Name: "Dosa", Price: 180, Category: "South Indian", Image: "/images/dosa.jpg"},
	{ID: 12, Name: "Vegetable Biryani", Price: 250, Category: "Indian", Image: "/images/veg_biryani.jpg"},
	{ID: 13, Name: "Chocolate", Price: 10, Category: "Snacks", Image: "/images/chocolate.jpg"},
}

// Sort options accepted by List.
const (
	SortDefault      = "Default"
	SortPriceLowHigh = "Price: Low to High"
	SortPriceHighLow = "Price: High to Low"
)

// CategoryAll matches every category.
const CategoryAll = "All"

// List returns the catalog filtered by category and sorted by price.
// Unknown sort options fall back to catalog order.
func List(category, sortOption string) []Item {
	items := make([]Item, 0, len(catalog))
	for _, item := range catalog {
		if category == "" || category == CategoryAll || item.Category == category {
			items = append(items, item)
		}
	}

	switch sortOption {
	case SortPriceLowHigh:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceHighLow:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	}

	return items
}

// Get looks up a single catalog item by id.
func Get(id int) (Item, error) {
	for _, item := range catalog {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrItemNotFound
}

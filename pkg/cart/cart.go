package cart

import (
	"sync"

	"github.com/example/craftshop/pkg/catalog"
)

// Item is one cart line: a catalog product plus its quantity. Identity is
// the product id; a product never occupies two lines.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds a session's line items. It is an explicitly constructed state
// object: tests and handlers get their own instance, there is no ambient
// shared cart. One logical writer per session; the mutex covers the handler
// goroutine racing the session sweeper.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// AddItem appends the product or, if already present, increments its
// quantity by qty. A qty below 1 is treated as 1. No stock check is made.
func (c *Cart) AddItem(p catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: qty})
}

// RemoveItem deletes the line for the product id, no-op when absent.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = deleteLine(c.items, productID)
}

// UpdateQuantity sets (not increments) the quantity for the product id.
// Quantities below 1 delete the line.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty < 1 {
		c.items = deleteLine(c.items, productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a snapshot of the current lines.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of price*quantity over all lines, in whole rupees.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, it := range c.items {
		total += it.Product.Price * it.Quantity
	}
	return total
}

// ItemCount is the sum of quantities, the badge number on the cart icon.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

func deleteLine(items []Item, productID string) []Item {
	for i := range items {
		if items[i].Product.ID == productID {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

package cart

import (
	"sync"

	"github.com/example/craftshop/pkg/catalog"
)

// Wishlist is a presence-only set of saved products, at most one entry per
// product id.
type Wishlist struct {
	mu    sync.Mutex
	items []catalog.Product
}

func NewWishlist() *Wishlist {
	return &Wishlist{}
}

// Add saves the product and reports whether it was newly added, so callers
// can phrase the "added" vs "already saved" notice. Adding a present item is
// a no-op.
func (w *Wishlist) Add(p catalog.Product) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, it := range w.items {
		if it.ID == p.ID {
			return false
		}
	}
	w.items = append(w.items, p)
	return true
}

func (w *Wishlist) Remove(productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.items {
		if w.items[i].ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, it := range w.items {
		if it.ID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = nil
}

func (w *Wishlist) Items() []catalog.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]catalog.Product, len(w.items))
	copy(out, w.items)
	return out
}

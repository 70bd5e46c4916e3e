package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	w := NewWishlist()

	assert.True(t, w.Add(throw))
	assert.False(t, w.Add(throw))

	require.Len(t, w.Items(), 1)
	assert.True(t, w.Contains(throw.ID))
}

func TestWishlistMembership(t *testing.T) {
	w := NewWishlist()
	w.Add(throw)
	w.Add(lamp)

	assert.True(t, w.Contains(lamp.ID))
	w.Remove(lamp.ID)
	assert.False(t, w.Contains(lamp.ID))
	assert.True(t, w.Contains(throw.ID))

	w.Clear()
	assert.Empty(t, w.Items())
	assert.False(t, w.Contains(throw.ID))
}

func TestManagerKeepsSessionsApart(t *testing.T) {
	m := NewManager(0)
	defer m.Close()

	a := m.Session("session-a")
	b := m.Session("session-b")
	a.Cart.AddItem(throw, 1)

	assert.Equal(t, 1, a.Cart.ItemCount())
	assert.Equal(t, 0, b.Cart.ItemCount())
	assert.Same(t, a, m.Session("session-a"))
	assert.Equal(t, 2, m.Len())
}

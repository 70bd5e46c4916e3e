package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/craftshop/pkg/cart"
	"github.com/example/craftshop/pkg/checkout"
	"github.com/example/craftshop/pkg/config"
	"github.com/example/craftshop/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memOrderStore struct {
	orders []*models.Order
}

func (m *memOrderStore) CreateOrder(_ context.Context, order *models.Order) error {
	m.orders = append(m.orders, order)
	return nil
}

func (m *memOrderStore) RecentOrder(_ context.Context, sessionID, userID string) (*models.Order, error) {
	for i := len(m.orders) - 1; i >= 0; i-- {
		o := m.orders[i]
		if (userID != "" && o.UserID == userID) || (userID == "" && o.SessionID == sessionID) {
			return o, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memOrderStore) OrderByNumber(_ context.Context, number string) (*models.Order, error) {
	for _, o := range m.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, errors.New("not found")
}

func newTestServer(t *testing.T) (*Server, *memOrderStore) {
	t.Helper()

	sessions := cart.NewManager(0)
	t.Cleanup(sessions.Close)

	store := &memOrderStore{}
	payment := config.PaymentConfig{UPIAddress: "craftshop@upi", QRImageURL: "/assets/upi-qr.png"}

	srv := NewServer(&config.Config{}, zap.NewNop(), Deps{
		Sessions: sessions,
		Checkout: checkout.NewService(store, nil, payment, zap.NewNop()),
	})
	srv.SetupRoutes()
	return srv, store
}

func doJSON(t *testing.T, srv *Server, method, path, session string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", session)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

type cartResponse struct {
	Items []struct {
		Product struct {
			ID    string `json:"id"`
			Price int    `json:"price"`
		} `json:"product"`
		Quantity int `json:"quantity"`
	} `json:"items"`
	Total     int `json:"total"`
	ItemCount int `json:"item_count"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCartEndpointsLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	const sess = "sess-cart"

	// Handloom Cotton Throw, 1800.
	w := doJSON(t, srv, http.MethodPost, "/api/v1/cart/items", sess, map[string]interface{}{
		"product_id": "p-008", "quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	assert.Equal(t, 1, resp.ItemCount)
	assert.Equal(t, 1800, resp.Total)

	// Adding again merges into one line.
	w = doJSON(t, srv, http.MethodPost, "/api/v1/cart/items", sess, map[string]interface{}{
		"product_id": "p-008", "quantity": 1,
	})
	resp = decodeCart(t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 3600, resp.Total)

	w = doJSON(t, srv, http.MethodDelete, "/api/v1/cart/items/p-008", sess, nil)
	resp = decodeCart(t, w)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.Total)
}

func TestCartUnknownProductRejected(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/api/v1/cart/items", "sess-x", map[string]interface{}{
		"product_id": "missing",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, srv, http.MethodPost, "/api/v1/cart/items", "sess-a", map[string]interface{}{
		"product_id": "p-003",
	})

	w := doJSON(t, srv, http.MethodGet, "/api/v1/cart", "sess-b", nil)
	assert.Equal(t, 0, decodeCart(t, w).ItemCount)
}

func TestWishlistEndpointIdempotent(t *testing.T) {
	srv, _ := newTestServer(t)
	const sess = "sess-wish"

	w := doJSON(t, srv, http.MethodPost, "/api/v1/wishlist/items", sess, map[string]interface{}{
		"product_id": "p-012",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Added  bool   `json:"added"`
		Notice string `json:"notice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Added)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/wishlist/items", sess, map[string]interface{}{
		"product_id": "p-012",
	})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Added)
	assert.Equal(t, "Already in wishlist", resp.Notice)
}

func TestCheckoutTwoStepFlow(t *testing.T) {
	srv, store := newTestServer(t)
	const sess = "sess-checkout"

	doJSON(t, srv, http.MethodPost, "/api/v1/cart/items", sess, map[string]interface{}{
		"product_id": "p-008", "quantity": 2,
	})

	shipping := map[string]interface{}{
		"first_name": "Asha", "last_name": "Verma",
		"email": "asha@example.com", "phone": "9876543210",
		"street": "12 Loom Lane", "city": "Jaipur", "state": "Rajasthan", "zip": "302001",
	}

	// First click: quote only, nothing written.
	w := doJSON(t, srv, http.MethodPost, "/api/v1/checkout/quote", sess, map[string]interface{}{
		"shipping": shipping,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var quote struct {
		Totals     checkout.Totals `json:"totals"`
		QRImageURL string          `json:"qr_image_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 3600, quote.Totals.Subtotal)
	assert.Equal(t, 0, quote.Totals.Shipping)
	assert.Equal(t, "/assets/upi-qr.png", quote.QRImageURL)
	assert.Empty(t, store.orders)

	// Second click: order created, cart cleared.
	w = doJSON(t, srv, http.MethodPost, "/api/v1/checkout/confirm", sess, map[string]interface{}{
		"shipping": shipping, "payment_method": "upi",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var confirm struct {
		OrderNumber string `json:"order_number"`
		Total       int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirm))
	assert.Regexp(t, `^HDR-\d+-[A-Z0-9]{5}$`, confirm.OrderNumber)
	require.Len(t, store.orders, 1)
	require.Len(t, store.orders[0].Items, 1)
	assert.Equal(t, 2, store.orders[0].Items[0].Quantity)

	cartW := doJSON(t, srv, http.MethodGet, "/api/v1/cart", sess, nil)
	assert.Equal(t, 0, decodeCart(t, cartW).ItemCount)

	// Confirmation fallback finds the order again by session.
	w = doJSON(t, srv, http.MethodGet, "/api/v1/orders/recent", sess, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var recent struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recent))
	assert.Equal(t, confirm.OrderNumber, recent.Order.OrderNumber)
}

func TestCheckoutQuoteValidation(t *testing.T) {
	srv, store := newTestServer(t)
	const sess = "sess-invalid"

	doJSON(t, srv, http.MethodPost, "/api/v1/cart/items", sess, map[string]interface{}{
		"product_id": "p-001",
	})

	w := doJSON(t, srv, http.MethodPost, "/api/v1/checkout/quote", sess, map[string]interface{}{
		"shipping": map[string]interface{}{"first_name": "Asha"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing")
	assert.Empty(t, store.orders)
}

func TestCheckoutConfirmEmptyCart(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/checkout/confirm", "sess-empty", map[string]interface{}{
		"shipping": map[string]interface{}{
			"first_name": "A", "last_name": "B", "email": "a@b.c", "phone": "1",
			"street": "s", "city": "c", "state": "st", "zip": "z",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

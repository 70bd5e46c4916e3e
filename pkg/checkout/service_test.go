package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/example/craftshop/pkg/cart"
	"github.com/example/craftshop/pkg/catalog"
	"github.com/example/craftshop/pkg/config"
	"github.com/example/craftshop/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrderStore struct {
	created []*models.Order
	fail    error
}

func (f *fakeOrderStore) CreateOrder(_ context.Context, order *models.Order) error {
	if f.fail != nil {
		return f.fail
	}
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderStore) RecentOrder(_ context.Context, _, _ string) (*models.Order, error) {
	if len(f.created) == 0 {
		return nil, errors.New("not found")
	}
	return f.created[len(f.created)-1], nil
}

func (f *fakeOrderStore) OrderByNumber(_ context.Context, number string) (*models.Order, error) {
	for _, o := range f.created {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, errors.New("not found")
}

var testPayment = config.PaymentConfig{
	UPIAddress: "craftshop@upi",
	PayeeName:  "Craftshop Handmade",
	QRImageURL: "/assets/upi-qr.png",
}

func validShipping() ShippingInfo {
	return ShippingInfo{
		FirstName: "Asha", LastName: "Verma",
		Email: "asha@example.com", Phone: "9876543210",
		Street: "12 Loom Lane", City: "Jaipur", State: "Rajasthan", Zip: "302001",
	}
}

func testCart() *cart.Cart {
	c := cart.New()
	c.AddItem(catalog.Product{ID: "p-008", Name: "Handloom Cotton Throw", Price: 1800}, 1)
	c.AddItem(catalog.Product{ID: "p-003", Name: "Brass Peacock Oil Lamp", Price: 2100}, 2)
	return c
}

func TestValidateReportsAllMissingFields(t *testing.T) {
	err := Validate(ShippingInfo{FirstName: "Asha", Email: "a@example.com"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t,
		[]string{"last_name", "phone", "street", "city", "state", "zip"},
		vErr.Missing)

	assert.NoError(t, Validate(validShipping()))
}

func TestQuoteCreatesNoOrder(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewService(store, nil, testPayment, zap.NewNop())
	c := testCart()

	quote, err := svc.Quote(c, validShipping())
	require.NoError(t, err)

	// subtotal 6000 -> free shipping, tax 1080
	assert.Equal(t, Totals{Subtotal: 6000, Shipping: 0, Tax: 1080, Total: 7080}, quote.Totals)
	assert.Equal(t, "craftshop@upi", quote.UPIAddress)
	assert.Empty(t, store.created)
	assert.False(t, c.IsEmpty())
}

func TestQuoteRejectsEmptyCart(t *testing.T) {
	svc := NewService(&fakeOrderStore{}, nil, testPayment, zap.NewNop())
	_, err := svc.Quote(cart.New(), validShipping())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestConfirmCreatesOneOrderWithSnapshotItems(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewService(store, nil, testPayment, zap.NewNop())
	c := testCart()

	order, err := svc.Confirm(context.Background(), c, "sess-1", "user-1", validShipping(), "upi")
	require.NoError(t, err)
	require.Len(t, store.created, 1)

	assert.Regexp(t, `^HDR-\d+-[A-Z0-9]{5}$`, order.OrderNumber)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, 6000, order.Subtotal)
	assert.Equal(t, 7080, order.Total)

	require.Len(t, order.Items, 2)
	for _, it := range order.Items {
		assert.Equal(t, order.ID, it.OrderID)
		assert.Equal(t, it.UnitPrice*it.Quantity, it.LineTotal)
		assert.NotEmpty(t, it.ProductName)
	}

	// Cart cleared only on success.
	assert.True(t, c.IsEmpty())
}

func TestConfirmTotalsMatchItemRows(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewService(store, nil, testPayment, zap.NewNop())

	// Mutate the cart while orders are being confirmed. Whatever snapshot
	// Confirm takes, the persisted totals must agree with the item rows.
	for i := 0; i < 50; i++ {
		c := testCart()
		done := make(chan struct{})
		go func() {
			c.AddItem(catalog.Product{ID: "p-012", Name: "Silver Filigree Earrings", Price: 1950}, 1)
			c.Clear()
			close(done)
		}()

		order, err := svc.Confirm(context.Background(), c, "sess-1", "", validShipping(), "upi")
		<-done
		if errors.Is(err, ErrEmptyCart) {
			continue
		}
		require.NoError(t, err)

		itemSum := 0
		for _, it := range order.Items {
			itemSum += it.LineTotal
		}
		assert.Equal(t, itemSum, order.Subtotal)
		assert.Equal(t, order.Subtotal+order.ShippingFee+order.Tax, order.Total)
	}
}

func TestConfirmLeavesCartOnStoreFailure(t *testing.T) {
	store := &fakeOrderStore{fail: errors.New("connection reset")}
	svc := NewService(store, nil, testPayment, zap.NewNop())
	c := testCart()

	_, err := svc.Confirm(context.Background(), c, "sess-1", "", validShipping(), "upi")
	require.Error(t, err)
	assert.False(t, c.IsEmpty())
}

func TestConfirmRejectsInvalidShipping(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewService(store, nil, testPayment, zap.NewNop())

	_, err := svc.Confirm(context.Background(), testCart(), "sess-1", "", ShippingInfo{}, "upi")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, store.created)
}

func TestConfirmRejectsEmptyCart(t *testing.T) {
	svc := NewService(&fakeOrderStore{}, nil, testPayment, zap.NewNop())
	_, err := svc.Confirm(context.Background(), cart.New(), "sess-1", "", validShipping(), "upi")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestConfirmDefaultsPaymentMethod(t *testing.T) {
	svc := NewService(&fakeOrderStore{}, nil, testPayment, zap.NewNop())
	order, err := svc.Confirm(context.Background(), testCart(), "sess-1", "", validShipping(), "")
	require.NoError(t, err)
	assert.Equal(t, "upi", order.PaymentMethod)
}

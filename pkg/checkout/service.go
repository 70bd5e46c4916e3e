package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/craftshop/pkg/cart"
	"github.com/example/craftshop/pkg/config"
	"github.com/example/craftshop/pkg/models"
	"github.com/example/craftshop/pkg/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrEmptyCart = errors.New("cart is empty")

// ShippingInfo is the checkout form payload.
type ShippingInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// ValidationError lists the required fields missing from a submission.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Validate checks required-field presence only. Email and phone formats are
// the client's concern.
func Validate(info ShippingInfo) error {
	required := []struct {
		name  string
		value string
	}{
		{"first_name", info.FirstName},
		{"last_name", info.LastName},
		{"email", info.Email},
		{"phone", info.Phone},
		{"street", info.Street},
		{"city", info.City},
		{"state", info.State},
		{"zip", info.Zip},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Quote is the first step of the two-step checkout: totals plus the manual
// UPI payment target. Nothing is written.
type Quote struct {
	Totals     Totals `json:"totals"`
	UPIAddress string `json:"upi_address"`
	PayeeName  string `json:"payee_name"`
	QRImageURL string `json:"qr_image_url"`
}

// OrderStore persists orders. The GORM implementation writes the order and
// its items in one transaction.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	RecentOrder(ctx context.Context, sessionID, userID string) (*models.Order, error)
	OrderByNumber(ctx context.Context, number string) (*models.Order, error)
}

// Auditor records order placements for manual payment reconciliation.
type Auditor interface {
	CreateAuditLog(ctx context.Context, log *repository.AuditLog) error
}

type Service struct {
	store   OrderStore
	auditor Auditor
	payment config.PaymentConfig
	logger  *zap.Logger
}

func NewService(store OrderStore, auditor Auditor, payment config.PaymentConfig, logger *zap.Logger) *Service {
	return &Service{store: store, auditor: auditor, payment: payment, logger: logger}
}

// Quote validates the shipping form and computes totals for the cart as it
// stands. The caller shows the QR code; no order exists yet.
func (s *Service) Quote(c *cart.Cart, info ShippingInfo) (*Quote, error) {
	if err := Validate(info); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	return &Quote{
		Totals:     ComputeTotals(c.Total()),
		UPIAddress: s.payment.UPIAddress,
		PayeeName:  s.payment.PayeeName,
		QRImageURL: s.payment.QRImageURL,
	}, nil
}

// Confirm is the second step: the user has self-attested payment. It
// snapshots the cart into an order with line items, writes both atomically,
// and clears the cart on success. Payment itself is never verified here;
// staff reconcile UPI transfers against the audit trail by hand.
func (s *Service) Confirm(ctx context.Context, c *cart.Cart, sessionID, userID string, info ShippingInfo, paymentMethod string) (*models.Order, error) {
	if err := Validate(info); err != nil {
		return nil, err
	}
	lines := c.Items()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if paymentMethod == "" {
		paymentMethod = "upi"
	}

	// Totals derive from the same snapshot as the item rows, so the order is
	// internally consistent even if the cart changes underneath us.
	subtotal := 0
	for _, line := range lines {
		subtotal += line.Product.Price * line.Quantity
	}
	totals := ComputeTotals(subtotal)
	now := time.Now()

	order := &models.Order{
		ID:            uuid.NewString(),
		OrderNumber:   OrderNumber(),
		UserID:        userID,
		SessionID:     sessionID,
		FirstName:     info.FirstName,
		LastName:      info.LastName,
		Email:         info.Email,
		Phone:         info.Phone,
		Street:        info.Street,
		City:          info.City,
		State:         info.State,
		Zip:           info.Zip,
		Country:       info.Country,
		Subtotal:      totals.Subtotal,
		ShippingFee:   totals.Shipping,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMethod: paymentMethod,
		Status:        "pending",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Image:       line.Product.Image,
			UnitPrice:   line.Product.Price,
			Quantity:    line.Quantity,
			LineTotal:   line.Product.Price * line.Quantity,
			CreatedAt:   now,
		})
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		s.logger.Error("failed to create order", zap.String("order_number", order.OrderNumber), zap.Error(err))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	c.Clear()

	if s.auditor != nil {
		go func() {
			err := s.auditor.CreateAuditLog(context.Background(), &repository.AuditLog{
				Action:   "place_order",
				Actor:    userID,
				EntityID: order.ID,
				Data: bson.M{
					"order_number": order.OrderNumber,
					"total":        order.Total,
					"items":        len(order.Items),
				},
			})
			if err != nil {
				s.logger.Warn("failed to write order audit log", zap.Error(err))
			}
		}()
	}

	s.logger.Info("order placed",
		zap.String("order_number", order.OrderNumber),
		zap.Int("total", order.Total),
		zap.Int("items", len(order.Items)))
	return order, nil
}

// RecentOrder is the confirmation-page fallback when navigation state was
// lost: the caller's most recent order.
func (s *Service) RecentOrder(ctx context.Context, sessionID, userID string) (*models.Order, error) {
	return s.store.RecentOrder(ctx, sessionID, userID)
}

func (s *Service) OrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	return s.store.OrderByNumber(ctx, number)
}

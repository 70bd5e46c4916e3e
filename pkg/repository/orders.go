package repository

import (
	"context"
	"errors"

	"github.com/example/craftshop/pkg/models"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository writes and reads orders against the relational store.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder inserts the order row and all item rows inside one
// transaction, so a failed item insert can never strand an empty order.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	items := order.Items
	order.Items = nil
	defer func() { order.Items = items }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RecentOrder returns the caller's most recent order, matching on user id
// when signed in, else on the guest session id.
func (r *OrderRepository) RecentOrder(ctx context.Context, sessionID, userID string) (*models.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items").Order("created_at desc")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	} else {
		query = query.Where("session_id = ?", sessionID)
	}

	var order models.Order
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) OrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("order_number = ?", number).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

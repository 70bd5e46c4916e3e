package models

import (
	"time"
)

type Order struct {
	ID            string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderNumber   string      `gorm:"type:varchar(32);uniqueIndex;not null" json:"order_number"`
	UserID        string      `gorm:"type:varchar(36);index" json:"user_id"`
	SessionID     string      `gorm:"type:varchar(36);index" json:"session_id"`
	FirstName     string      `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string      `gorm:"type:varchar(100);not null" json:"last_name"`
	Email         string      `gorm:"type:varchar(100);not null" json:"email"`
	Phone         string      `gorm:"type:varchar(20);not null" json:"phone"`
	Street        string      `gorm:"type:varchar(255);not null" json:"street"`
	City          string      `gorm:"type:varchar(100);not null" json:"city"`
	State         string      `gorm:"type:varchar(100);not null" json:"state"`
	Zip           string      `gorm:"type:varchar(20);not null" json:"zip"`
	Country       string      `gorm:"type:varchar(100)" json:"country"`
	Subtotal      int         `gorm:"not null" json:"subtotal"`
	ShippingFee   int         `gorm:"not null" json:"shipping_fee"`
	Tax           int         `gorm:"not null" json:"tax"`
	Total         int         `gorm:"not null" json:"total"`
	PaymentMethod string      `gorm:"type:varchar(20);default:'upi'" json:"payment_method"`
	Status        string      `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	DeletedAt     *time.Time  `gorm:"index" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots the product at order time so historical orders stay
// stable when the catalog changes.
type OrderItem struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderID     string    `gorm:"type:varchar(36);not null;index" json:"order_id"`
	ProductID   string    `gorm:"type:varchar(36);not null" json:"product_id"`
	ProductName string    `gorm:"type:varchar(200);not null" json:"product_name"`
	Image       string    `gorm:"type:varchar(500)" json:"image"`
	UnitPrice   int       `gorm:"not null" json:"unit_price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	LineTotal   int       `gorm:"not null" json:"line_total"`
	CreatedAt   time.Time `json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

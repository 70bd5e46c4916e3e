package models

import (
	"time"
)

type ContactMessage struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(200)" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Status    string    `gorm:"type:varchar(20);default:'new'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

// UserRole is read as authoritative by this service; actual enforcement is
// the remote store's policy layer.
type UserRole struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"user_id"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

type NewsletterSubscription struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}

type Address struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	FirstName string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100)" json:"last_name"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Street    string    `gorm:"type:varchar(255)" json:"street"`
	City      string    `gorm:"type:varchar(100)" json:"city"`
	State     string    `gorm:"type:varchar(100)" json:"state"`
	Zip       string    `gorm:"type:varchar(20)" json:"zip"`
	Country   string    `gorm:"type:varchar(100)" json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}

// RecentlyViewed correlates catalog views with a guest session identifier.
type RecentlyViewed struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	SessionID string    `gorm:"type:varchar(36);not null;index" json:"session_id"`
	ProductID string    `gorm:"type:varchar(36);not null" json:"product_id"`
	ViewedAt  time.Time `json:"viewed_at"`
}

func (RecentlyViewed) TableName() string {
	return "recently_viewed"
}

package models

import (
	"time"
)

type Review struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProductID string    `gorm:"type:varchar(36);not null;index" json:"product_id"`
	UserID    string    `gorm:"type:varchar(36)" json:"user_id"`
	Author    string    `gorm:"type:varchar(100);not null" json:"author"`
	Rating    int       `gorm:"not null" json:"rating"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

type ProductQuestion struct {
	ID        string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProductID string          `gorm:"type:varchar(36);not null;index" json:"product_id"`
	UserID    string          `gorm:"type:varchar(36)" json:"user_id"`
	Author    string          `gorm:"type:varchar(100);not null" json:"author"`
	Body      string          `gorm:"type:text;not null" json:"body"`
	Answers   []ProductAnswer `gorm:"foreignKey:QuestionID" json:"answers"`
	CreatedAt time.Time       `json:"created_at"`
}

func (ProductQuestion) TableName() string {
	return "product_questions"
}

type ProductAnswer struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	QuestionID string    `gorm:"type:varchar(36);not null;index" json:"question_id"`
	UserID     string    `gorm:"type:varchar(36)" json:"user_id"`
	Author     string    `gorm:"type:varchar(100);not null" json:"author"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ProductAnswer) TableName() string {
	return "product_answers"
}

package newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/craftshop/pkg/models"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscribeResult is a tagged outcome so callers never inspect backend
// error codes: a repeat signup is not an error.
type SubscribeResult int

const (
	SubscribeFailed SubscribeResult = iota
	SubscribedOK
	AlreadySubscribed
)

var ErrInvalidEmail = errors.New("email must not be empty")

const mysqlDuplicateEntry = 1062

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Subscribe inserts the email, mapping a duplicate-key conflict on the
// unique email column to AlreadySubscribed.
func (s *Service) Subscribe(ctx context.Context, email string) (SubscribeResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return SubscribeFailed, ErrInvalidEmail
	}

	sub := &models.NewsletterSubscription{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		if isDuplicateKey(err) {
			return AlreadySubscribed, nil
		}
		return SubscribeFailed, fmt.Errorf("failed to subscribe: %w", err)
	}
	return SubscribedOK, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

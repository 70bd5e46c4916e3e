package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/craftshop/pkg/models"
	"github.com/example/craftshop/pkg/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound = errors.New("contact message not found")
	ErrInvalidStatus   = errors.New("invalid message status")
	ErrEmptyMessage    = errors.New("name, email and body are required")
)

var validStatuses = map[string]bool{
	"new":       true,
	"read":      true,
	"responded": true,
	"archived":  true,
}

// Auditor records admin mutations.
type Auditor interface {
	CreateAuditLog(ctx context.Context, log *repository.AuditLog) error
}

// Service backs the role-gated console: contact messages, user roles and the
// product-media bulk importer.
type Service struct {
	db      *gorm.DB
	cache   *repository.RedisRepository
	auditor Auditor
	logger  *zap.Logger
}

func NewService(db *gorm.DB, cache *repository.RedisRepository, auditor Auditor, logger *zap.Logger) *Service {
	return &Service{db: db, cache: cache, auditor: auditor, logger: logger}
}

// CreateMessage stores a public contact-form submission with status "new".
func (s *Service) CreateMessage(ctx context.Context, name, email, subject, body string) (*models.ContactMessage, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(body) == "" {
		return nil, ErrEmptyMessage
	}

	msg := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Subject:   strings.TrimSpace(subject),
		Body:      strings.TrimSpace(body),
		Status:    "new",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}
	return msg, nil
}

func (s *Service) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var rows []models.ContactMessage
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return rows, nil
}

func (s *Service) UpdateMessageStatus(ctx context.Context, actorID, messageID, status string) (*models.ContactMessage, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	var msg models.ContactMessage
	if err := s.db.WithContext(ctx).Where("id = ?", messageID).First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to load contact message: %w", err)
	}

	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if err := s.db.WithContext(ctx).Model(&msg).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact message: %w", err)
	}
	msg.Status = status

	s.audit(actorID, "update_message_status", msg.ID, bson.M{"status": status})
	return &msg, nil
}

// ListRoles is read-only in this console; role assignment happens on the
// remote store side.
func (s *Service) ListRoles(ctx context.Context) ([]models.UserRole, error) {
	var rows []models.UserRole
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	return rows, nil
}

func (s *Service) audit(actorID, action, entityID string, data bson.M) {
	if s.auditor == nil {
		return
	}
	go func() {
		err := s.auditor.CreateAuditLog(context.Background(), &repository.AuditLog{
			Action:   action,
			Actor:    actorID,
			EntityID: entityID,
			Data:     data,
		})
		if err != nil {
			s.logger.Warn("failed to write admin audit log", zap.String("action", action), zap.Error(err))
		}
	}()
}

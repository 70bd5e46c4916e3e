package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/craftshop/pkg/models"
	"github.com/example/craftshop/pkg/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrEmptyBody        = errors.New("body must not be empty")
	ErrQuestionNotFound = errors.New("question not found")
)

// Service handles per-product review and Q&A threads.
type Service struct {
	db     *gorm.DB
	cache  *repository.RedisRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, cache *repository.RedisRepository, logger *zap.Logger) *Service {
	return &Service{db: db, cache: cache, logger: logger}
}

func (s *Service) ListReviews(ctx context.Context, productID string) ([]models.Review, error) {
	var rows []models.Review
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return rows, nil
}

func (s *Service) AddReview(ctx context.Context, productID, userID, author string, rating int, body string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	if strings.TrimSpace(author) == "" {
		author = "Anonymous"
	}

	review := &models.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		Author:    author,
		Rating:    rating,
		Body:      strings.TrimSpace(body),
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// The catalog's review-count overlay is now stale.
	if s.cache != nil {
		if err := s.cache.InvalidateCatalogOverlays(ctx); err != nil {
			s.logger.Warn("failed to invalidate review counts", zap.Error(err))
		}
	}
	return review, nil
}

func (s *Service) ListQuestions(ctx context.Context, productID string) ([]models.ProductQuestion, error) {
	var rows []models.ProductQuestion
	err := s.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_answers.created_at asc")
		}).
		Where("product_id = ?", productID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return rows, nil
}

func (s *Service) AddQuestion(ctx context.Context, productID, userID, author, body string) (*models.ProductQuestion, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	if strings.TrimSpace(author) == "" {
		author = "Anonymous"
	}

	question := &models.ProductQuestion{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		Author:    author,
		Body:      strings.TrimSpace(body),
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(question).Error; err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

func (s *Service) AddAnswer(ctx context.Context, questionID, userID, author, body string) (*models.ProductAnswer, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	if strings.TrimSpace(author) == "" {
		author = "Anonymous"
	}

	var question models.ProductQuestion
	if err := s.db.WithContext(ctx).Where("id = ?", questionID).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to load question: %w", err)
	}

	answer := &models.ProductAnswer{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		UserID:     userID,
		Author:     author,
		Body:       strings.TrimSpace(body),
		CreatedAt:  time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(answer).Error; err != nil {
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}
	return answer, nil
}

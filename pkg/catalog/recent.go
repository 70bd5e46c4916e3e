package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/craftshop/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recentlyViewedLimit = 8

// RecordView correlates a product view with the guest session. Repeat views
// refresh the timestamp instead of adding a row.
func (s *Service) RecordView(ctx context.Context, sessionID, productID string) error {
	if sessionID == "" || productID == "" {
		return nil
	}

	var existing models.RecentlyViewed
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&existing).Error
	if err == nil {
		return s.db.WithContext(ctx).
			Model(&existing).
			Update("viewed_at", time.Now()).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load recently viewed row: %w", err)
	}

	row := &models.RecentlyViewed{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ProductID: productID,
		ViewedAt:  time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// RecentlyViewed returns the session's latest views resolved against the
// static catalog, newest first. Rows for retired products are dropped.
func (s *Service) RecentlyViewed(ctx context.Context, sessionID string) ([]Product, error) {
	var rows []models.RecentlyViewed
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("viewed_at desc").
		Limit(recentlyViewedLimit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recently viewed: %w", err)
	}

	var out []Product
	for _, row := range rows {
		if p, err := ByID(row.ProductID); err == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

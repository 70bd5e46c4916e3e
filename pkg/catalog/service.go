package catalog

import (
	"context"
	"strings"

	"github.com/example/craftshop/pkg/models"
	"github.com/example/craftshop/pkg/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// slugAliases translates inconsistent labels found on remote media rows to
// canonical catalog slugs. A data-quality patch: media imported before the
// slug convention settled carries the old labels. TODO: backfill
// product_media.product_slug and retire this table.
var slugAliases = map[string]string{
	"terracotta-vase-long":    "terracotta-long-neck-vase",
	"indigo-quilt":            "indigo-block-print-quilt",
	"peacock-lamp-brass":      "brass-peacock-oil-lamp",
	"jute-basket":             "jute-coil-storage-basket",
	"channapatna-toys":        "channapatna-lacquer-toy-set",
	"mirror-cushion-kutch":    "kutch-mirror-work-cushion",
	"blue-pottery-bowl":       "blue-pottery-serving-bowl",
	"maheshwar-throw":         "handloom-cotton-throw",
	"dhokra-elephant":         "dhokra-elephant-figurine",
	"banana-runner":           "banana-fiber-table-runner",
	"kashmir-jewelry-box":     "walnut-wood-jewelry-box",
	"tarakasi-earrings":       "silver-filigree-earrings",
}

func canonicalSlug(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if canonical, ok := slugAliases[label]; ok {
		return canonical
	}
	return label
}

// Service overlays the static catalog with data held in the remote store:
// primary images from product_media and per-product review counts.
type Service struct {
	db     *gorm.DB
	cache  *repository.RedisRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, cache *repository.RedisRepository, logger *zap.Logger) *Service {
	return &Service{db: db, cache: cache, logger: logger}
}

// PrimaryImages resolves the slug -> image URL overlay, consulting the Redis
// cache first. Cache failures fall through to the database.
func (s *Service) PrimaryImages(ctx context.Context) (map[string]string, error) {
	if images, err := s.cache.GetPrimaryImages(ctx); err == nil && images != nil {
		return images, nil
	}

	var rows []models.ProductMedia
	if err := s.db.WithContext(ctx).
		Where("is_primary = ?", true).
		Order("sort_order asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	images := make(map[string]string, len(rows))
	for _, row := range rows {
		slug := canonicalSlug(row.ProductSlug)
		if _, seen := images[slug]; !seen {
			images[slug] = row.ImageURL
		}
	}

	if err := s.cache.CachePrimaryImages(ctx, images); err != nil {
		s.logger.Warn("failed to cache primary images", zap.Error(err))
	}
	return images, nil
}

// ReviewCounts returns review totals keyed by product id.
func (s *Service) ReviewCounts(ctx context.Context) (map[string]int64, error) {
	if counts, err := s.cache.GetReviewCounts(ctx); err == nil && counts != nil {
		return counts, nil
	}

	type row struct {
		ProductID string
		Count     int64
	}
	var rows []row
	if err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("product_id, count(*) as count").
		Group("product_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.ProductID] = r.Count
	}

	if err := s.cache.CacheReviewCounts(ctx, counts); err != nil {
		s.logger.Warn("failed to cache review counts", zap.Error(err))
	}
	return counts, nil
}

// Enrich overlays primary images onto a copy of the given products. Overlay
// failures degrade to the static catalog data, never to an error.
func (s *Service) Enrich(ctx context.Context, products []Product) []Product {
	images, err := s.PrimaryImages(ctx)
	if err != nil {
		s.logger.Warn("primary image overlay unavailable", zap.Error(err))
		return products
	}

	out := make([]Product, len(products))
	copy(out, products)
	for i := range out {
		if url, ok := images[out[i].Slug]; ok && url != "" {
			out[i].Image = url
		}
	}
	return out
}

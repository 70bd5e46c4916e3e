package admin

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/example/craftshop/pkg/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ImportReport summarizes a media CSV import. Row numbers in Errors are
// 1-based and count the header.
type ImportReport struct {
	Inserted  int      `json:"inserted"`
	Skipped   int      `json:"skipped"`
	RowErrors []string `json:"row_errors,omitempty"`
}

// ImportMediaCSV bulk-loads product_media rows from CSV with columns
// product_slug,image_url,is_primary,sort_order. Invalid rows are skipped and
// reported; valid rows are inserted in one batch.
func (s *Service) ImportMediaCSV(ctx context.Context, actorID string, r io.Reader) (*ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	report := &ImportReport{}
	var rows []models.ProductMedia
	now := time.Now()
	line := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			report.Skipped++
			report.RowErrors = append(report.RowErrors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}

		// Header row is optional.
		if line == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "product_slug") {
			continue
		}

		row, err := parseMediaRow(record)
		if err != nil {
			report.Skipped++
			report.RowErrors = append(report.RowErrors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		row.ID = uuid.NewString()
		row.CreatedAt = now
		row.UpdatedAt = now
		rows = append(rows, row)
	}

	if len(rows) > 0 {
		if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to insert media rows: %w", err)
		}
		report.Inserted = len(rows)

		// New primary images make the cached catalog overlay stale.
		if s.cache != nil {
			if err := s.cache.InvalidateCatalogOverlays(ctx); err != nil {
				s.logger.Warn("failed to invalidate catalog overlays", zap.Error(err))
			}
		}
	}

	s.audit(actorID, "import_product_media", "", bson.M{
		"inserted": report.Inserted,
		"skipped":  report.Skipped,
	})
	return report, nil
}

func parseMediaRow(record []string) (models.ProductMedia, error) {
	if len(record) < 2 {
		return models.ProductMedia{}, fmt.Errorf("expected at least 2 columns, got %d", len(record))
	}

	slug := strings.TrimSpace(record[0])
	url := strings.TrimSpace(record[1])
	if slug == "" {
		return models.ProductMedia{}, fmt.Errorf("empty product_slug")
	}
	if url == "" {
		return models.ProductMedia{}, fmt.Errorf("empty image_url")
	}

	row := models.ProductMedia{ProductSlug: slug, ImageURL: url}

	if len(record) > 2 {
		switch strings.ToLower(strings.TrimSpace(record[2])) {
		case "true", "1", "yes":
			row.IsPrimary = true
		case "", "false", "0", "no":
		default:
			return models.ProductMedia{}, fmt.Errorf("bad is_primary value %q", record[2])
		}
	}
	if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
		order, err := strconv.Atoi(strings.TrimSpace(record[3]))
		if err != nil {
			return models.ProductMedia{}, fmt.Errorf("bad sort_order value %q", record[3])
		}
		row.SortOrder = order
	}
	return row, nil
}

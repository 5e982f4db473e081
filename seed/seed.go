// Package seed loads the bundled property dataset on first startup.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"real-estate-api/images"
	"real-estate-api/models"
)

type Options struct {
	FilePath          string
	FallbackImage     string
	WebRoot           string
	ValidateImages    bool
	MaxParallelChecks int
	HeadTimeout       time.Duration
}

// Run inserts the seed properties when the table is empty. Image URLs are
// validated with bounded parallelism before insert; broken ones fall back to
// the placeholder.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	var count int64
	if err := db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting properties: %w", err)
	}
	if count > 0 {
		slog.Info("Properties already exist, skipping seed")
		return nil
	}

	data, err := os.ReadFile(opts.FilePath)
	if err != nil {
		return fmt.Errorf("reading seed file %s: %w", opts.FilePath, err)
	}

	var items []models.Property
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parsing seed file: %w", err)
	}
	if len(items) == 0 {
		slog.Warn("Seed file is empty", "path", opts.FilePath)
		return nil
	}

	props := make([]*models.Property, 0, len(items))
	for i := range items {
		p := &items[i]
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		if p.ImageUrls == nil {
			p.ImageUrls = []string{}
		}
		if p.Address == "" {
			if p.Location != "" {
				p.Address = p.Location
			} else {
				p.Address = p.City
			}
		}
		if p.Status == "" {
			p.Status = p.ListingType.DefaultStatus()
		}
		props = append(props, p)
	}

	if opts.ValidateImages {
		slog.Info("Validating images for seed properties", "count", len(props))
		checker := images.NewChecker(opts.WebRoot, opts.HeadTimeout)
		checker.NormalizeAll(ctx, props, opts.FallbackImage, int64(opts.MaxParallelChecks))
	}

	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("inserting seed properties: %w", err)
	}
	slog.Info("Seeded properties", "count", len(items))
	return nil
}

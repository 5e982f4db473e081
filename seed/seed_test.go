package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"real-estate-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Property{}, &models.Favorite{}))
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "properties-seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSeedsEmptyTable(t *testing.T) {
	db := newTestDB(t)

	webRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(webRoot, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(webRoot, "images", "placeholder-property.webp"), []byte("x"), 0o644))

	path := writeSeedFile(t, `[
		{"title":"Seeded Rent","price":55000,"city":"Lahore","listingType":"Rent",
		 "imageUrls":["https://0.0.0.0:1/broken.jpg"]},
		{"title":"Seeded Sale","price":100,"location":"Clifton","city":"Karachi","listingType":"Sale"}
	]`)

	err := Run(context.Background(), db, Options{
		FilePath:          path,
		FallbackImage:     "/images/placeholder-property.webp",
		WebRoot:           webRoot,
		ValidateImages:    true,
		MaxParallelChecks: 2,
		HeadTimeout:       500 * time.Millisecond,
	})
	require.NoError(t, err)

	var props []models.Property
	require.NoError(t, db.Order("title").Find(&props).Error)
	require.Len(t, props, 2)

	rent := props[0]
	assert.Equal(t, "Seeded Rent", rent.Title)
	assert.Equal(t, "For Rent", rent.Status)
	assert.Equal(t, "Lahore", rent.Address)
	// every image was broken, so the fallback takes over
	assert.Equal(t, []string{"/images/placeholder-property.webp"}, []string(rent.ImageUrls))
	assert.Equal(t, "/images/placeholder-property.webp", rent.ThumbnailUrl)

	sale := props[1]
	assert.Equal(t, "For Sale", sale.Status)
	assert.Equal(t, "Clifton", sale.Address)
	assert.NotEqual(t, uuid.Nil, sale.ID)
}

func TestRunSkipsWhenPropertiesExist(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Property{
		ID: uuid.New(), Title: "Existing", ImageUrls: []string{},
	}).Error)

	path := writeSeedFile(t, `[{"title":"Should Not Appear","price":1}]`)

	err := Run(context.Background(), db, Options{FilePath: path, FallbackImage: "/x.webp"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Property{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRunMissingFileReturnsError(t *testing.T) {
	db := newTestDB(t)
	err := Run(context.Background(), db, Options{FilePath: "does-not-exist.json"})
	assert.Error(t, err)
}

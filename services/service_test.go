package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"real-estate-api/config"
	"real-estate-api/dto"
	"real-estate-api/models"
	"real-estate-api/utils"
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

func newTestTokens() *utils.TokenManager {
	cfg := &config.Config{}
	cfg.JWT.Key = "test-signing-key"
	cfg.JWT.Issuer = "real-estate-api"
	cfg.JWT.Audience = "real-estate-client"
	cfg.JWT.ExpiresMinutes = 60
	return utils.NewTokenManager(cfg)
}

func createProperty(t *testing.T, svc *PropertyService, title string, price float64, bedrooms int) dto.PropertyDto {
	t.Helper()

	created, err := svc.Create(dto.CreatePropertyRequest{
		Title:       title,
		Description: "test listing",
		Price:       price,
		Location:    "Gulshan",
		City:        "Karachi",
		ListingType: "Sale",
		Bedrooms:    bedrooms,
		Bathrooms:   2,
		ImageUrls:   []string{"https://example.com/a.jpg"},
	})
	require.NoError(t, err)
	return *created
}

package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"real-estate-api/dto"
	"real-estate-api/models"
)

type FavoriteService struct {
	DB *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{DB: db}
}

// Add bookmarks a property for a user. Adding an existing favorite is a
// no-op success; only an unknown property returns false.
func (s *FavoriteService) Add(userID, propertyID uuid.UUID) (bool, error) {
	var prop models.Property
	if err := s.DB.First(&prop, "id = ?", propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	var existing models.Favorite
	err := s.DB.First(&existing, "user_id = ? AND property_id = ?", userID, propertyID).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fav := models.Favorite{UserID: userID, PropertyID: propertyID}
	if err := s.DB.Create(&fav).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes a favorite. Returns false when no such favorite exists.
func (s *FavoriteService) Remove(userID, propertyID uuid.UUID) (bool, error) {
	result := s.DB.Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List returns the user's favorited properties in the order they were added.
func (s *FavoriteService) List(userID uuid.UUID) ([]dto.PropertyDto, error) {
	var props []models.Property
	err := s.DB.Model(&models.Property{}).
		Joins("JOIN favorites ON favorites.property_id = properties.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at").
		Find(&props).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.PropertyDto, 0, len(props))
	for _, p := range props {
		d := dto.FromProperty(p)
		d.IsFavorite = true
		dtos = append(dtos, d)
	}
	return dtos, nil
}

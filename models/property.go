package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ListingType string

const (
	ListingSale ListingType = "Sale"
	ListingRent ListingType = "Rent"
)

// DefaultStatus is the listing status label used when none was supplied.
func (t ListingType) DefaultStatus() string {
	if t == ListingRent {
		return "For Rent"
	}
	return "For Sale"
}

type Property struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string                      `gorm:"not null" json:"title"`
	Description  string                      `json:"description"`
	Price        float64                     `gorm:"index" json:"price"`
	Address      string                      `json:"address"`
	Location     string                      `json:"location"`
	City         string                      `gorm:"index" json:"city"`
	ListingType  ListingType                 `json:"listingType"`
	Bedrooms     int                         `json:"bedrooms"`
	Bathrooms    int                         `json:"bathrooms"`
	CarSpots     int                         `json:"carSpots"`
	SizeLabel    string                      `json:"sizeLabel"`
	AreaLabel    string                      `json:"areaLabel"`
	Status       string                      `json:"status"`
	ThumbnailUrl string                      `json:"thumbnailUrl"`
	ImageUrls    datatypes.JSONSlice[string] `json:"imageUrls"`
	Lat          *float64                    `json:"lat,omitempty"`
	Lng          *float64                    `json:"lng,omitempty"`
	PropertyType string                      `gorm:"index" json:"propertyType"`

	FavoritedBy []Favorite `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Property) TableName() string {
	return "properties"
}

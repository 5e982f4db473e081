package dto

import (
	"strings"

	"github.com/google/uuid"

	"real-estate-api/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type PropertyDto struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	Location     string    `json:"location"`
	City         string    `json:"city"`
	Price        float64   `json:"price"`
	ListingType  string    `json:"listingType"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	CarSpots     int       `json:"carSpots"`
	SizeLabel    string    `json:"sizeLabel"`
	AreaLabel    string    `json:"areaLabel"`
	Status       string    `json:"status"`
	ThumbnailUrl string    `json:"thumbnailUrl"`
	ImageUrls    []string  `json:"imageUrls"`
	IsFavorite   bool      `json:"isFavorite"`
	Lat          *float64  `json:"lat,omitempty"`
	Lng          *float64  `json:"lng,omitempty"`
	PropertyType string    `json:"propertyType"`
}

// FromProperty maps an entity to its DTO. The display location falls back to
// the address when no location was recorded.
func FromProperty(p models.Property) PropertyDto {
	location := p.Address
	if p.Location != "" {
		location = p.Location + ", " + p.City
	}

	urls := []string(p.ImageUrls)
	if urls == nil {
		urls = []string{}
	}

	return PropertyDto{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Address:      p.Address,
		Location:     location,
		City:         p.City,
		Price:        p.Price,
		ListingType:  string(p.ListingType),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		CarSpots:     p.CarSpots,
		SizeLabel:    p.SizeLabel,
		AreaLabel:    p.AreaLabel,
		Status:       p.Status,
		ThumbnailUrl: p.ThumbnailUrl,
		ImageUrls:    urls,
		Lat:          p.Lat,
		Lng:          p.Lng,
		PropertyType: p.PropertyType,
	}
}

type CreatePropertyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Address      string   `json:"address"`
	Location     string   `json:"location"`
	City         string   `json:"city"`
	ListingType  string   `json:"listingType"`
	PropertyType string   `json:"propertyType"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	CarSpots     int      `json:"carSpots"`
	SizeLabel    string   `json:"sizeLabel"`
	AreaLabel    string   `json:"areaLabel"`
	Status       string   `json:"status"`
	ThumbnailUrl string   `json:"thumbnailUrl"`
	ImageUrls    []string `json:"imageUrls"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// UpdatePropertyRequest overwrites every mutable field; there are no partial
// patch semantics.
type UpdatePropertyRequest = CreatePropertyRequest

// PropertyQuery carries the filter, sort and pagination parameters of the
// list endpoint.
type PropertyQuery struct {
	Q         string
	City      string
	Type      string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	Bathrooms *int
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Normalize coerces the page to 1-based and clamps the page size to the
// configured maximum.
func (p *PropertyQuery) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	p.SortBy = strings.ToLower(p.SortBy)
	p.SortOrder = strings.ToLower(p.SortOrder)
}

type SearchPropertyRequest struct {
	Title     string   `json:"title"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	MinPrice  *float64 `json:"minPrice"`
	MaxPrice  *float64 `json:"maxPrice"`
	Bedrooms  *int     `json:"bedrooms"`
	Bathrooms *int     `json:"bathrooms"`
}

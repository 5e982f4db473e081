package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"real-estate-api/dto"
	"real-estate-api/images"
	"real-estate-api/models"
)

type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{DB: db}
}

func (s *PropertyService) GetAll() ([]dto.PropertyDto, error) {
	var props []models.Property
	if err := s.DB.Find(&props).Error; err != nil {
		return nil, err
	}

	dtos := make([]dto.PropertyDto, 0, len(props))
	for _, p := range props {
		dtos = append(dtos, dto.FromProperty(p))
	}
	return dtos, nil
}

// List returns one page of matching properties plus the total match count.
// When userID is set, each returned item is annotated with whether that user
// has favorited it, via a single batched lookup.
func (s *PropertyService) List(q dto.PropertyQuery, userID *uuid.UUID) ([]dto.PropertyDto, int64, error) {
	q.Normalize()

	var total int64
	if err := s.applyListFilters(s.DB.Model(&models.Property{}), q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var props []models.Property
	err := s.applyListFilters(s.DB.Model(&models.Property{}), q).
		Order(sortClause(q.SortBy, q.SortOrder)).
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&props).Error
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.PropertyDto, 0, len(props))
	for _, p := range props {
		dtos = append(dtos, dto.FromProperty(p))
	}

	if userID != nil && len(dtos) > 0 {
		favSet, err := s.favoriteIDs(*userID)
		if err != nil {
			return nil, 0, err
		}
		for i := range dtos {
			dtos[i].IsFavorite = favSet[dtos[i].ID]
		}
	}
	return dtos, total, nil
}

func (s *PropertyService) applyListFilters(tx *gorm.DB, q dto.PropertyQuery) *gorm.DB {
	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(address) LIKE ? OR LOWER(city) LIKE ?", like, like, like)
	}
	if q.City != "" {
		tx = tx.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(q.City)+"%")
	}
	if q.Type != "" {
		tx = tx.Where("property_type = ?", q.Type)
	}
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}
	if q.Bedrooms != nil {
		tx = tx.Where("bedrooms >= ?", *q.Bedrooms)
	}
	if q.Bathrooms != nil {
		tx = tx.Where("bathrooms >= ?", *q.Bathrooms)
	}
	return tx
}

// sortClause maps the requested sort key and direction onto an ORDER BY.
// Unrecognized keys fall back to price; anything but "asc" means descending.
func sortClause(sortBy, sortOrder string) string {
	column := "price"
	switch sortBy {
	case "title":
		column = "title"
	case "bedrooms":
		column = "bedrooms"
	}

	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

func (s *PropertyService) favoriteIDs(userID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	err := s.DB.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("property_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (s *PropertyService) GetByID(id uuid.UUID, userID *uuid.UUID) (*dto.PropertyDto, error) {
	var prop models.Property
	if err := s.DB.First(&prop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	result := dto.FromProperty(prop)

	if userID != nil {
		var count int64
		err := s.DB.Model(&models.Favorite{}).
			Where("user_id = ? AND property_id = ?", *userID, id).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		result.IsFavorite = count > 0
	}
	return &result, nil
}

func (s *PropertyService) Create(req dto.CreatePropertyRequest) (*dto.PropertyDto, error) {
	prop := propertyFromRequest(uuid.New(), req)
	if err := s.DB.Create(&prop).Error; err != nil {
		return nil, err
	}
	result := dto.FromProperty(prop)
	return &result, nil
}

// Update overwrites every field of an existing property. Returns false when
// the id is unknown.
func (s *PropertyService) Update(id uuid.UUID, req dto.UpdatePropertyRequest) (bool, error) {
	var existing models.Property
	if err := s.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	prop := propertyFromRequest(id, req)
	if err := s.DB.Save(&prop).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a property and its favorite rows. Returns false when the id
// is unknown.
func (s *PropertyService) Delete(id uuid.UUID) (bool, error) {
	var existing models.Property
	if err := s.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.DB.Where("property_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
		return false, err
	}
	if err := s.DB.Delete(&models.Property{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Search returns all matches for an ad-hoc filter set, unpaginated.
func (s *PropertyService) Search(req dto.SearchPropertyRequest) ([]dto.PropertyDto, error) {
	tx := s.DB.Model(&models.Property{})

	if req.Title != "" {
		tx = tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(req.Title)+"%")
	}
	if req.Address != "" {
		tx = tx.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(req.Address)+"%")
	}
	if req.City != "" {
		tx = tx.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(req.City)+"%")
	}
	if req.MinPrice != nil {
		tx = tx.Where("price >= ?", *req.MinPrice)
	}
	if req.MaxPrice != nil {
		tx = tx.Where("price <= ?", *req.MaxPrice)
	}
	if req.Bedrooms != nil {
		tx = tx.Where("bedrooms >= ?", *req.Bedrooms)
	}
	if req.Bathrooms != nil {
		tx = tx.Where("bathrooms >= ?", *req.Bathrooms)
	}

	var props []models.Property
	if err := tx.Find(&props).Error; err != nil {
		return nil, err
	}

	dtos := make([]dto.PropertyDto, 0, len(props))
	for _, p := range props {
		dtos = append(dtos, dto.FromProperty(p))
	}
	return dtos, nil
}

// propertyFromRequest builds the entity, deriving status, address and
// thumbnail when the request left them blank.
func propertyFromRequest(id uuid.UUID, req dto.CreatePropertyRequest) models.Property {
	listingType := models.ListingType(req.ListingType)
	if listingType != models.ListingRent {
		listingType = models.ListingSale
	}

	status := req.Status
	if status == "" {
		status = listingType.DefaultStatus()
	}

	address := req.Address
	if address == "" {
		if req.Location != "" {
			address = req.Location
		} else {
			address = req.City
		}
	}

	imageUrls := images.CleanURLs(req.ImageUrls)

	thumbnail := req.ThumbnailUrl
	if thumbnail == "" && len(imageUrls) > 0 {
		thumbnail = imageUrls[0]
	}

	return models.Property{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Address:      address,
		Location:     req.Location,
		City:         req.City,
		ListingType:  listingType,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		CarSpots:     req.CarSpots,
		SizeLabel:    req.SizeLabel,
		AreaLabel:    req.AreaLabel,
		Status:       status,
		ThumbnailUrl: thumbnail,
		ImageUrls:    imageUrls,
		Lat:          req.Lat,
		Lng:          req.Lng,
		PropertyType: req.PropertyType,
	}
}

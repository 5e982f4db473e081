package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-api/dto"
)

func TestListPagesAndSortsByPriceAsc(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)

	createProperty(t, svc, "B House", 2_000_000, 3)
	createProperty(t, svc, "A House", 1_000_000, 2)
	createProperty(t, svc, "C House", 3_000_000, 4)

	items, total, err := svc.List(dto.PropertyQuery{
		Page: 1, PageSize: 2, SortBy: "price", SortOrder: "asc",
	}, nil)
	require.NoError(t, err)

	assert.EqualValues(t, 3, total)
	require.Len(t, items, 2)
	assert.Equal(t, "A House", items[0].Title)
	assert.Equal(t, "B House", items[1].Title)
	assert.LessOrEqual(t, items[0].Price, items[1].Price)
}

func TestListDefaultsToPriceDesc(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)

	createProperty(t, svc, "Cheap", 100, 1)
	createProperty(t, svc, "Expensive", 900, 1)

	items, _, err := svc.List(dto.PropertyQuery{SortBy: "nonsense"}, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Expensive", items[0].Title)
}

func TestListClampsPageSize(t *testing.T) {
	q := dto.PropertyQuery{Page: -3, PageSize: 500}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 50, q.PageSize)

	q = dto.PropertyQuery{}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)
}

func TestListOutOfRangePageReturnsEmptyWithTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)

	createProperty(t, svc, "Only One", 500, 2)

	items, total, err := svc.List(dto.PropertyQuery{Page: 9, PageSize: 10}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Empty(t, items)
}

func TestListFilterScenario(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)

	target := createProperty(t, svc, "Target Home", 1_000_000, 2)
	createProperty(t, svc, "Too Cheap", 100_000, 2)
	createProperty(t, svc, "Too Few Bedrooms", 800_000, 1)
	createProperty(t, svc, "Pricier Match", 2_000_000, 3)

	minPrice := 500000.0
	bedrooms := 2
	items, total, err := svc.List(dto.PropertyQuery{
		MinPrice:  &minPrice,
		Bedrooms:  &bedrooms,
		SortBy:    "price",
		SortOrder: "asc",
		Page:      1,
		PageSize:  10,
	}, nil)
	require.NoError(t, err)

	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, target.ID, items[0].ID)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Price, items[i].Price)
	}
}

func TestListTextFilterIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)

	createProperty(t, svc, "Seaside Villa", 500, 2)
	createProperty(t, svc, "Mountain Cabin", 700, 2)

	items, total, err := svc.List(dto.PropertyQuery{Q: "SEASIDE"}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Seaside Villa", items[0].Title)
}

func TestListAnnotatesFavorites(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)
	favSvc := NewFavoriteService(db)

	favorited := createProperty(t, svc, "Bookmarked", 100, 1)
	createProperty(t, svc, "Not Bookmarked", 200, 1)

	userID := uuid.New()
	added, err := favSvc.Add(userID, favorited.ID)
	require.NoError(t, err)
	require.True(t, added)

	items, _, err := svc.List(dto.PropertyQuery{SortBy: "price", SortOrder: "asc"}, &userID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].IsFavorite)
	assert.False(t, items[1].IsFavorite)
}

func TestCreateRoundTripPreservesFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)

	created, err := svc.Create(dto.CreatePropertyRequest{
		Title:       "Round Trip",
		Price:       1234.5,
		City:        "Lahore",
		ListingType: "Rent",
		ImageUrls:   []string{" https://example.com/a.jpg ", "https://example.com/a.jpg", "", "https://example.com/b.jpg"},
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(created.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	assert.Equal(t, "Round Trip", fetched.Title)
	assert.Equal(t, 1234.5, fetched.Price)
	assert.Equal(t, []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}, fetched.ImageUrls)
	assert.Equal(t, "For Rent", fetched.Status)
	assert.Equal(t, "https://example.com/a.jpg", fetched.ThumbnailUrl)
}

func TestCreateWithNoImagesKeepsEmptyList(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)

	created, err := svc.Create(dto.CreatePropertyRequest{Title: "Bare", Price: 1})
	require.NoError(t, err)

	fetched, err := svc.GetByID(created.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.NotNil(t, fetched.ImageUrls)
	assert.Empty(t, fetched.ImageUrls)
}

func TestUpdateOverwritesAllFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)

	created := createProperty(t, svc, "Before", 100, 2)

	updated, err := svc.Update(created.ID, dto.UpdatePropertyRequest{
		Title:       "After",
		Price:       999,
		City:        "Islamabad",
		ListingType: "Rent",
	})
	require.NoError(t, err)
	assert.True(t, updated)

	fetched, err := svc.GetByID(created.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "After", fetched.Title)
	assert.Equal(t, float64(999), fetched.Price)
	assert.Equal(t, "Islamabad", fetched.City)
	assert.Empty(t, fetched.ImageUrls)
}

func TestUpdateUnknownIDReturnsFalse(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)

	updated, err := svc.Update(uuid.New(), dto.UpdatePropertyRequest{Title: "X"})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestDeleteCascadesFavorites(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)
	favSvc := NewFavoriteService(db)

	created := createProperty(t, svc, "Doomed", 100, 2)
	userID := uuid.New()
	_, err := favSvc.Add(userID, created.ID)
	require.NoError(t, err)

	deleted, err := svc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	favorites, err := favSvc.List(userID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	fetched, err := svc.GetByID(created.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestSearchMatchesUnpaginated(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db)

	createProperty(t, svc, "Harbor View", 100, 2)
	createProperty(t, svc, "Garden Home", 200, 2)

	matches, err := svc.Search(dto.SearchPropertyRequest{Title: "harbor"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Harbor View", matches[0].Title)
}

package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-api/models"
)

func TestAddFavoriteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	propSvc := NewPropertyService(db)
	svc := NewFavoriteService(db)

	prop := createProperty(t, propSvc, "Bookmarkable", 100, 2)
	userID := uuid.New()

	added, err := svc.Add(userID, prop.ID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.Add(userID, prop.ID)
	require.NoError(t, err)
	assert.True(t, added)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, prop.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddFavoriteUnknownPropertyReturnsFalse(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)

	added, err := svc.Add(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, added)
}

func TestRemoveFavoriteNotFoundReturnsFalse(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)

	removed, err := svc.Remove(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveFavoriteDeletesRow(t *testing.T) {
	db := newTestDB(t)
	propSvc := NewPropertyService(db)
	svc := NewFavoriteService(db)

	prop := createProperty(t, propSvc, "Bookmarkable", 100, 2)
	userID := uuid.New()

	_, err := svc.Add(userID, prop.ID)
	require.NoError(t, err)

	removed, err := svc.Remove(userID, prop.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Remove(userID, prop.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListFavoritesReturnsOnlyOwn(t *testing.T) {
	db := newTestDB(t)
	propSvc := NewPropertyService(db)
	svc := NewFavoriteService(db)

	mine := createProperty(t, propSvc, "Mine", 100, 2)
	theirs := createProperty(t, propSvc, "Theirs", 200, 2)

	me := uuid.New()
	other := uuid.New()

	_, err := svc.Add(me, mine.ID)
	require.NoError(t, err)
	_, err = svc.Add(other, theirs.ID)
	require.NoError(t, err)

	favorites, err := svc.List(me)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, mine.ID, favorites[0].ID)
	assert.True(t, favorites[0].IsFavorite)
}

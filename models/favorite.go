package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a pure join row linking a user to a property they bookmarked.
// The (user, property) pair is the primary key, so a favorite can exist at
// most once.
type Favorite struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	PropertyID uuid.UUID `gorm:"type:uuid;primaryKey" json:"propertyId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Favorite) TableName() string {
	return "favorites"
}

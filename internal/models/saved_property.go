package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedProperty is a persisted favorite. The property column holds a JSON
// snapshot of the listing at save time, not a live reference; the pair
// (user_id, property_id) is unique.
type SavedProperty struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"userId"`
	PropertyID int       `db:"property_id" json:"propertyId"`
	Property   Property  `db:"property" json:"property"`
	SavedAt    time.Time `db:"saved_at" json:"savedAt"`
}

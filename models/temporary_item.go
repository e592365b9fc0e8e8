package models

import "time"

// A staged meal selection not yet committed to the log. Promoted into Meal
// rows by move-to-meals, or consumed when an equivalent composition is logged
// directly. The "Ingredients" slot stages recipe ingredients.
type TemporaryItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	CompositionID uint      `gorm:"not null" json:"composition_id"`
	Date          time.Time `gorm:"type:date;not null" json:"date"`
	Type          string    `gorm:"type:varchar(50);not null" json:"type"`
}

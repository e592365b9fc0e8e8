package models

import "time"

// A user-authored dish. The embedded vector is the sum of the ingredient
// compositions' full profiles (whole entries, not per-serving scaled).
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Source      string    `gorm:"type:varchar(255)" json:"source,omitempty"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	ImageURL    string    `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	IsPublished bool      `gorm:"default:false" json:"is_published"`

	Nutrients `gorm:"embedded"`
}

type Ingredient struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	RecipeID      uint `gorm:"index;not null" json:"recipe_id"`
	CompositionID uint `gorm:"not null" json:"composition_id"`
}

type RecipeStep struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"index;not null" json:"recipe_id"`
	Text     string `gorm:"type:varchar(255);not null" json:"text"`
}

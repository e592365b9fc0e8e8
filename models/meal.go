package models

import "time"

// MealType is the closed meal-slot enumeration. Anything unrecognized folds
// into Snacks/Other.
type MealType string

const (
	Breakfast   MealType = "Breakfast"
	Lunch       MealType = "Lunch"
	Dinner      MealType = "Dinner"
	SnacksOther MealType = "Snacks/Other"
)

func ParseMealType(s string) MealType {
	switch MealType(s) {
	case Breakfast, Lunch, Dinner:
		return MealType(s)
	default:
		return SnacksOther
	}
}

// One logged entry: user ate composition on date, in a meal slot.
// Never updated; deleted individually by id.
type Meal struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	CompositionID uint      `gorm:"not null" json:"composition_id"`
	Date          time.Time `gorm:"type:date;index;not null" json:"date"`
	Type          string    `gorm:"type:varchar(50);not null" json:"type"`
}

package models

import "time"

// Append-only weight samples: one row at signup, one on every weight-changing
// profile edit.
type WeightHistory struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"index;not null" json:"user_id"`
	Weight int       `json:"weight"`
	Date   time.Time `gorm:"type:date" json:"date"`
}

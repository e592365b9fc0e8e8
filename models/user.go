package models

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FullName     string `gorm:"type:varchar(255);not null" json:"full_name"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	Age          int     `gorm:"not null" json:"age"`
	Weight       int     `gorm:"not null" json:"weight"` // kg
	WeightTarget int     `gorm:"not null" json:"weight_target"`
	Height       int     `gorm:"not null" json:"height"` // cm
	Gender       string  `gorm:"type:varchar(50);not null" json:"gender"`
	Activity     string  `gorm:"type:varchar(255)" json:"activity"`
	BMI          float64 `json:"bmi"`
	ImageURL     string  `gorm:"type:varchar(255)" json:"image_url,omitempty"`

	// Derived from (age, weight, height, gender, activity); recomputed on
	// every metric edit, never left stale.
	Goal          float64 `json:"goal"`
	DailyCarbs    float64 `json:"daily_carbs"`
	DailyFat      float64 `json:"daily_fat"`
	DailyProteins float64 `json:"daily_proteins"`
}

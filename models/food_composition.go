package models

// Nutrients is the fixed 21-field nutrient vector shared by compositions and
// recipes. Source columns are nullable; a missing value is stored as 0, which
// is exactly how every aggregation treats it.
type Nutrients struct {
	Water         float64 `json:"water"`
	Energy        float64 `json:"energy"` // stored in millical (display unit x1000)
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbs         float64 `json:"carbs"`
	Fiber         float64 `json:"fiber"`
	Ash           float64 `json:"ash"`
	Calcium       float64 `json:"calcium"`
	Phosphorus    float64 `json:"phosphorus"`
	Iron          float64 `json:"iron"`
	Sodium        float64 `json:"sodium"`
	Potassium     float64 `json:"potassium"`
	Copper        float64 `json:"copper"`
	Zinc          float64 `json:"zinc"`
	Retinol       float64 `json:"retinol"`
	BetaCarotene  float64 `json:"beta_carotene"`
	TotalCarotene float64 `json:"total_carotene"`
	Thiamine      float64 `json:"thiamine"`
	Riboflavin    float64 `json:"riboflavin"`
	Niacin        float64 `json:"niacin"`
	VitaminC      float64 `json:"vitamin_c"`
}

// Add accumulates another vector field by field.
func (n *Nutrients) Add(o Nutrients) {
	n.Water += o.Water
	n.Energy += o.Energy
	n.Protein += o.Protein
	n.Fat += o.Fat
	n.Carbs += o.Carbs
	n.Fiber += o.Fiber
	n.Ash += o.Ash
	n.Calcium += o.Calcium
	n.Phosphorus += o.Phosphorus
	n.Iron += o.Iron
	n.Sodium += o.Sodium
	n.Potassium += o.Potassium
	n.Copper += o.Copper
	n.Zinc += o.Zinc
	n.Retinol += o.Retinol
	n.BetaCarotene += o.BetaCarotene
	n.TotalCarotene += o.TotalCarotene
	n.Thiamine += o.Thiamine
	n.Riboflavin += o.Riboflavin
	n.Niacin += o.Niacin
	n.VitaminC += o.VitaminC
}

// Scale returns a copy with every field multiplied by factor.
func (n Nutrients) Scale(factor float64) Nutrients {
	return Nutrients{
		Water:         n.Water * factor,
		Energy:        n.Energy * factor,
		Protein:       n.Protein * factor,
		Fat:           n.Fat * factor,
		Carbs:         n.Carbs * factor,
		Fiber:         n.Fiber * factor,
		Ash:           n.Ash * factor,
		Calcium:       n.Calcium * factor,
		Phosphorus:    n.Phosphorus * factor,
		Iron:          n.Iron * factor,
		Sodium:        n.Sodium * factor,
		Potassium:     n.Potassium * factor,
		Copper:        n.Copper * factor,
		Zinc:          n.Zinc * factor,
		Retinol:       n.Retinol * factor,
		BetaCarotene:  n.BetaCarotene * factor,
		TotalCarotene: n.TotalCarotene * factor,
		Thiamine:      n.Thiamine * factor,
		Riboflavin:    n.Riboflavin * factor,
		Niacin:        n.Niacin * factor,
		VitaminC:      n.VitaminC * factor,
	}
}

// A reference nutrient profile, typically per 100g of a named ingredient.
// Scaled serving-size copies are persisted as new rows with Code left empty.
type FoodComposition struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"type:varchar(50)" json:"code,omitempty"`
	Name   string `gorm:"type:varchar(255);not null;index" json:"name"`
	Source string `gorm:"type:varchar(255)" json:"source,omitempty"`

	Nutrients `gorm:"embedded"`

	EdiblePortion float64 `json:"edible_portion"` // fraction, carried over unscaled
	ServingSize   float64 `json:"serving_size"`   // grams, set on scaled copies
}

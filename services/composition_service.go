package services

import (
	"fmt"

	"github.com/NutriCall/nutri-call-backend/config"
	"github.com/NutriCall/nutri-call-backend/models"
	"github.com/NutriCall/nutri-call-backend/utils"

	"gorm.io/gorm"
)

func ListCompositions() ([]models.FoodComposition, error) {
	var compositions []models.FoodComposition
	err := config.DB.Find(&compositions).Error
	return compositions, err
}

type CompositionMatch struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SearchCompositions returns at most 5 case-insensitive substring matches.
func SearchCompositions(query string) ([]CompositionMatch, error) {
	var compositions []models.FoodComposition
	if err := config.DB.
		Where("name ILIKE ?", "%"+query+"%").
		Limit(5).
		Find(&compositions).Error; err != nil {
		return nil, err
	}
	if len(compositions) == 0 {
		return nil, fmt.Errorf("%w: no compositions match %q", utils.ErrNotFound, query)
	}

	matches := make([]CompositionMatch, 0, len(compositions))
	for _, c := range compositions {
		matches = append(matches, CompositionMatch{ID: c.ID, Name: c.Name})
	}
	return matches, nil
}

func findCompositionByName(name string) (*models.FoodComposition, error) {
	var composition models.FoodComposition
	err := config.DB.
		Where("name ILIKE ?", "%"+name+"%").
		First(&composition).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: no composition matches %q", utils.ErrNotFound, name)
		}
		return nil, err
	}
	return &composition, nil
}

// ScaleComposition derives a serving-size copy of the first composition whose
// name contains the query: every nutrient is multiplied by size/100, the
// edible portion is carried over untouched and the code is left empty. The
// copy is persisted so it can be logged or used in recipes like any other row.
func ScaleComposition(name string, size float64) (*models.FoodComposition, error) {
	src, err := findCompositionByName(name)
	if err != nil {
		return nil, err
	}

	factor := size / 100.0
	derived := models.FoodComposition{
		Name:          src.Name,
		Source:        src.Source,
		Nutrients:     src.Nutrients.Scale(factor),
		EdiblePortion: src.EdiblePortion,
		ServingSize:   size,
	}

	if err := config.DB.Create(&derived).Error; err != nil {
		return nil, err
	}
	return &derived, nil
}

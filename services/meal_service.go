package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/NutriCall/nutri-call-backend/config"
	"github.com/NutriCall/nutri-call-backend/models"
	"github.com/NutriCall/nutri-call-backend/utils"

	"gorm.io/gorm"
)

// MoveToMeals promotes today's staged items of one slot into the permanent
// log and clears them.
func MoveToMeals(userID uint, mealType string, today time.Time) ([]models.Meal, error) {
	var items []models.TemporaryItem
	if err := config.DB.
		Where("user_id = ? AND date = ? AND type = ?", userID, dayStart(today), mealType).
		Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no staged items for %s", utils.ErrNotFound, mealType)
	}

	meals := make([]models.Meal, 0, len(items))
	for _, item := range items {
		meal := models.Meal{
			UserID:        item.UserID,
			CompositionID: item.CompositionID,
			Date:          item.Date,
			Type:          item.Type,
		}
		if err := config.DB.Create(&meal).Error; err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}

	if err := config.DB.
		Where("user_id = ? AND date = ? AND type = ?", userID, dayStart(today), mealType).
		Delete(&models.TemporaryItem{}).Error; err != nil {
		return nil, err
	}

	return meals, nil
}

// AddMeals logs compositions directly and drops any equivalent staged items.
func AddMeals(userID uint, compositionIDs []uint, mealType string, today time.Time) ([]models.Meal, error) {
	meals := make([]models.Meal, 0, len(compositionIDs))
	for _, cid := range compositionIDs {
		meal := models.Meal{
			UserID:        userID,
			CompositionID: cid,
			Date:          dayStart(today),
			Type:          mealType,
		}
		if err := config.DB.Create(&meal).Error; err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}

	if err := config.DB.
		Where("user_id = ? AND date = ? AND type = ? AND composition_id IN ?",
			userID, dayStart(today), mealType, compositionIDs).
		Delete(&models.TemporaryItem{}).Error; err != nil {
		return nil, err
	}

	return meals, nil
}

type FoodCompositionDetail struct {
	Name    string  `json:"name"`
	Energy  float64 `json:"energy"`
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
}

type MealDetail struct {
	ID              uint                  `json:"id"`
	UserID          uint                  `json:"user_id"`
	CompositionID   uint                  `json:"composition_id"`
	Date            string                `json:"date"`
	Type            string                `json:"type"`
	FoodComposition FoodCompositionDetail `json:"food_composition"`
}

type MealSlot struct {
	Type        string       `json:"type"`
	Meals       []MealDetail `json:"meals"`
	TotalEnergy float64      `json:"total_energy"`
}

// MealsForToday groups the day's log into the four slots, each with its
// summed energy in display units.
func MealsForToday(userID uint, today time.Time) ([]MealSlot, error) {
	rows, err := mealsWithCompositions(config.DB, userID, today, today)
	if err != nil {
		return nil, err
	}
	return GroupMealsBySlot(rows), nil
}

func GroupMealsBySlot(rows []MealFood) []MealSlot {
	slots := []MealSlot{
		{Type: string(models.Breakfast), Meals: []MealDetail{}},
		{Type: string(models.Lunch), Meals: []MealDetail{}},
		{Type: string(models.Dinner), Meals: []MealDetail{}},
		{Type: string(models.SnacksOther), Meals: []MealDetail{}},
	}
	index := map[models.MealType]int{
		models.Breakfast:   0,
		models.Lunch:       1,
		models.Dinner:      2,
		models.SnacksOther: 3,
	}

	totals := make([]float64, len(slots))
	for _, r := range rows {
		i := index[models.ParseMealType(r.Meal.Type)]
		slots[i].Meals = append(slots[i].Meals, MealDetail{
			ID:            r.Meal.ID,
			UserID:        r.Meal.UserID,
			CompositionID: r.Meal.CompositionID,
			Date:          r.Meal.Date.Format(dateLayout),
			Type:          r.Meal.Type,
			FoodComposition: FoodCompositionDetail{
				Name:    r.Food.Name,
				Energy:  r.Food.Energy,
				Carbs:   r.Food.Carbs,
				Protein: r.Food.Protein,
				Fat:     r.Food.Fat,
			},
		})
		totals[i] += r.Food.Energy
	}
	for i := range slots {
		slots[i].TotalEnergy = displayEnergy(totals[i])
	}
	return slots
}

// DeleteMeal removes one log entry; a foreign or unknown id is NotFound.
func DeleteMeal(userID, mealID uint) error {
	var meal models.Meal
	err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: meal %d", utils.ErrNotFound, mealID)
		}
		return err
	}
	return config.DB.Delete(&meal).Error
}

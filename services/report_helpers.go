package services

import (
	"math"
	"time"

	"github.com/NutriCall/nutri-call-backend/models"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Stored energy is 1000x smaller than the display unit. Every report-facing
// energy quantity passes through displayEnergy exactly once, at the output
// boundary. Percentages are computed on raw values, so the factor cancels.
func displayEnergy(v float64) float64 { return round2(v / 1000) }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// pctOf guards the zero denominator: 0, never NaN.
func pctOf(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return round2(part / total * 100)
}

// startOfWeek returns the most recent Sunday on or before d; d itself when d
// is a Sunday. Weekly windows span this day plus the six that follow.
func startOfWeek(d time.Time) time.Time {
	return dayStart(d).AddDate(0, 0, -int(d.Weekday()))
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MealFood is one meal-log row joined to its composition.
type MealFood struct {
	Meal models.Meal
	Food models.FoodComposition
}

// mealsWithCompositions loads a user's meals in [from, to] (dates inclusive)
// together with their composition rows. Entries pointing at a missing
// composition are skipped, matching how the reports ignore them.
func mealsWithCompositions(db *gorm.DB, userID uint, from, to time.Time) ([]MealFood, error) {
	var meals []models.Meal
	if err := db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, dayStart(from), dayStart(to)).
		Order("date ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(meals))
	for _, m := range meals {
		ids = append(ids, m.CompositionID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var foods []models.FoodComposition
	if err := db.Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.FoodComposition, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	rows := make([]MealFood, 0, len(meals))
	for _, m := range meals {
		f, ok := byID[m.CompositionID]
		if !ok {
			continue
		}
		rows = append(rows, MealFood{Meal: m, Food: f})
	}
	return rows, nil
}

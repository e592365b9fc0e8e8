package services

import (
	"testing"
	"time"

	"github.com/NutriCall/nutri-call-backend/models"

	"github.com/stretchr/testify/assert"
)

// 2025-03-02 is a Sunday, 2025-03-05 a Wednesday.
var (
	testWeekStart = time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	testToday     = time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
)

func mf(date time.Time, mealType, name string, n models.Nutrients) MealFood {
	return MealFood{
		Meal: models.Meal{Date: date, Type: mealType},
		Food: models.FoodComposition{Name: name, Nutrients: n},
	}
}

func TestStartOfWeek(t *testing.T) {
	assert.Equal(t, testWeekStart, startOfWeek(testToday))
	// a Sunday maps onto itself
	assert.Equal(t, testWeekStart, startOfWeek(testWeekStart))
	// Saturday still belongs to the week that started six days earlier
	saturday := time.Date(2025, 3, 8, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, testWeekStart, startOfWeek(saturday))
}

func TestDisplayEnergy(t *testing.T) {
	assert.Equal(t, 350.0, displayEnergy(350000))
	assert.Equal(t, 0.35, displayEnergy(350.128))
	assert.Equal(t, 0.0, displayEnergy(0))
}

func TestPctOf(t *testing.T) {
	assert.Equal(t, 35.0, pctOf(350, 1000))
	assert.Equal(t, 33.33, pctOf(1, 3))
	assert.Equal(t, 0.0, pctOf(10, 0))
}

func TestBuildersAreIdempotent(t *testing.T) {
	rows := []MealFood{
		mf(testToday, "Breakfast", "Oatmeal", models.Nutrients{Energy: 350000, Carbs: 60, Fat: 6, Protein: 12}),
		mf(testToday, "Lunch", "Rice", models.Nutrients{Energy: 650000, Carbs: 85, Fat: 1, Protein: 8}),
		mf(testWeekStart.AddDate(0, 0, 1), "Dinner", "Soup", models.Nutrients{Energy: 400000, Water: 200}),
	}
	snapshot := make([]MealFood, len(rows))
	copy(snapshot, rows)

	daily1 := buildDailyCalories(2000000, rows[:2], rows, testWeekStart)
	daily2 := buildDailyCalories(2000000, rows[:2], rows, testWeekStart)
	assert.Equal(t, daily1, daily2)

	resume1 := buildWeeklyResume(rows)
	resume2 := buildWeeklyResume(rows)
	assert.Equal(t, resume1, resume2)

	eaten1 := buildFoodEaten(rows)
	eaten2 := buildFoodEaten(rows)
	assert.Equal(t, eaten1, eaten2)

	// builders read their input, never rewrite it
	assert.Equal(t, snapshot, rows)
}

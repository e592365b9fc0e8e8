package services

import (
	"testing"

	"github.com/NutriCall/nutri-call-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeeklyCalories(t *testing.T) {
	rows := []MealFood{
		mf(testWeekStart, "Breakfast", "Oatmeal", models.Nutrients{Energy: 1000000}),
		mf(testToday, "Dinner", "Soup", models.Nutrients{Energy: 2000000}),
	}

	resp := buildWeeklyCalories(2000000, rows)

	assert.Equal(t, 14000.0, resp.WeeklyGoal)
	assert.Equal(t, 3000.0, resp.WeeklyConsumed)
	assert.Equal(t, 11000.0, resp.Difference)
}

func TestBuildWeeklyCaloriesEmpty(t *testing.T) {
	resp := buildWeeklyCalories(0, nil)

	assert.Equal(t, 0.0, resp.WeeklyGoal)
	assert.Equal(t, 0.0, resp.WeeklyConsumed)
	assert.Equal(t, 0.0, resp.Difference)
}

func TestBuildWeeklyEaten(t *testing.T) {
	rows := []MealFood{
		mf(testToday, "Lunch", "Rice", models.Nutrients{Carbs: 40, Fat: 20, Protein: 10}),
		mf(testToday, "Dinner", "Egg", models.Nutrients{Carbs: 20, Protein: 10}),
	}

	resp := buildWeeklyEaten(rows)
	require.Len(t, resp.Items, 3)

	assert.Equal(t, "Carbohydrates", resp.Items[0].Name)
	assert.Equal(t, 60.0, resp.Items[0].Total)
	assert.Equal(t, 60.0, resp.Items[0].Percentage)
	assert.Equal(t, "Fats", resp.Items[1].Name)
	assert.Equal(t, 20.0, resp.Items[1].Percentage)
	assert.Equal(t, "Proteins", resp.Items[2].Name)
	assert.Equal(t, 20.0, resp.Items[2].Percentage)
}

func TestBuildWeeklyEatenEmpty(t *testing.T) {
	resp := buildWeeklyEaten(nil)
	require.Len(t, resp.Items, 3)
	for _, item := range resp.Items {
		assert.Equal(t, 0.0, item.Total)
		assert.Equal(t, 0.0, item.Percentage)
	}
}

func TestBuildWeeklyGraphCalories(t *testing.T) {
	rows := []MealFood{
		mf(testWeekStart.AddDate(0, 0, 1), "Lunch", "Rice", models.Nutrients{Energy: 500000}),
	}

	resp := buildWeeklyGraphCalories(2000000, rows, testWeekStart)
	require.Len(t, resp.Graph, 7)

	assert.Equal(t, "2025-03-02", resp.Graph[0].Date)
	assert.Equal(t, 0.0, resp.Graph[0].TotalEnergy)
	assert.Equal(t, 500.0, resp.Graph[1].TotalEnergy)
	assert.Equal(t, 25.0, resp.Graph[1].PercentageOfGoal)
	assert.Equal(t, "2025-03-08", resp.Graph[6].Date)
}

func TestBuildWeeklyGraphCaloriesZeroGoal(t *testing.T) {
	rows := []MealFood{
		mf(testWeekStart, "Lunch", "Rice", models.Nutrients{Energy: 500000}),
	}

	resp := buildWeeklyGraphCalories(0, rows, testWeekStart)
	assert.Equal(t, 500.0, resp.Graph[0].TotalEnergy)
	assert.Equal(t, 0.0, resp.Graph[0].PercentageOfGoal)
}

func TestBuildWeeklyResume(t *testing.T) {
	rows := []MealFood{
		mf(testToday, "Lunch", "Rice", models.Nutrients{Water: 50, Energy: 100, Protein: 30, Fat: 20}),
	}

	resp := buildWeeklyResume(rows)

	assert.Equal(t, 200.0, resp.TotalAll)
	assert.Equal(t, 25.0, resp.NutrientPercentage.Water)
	assert.Equal(t, 50.0, resp.NutrientPercentage.Energy)
	assert.Equal(t, 15.0, resp.NutrientPercentage.Protein)
	assert.Equal(t, 10.0, resp.NutrientPercentage.Fat)
	assert.Equal(t, 0.0, resp.NutrientPercentage.Carbs)
	assert.Equal(t, 0.0, resp.NutrientPercentage.VitaminC)
}

func TestBuildWeeklyResumeEmpty(t *testing.T) {
	resp := buildWeeklyResume(nil)

	assert.Equal(t, 0.0, resp.TotalAll)
	assert.Equal(t, 0.0, resp.NutrientPercentage.Energy)
	assert.Equal(t, 0.0, resp.NutrientPercentage.Water)
}

package services

import (
	"testing"

	"github.com/NutriCall/nutri-call-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailyCalories(t *testing.T) {
	todayRows := []MealFood{
		mf(testToday, "Breakfast", "Oatmeal", models.Nutrients{Energy: 350000}),
		mf(testToday, "Lunch", "Rice", models.Nutrients{Energy: 650000}),
	}
	weekRows := append([]MealFood{
		mf(testWeekStart.AddDate(0, 0, 1), "Dinner", "Soup", models.Nutrients{Energy: 400000}),
	}, todayRows...)

	resp := buildDailyCalories(2000000, todayRows, weekRows, testWeekStart)

	assert.Equal(t, 2000.0, resp.Goal)
	assert.Equal(t, 1000.0, resp.TotalCalToday)
	assert.Equal(t, 200.0, resp.Average)

	require.Len(t, resp.TodayCalories, 4)
	assert.Equal(t, "Breakfast", resp.TodayCalories[0].Type)
	assert.Equal(t, 350.0, resp.TodayCalories[0].Calories)
	assert.Equal(t, 35.0, resp.TodayCalories[0].Percentage)
	assert.Equal(t, 650.0, resp.TodayCalories[1].Calories)
	assert.Equal(t, 65.0, resp.TodayCalories[1].Percentage)
	assert.Equal(t, 0.0, resp.TodayCalories[2].Calories)
	assert.Equal(t, 0.0, resp.TodayCalories[3].Percentage)

	require.Len(t, resp.Graph, 7)
	assert.Equal(t, "2025-03-02", resp.Graph[0].Date)
	assert.Equal(t, 400.0, resp.Graph[1].Dinner)
	assert.Equal(t, 350.0, resp.Graph[3].Breakfast)
	assert.Equal(t, 650.0, resp.Graph[3].Lunch)
}

func TestBuildDailyCaloriesEmpty(t *testing.T) {
	resp := buildDailyCalories(0, nil, nil, testWeekStart)

	assert.Equal(t, 0.0, resp.Goal)
	assert.Equal(t, 0.0, resp.TotalCalToday)
	assert.Equal(t, 0.0, resp.Average)
	require.Len(t, resp.TodayCalories, 4)
	for _, tc := range resp.TodayCalories {
		assert.Equal(t, 0.0, tc.Calories)
		assert.Equal(t, 0.0, tc.Percentage)
	}
	require.Len(t, resp.Graph, 7)
}

func TestBuildDailyCaloriesUnknownSlot(t *testing.T) {
	rows := []MealFood{
		mf(testToday, "Brunch", "Toast", models.Nutrients{Energy: 100000}),
	}
	resp := buildDailyCalories(0, rows, rows, testWeekStart)

	// unknown slot names land in Snacks/Other
	assert.Equal(t, 100.0, resp.TodayCalories[3].Calories)
	assert.Equal(t, 100.0, resp.Graph[3].Snacks)
}

func TestBuildFoodEaten(t *testing.T) {
	rows := []MealFood{
		mf(testToday, "Breakfast", "Rice", models.Nutrients{Energy: 130000, Fat: 0.3, Carbs: 28, Protein: 2.7}),
		mf(testToday, "Lunch", "Egg", models.Nutrients{Energy: 155000, Fat: 11, Carbs: 1.1, Protein: 13}),
		mf(testToday, "Lunch", "Rice", models.Nutrients{Energy: 130000, Fat: 0.3, Carbs: 28, Protein: 2.7}),
		mf(testToday, "Dinner", "", models.Nutrients{Energy: 999999}),
	}

	resp := buildFoodEaten(rows)

	// two groups plus the trailing Total row, nameless row dropped
	require.Len(t, resp.Items, 3)

	rice := resp.Items[0]
	assert.Equal(t, "Rice", rice.Name)
	assert.Equal(t, 2, rice.Count)
	assert.Equal(t, 260.0, rice.TotalCalories)
	assert.InDelta(t, 0.6, rice.TotalFats, 0.001)
	assert.Equal(t, 56.0, rice.TotalCarbs)
	assert.InDelta(t, 5.4, rice.TotalProteins, 0.001)

	assert.Equal(t, "Egg", resp.Items[1].Name)

	total := resp.Items[2]
	assert.Equal(t, "Total", total.Name)
	assert.Equal(t, 3, total.Count)
	assert.Equal(t, 415.0, total.TotalCalories)
	assert.InDelta(t, 11.6, total.TotalFats, 0.001)
	assert.InDelta(t, 57.1, total.TotalCarbs, 0.001)
	assert.InDelta(t, 18.4, total.TotalProteins, 0.001)
	assert.Equal(t, total, resp.Total)
}

func TestBuildFoodEatenEmpty(t *testing.T) {
	resp := buildFoodEaten(nil)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Total", resp.Items[0].Name)
	assert.Equal(t, 0, resp.Total.Count)
	assert.Equal(t, 0.0, resp.Total.TotalCalories)
}

func TestBuildMacroReport(t *testing.T) {
	user := &models.User{DailyCarbs: 100, DailyProteins: 0, DailyFat: 50}
	weekRows := []MealFood{
		mf(testToday, "Lunch", "Rice", models.Nutrients{Carbs: 50, Protein: 2, Fat: 10}),
		mf(testWeekStart.AddDate(0, 0, 1), "Dinner", "Soup", models.Nutrients{Carbs: 30}),
	}

	resp := buildMacroReport(user, weekRows, testWeekStart, testToday)

	require.Len(t, resp.Graph, 7)
	assert.Equal(t, "2025-03-02", resp.Graph[0].Date)
	assert.Equal(t, 30.0, resp.Graph[1].Carbs)
	assert.Equal(t, 50.0, resp.Graph[3].Carbs)
	assert.Equal(t, 10.0, resp.Graph[3].Fats)
	assert.Equal(t, 0.0, resp.Graph[6].Proteins)

	assert.Equal(t, 50.0, resp.TodayMacro.Carbs.Value)
	assert.Equal(t, 50.0, resp.TodayMacro.Carbs.Percentage)
	// a zero protein target divides by 1, not by 0
	assert.Equal(t, 2.0, resp.TodayMacro.Proteins.Value)
	assert.Equal(t, 200.0, resp.TodayMacro.Proteins.Percentage)
	assert.Equal(t, 20.0, resp.TodayMacro.Fats.Percentage)
}

func TestBuildNutrientReport(t *testing.T) {
	user := &models.User{Goal: 2000000, DailyCarbs: 433.08, DailyFat: 108.27, DailyProteins: 80.2}
	rows := []MealFood{
		mf(testToday, "Breakfast", "Oatmeal", models.Nutrients{Water: 60, Energy: 500000, Protein: 20}),
	}

	resp := buildNutrientReport(user, rows)
	require.Len(t, resp.Nutrients, 21)

	water := resp.Nutrients[0]
	assert.Equal(t, "water", water.Name)
	assert.Equal(t, 60.0, water.Consumed)
	assert.Equal(t, "-", water.Goal)
	assert.Equal(t, "-", water.Difference)

	energy := resp.Nutrients[1]
	assert.Equal(t, "energy", energy.Name)
	assert.Equal(t, 500.0, energy.Consumed)
	assert.Equal(t, 2000.0, energy.Goal)
	assert.Equal(t, 1500.0, energy.Difference)

	protein := resp.Nutrients[2]
	assert.Equal(t, 20.0, protein.Consumed)
	assert.Equal(t, 80.2, protein.Goal)
	assert.Equal(t, 60.2, protein.Difference)
}

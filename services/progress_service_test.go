package services

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/NutriCall/nutri-call-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNutritionProgress(t *testing.T) {
	user := &models.User{Goal: 1500000, DailyCarbs: 433.08, DailyFat: 108.27, DailyProteins: 80.2}
	rows := []MealFood{
		mf(testToday, "Breakfast", "Oatmeal", models.Nutrients{Energy: 350000, Carbs: 60, Fat: 6, Protein: 12}),
		mf(testToday, "Lunch", "Rice", models.Nutrients{Energy: 400000, Carbs: 85, Fat: 1, Protein: 8}),
	}

	resp := buildNutritionProgress(user, rows)

	assert.Equal(t, 1500.0, resp.Goal)
	assert.Equal(t, 433.08, resp.DailyCarbs)
	assert.Equal(t, 750.0, resp.TotalEnergy)
	assert.Equal(t, 145.0, resp.TotalCarbs)
	assert.Equal(t, 7.0, resp.TotalFat)
	assert.Equal(t, 20.0, resp.TotalProteins)
}

func TestSynthesizeWeightTrendFillsToFive(t *testing.T) {
	histories := []models.WeightHistory{
		{Weight: 71, Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
		{Weight: 72, Date: time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC)},
	}
	rng := rand.New(rand.NewSource(1))

	points := SynthesizeWeightTrend(histories, 70, testToday, rng)
	require.Len(t, points, 5)

	byDate := make(map[string]int, len(points))
	for _, p := range points {
		byDate[p.Date] = p.Weight
	}
	assert.Len(t, byDate, 5, "dates must be unique")
	assert.Equal(t, 71, byDate["2025-03-03"])
	assert.Equal(t, 72, byDate["2025-02-25"])

	// filled gaps carry the newest recorded weight
	filled := 0
	for d, w := range byDate {
		if d != "2025-03-03" && d != "2025-02-25" {
			assert.Equal(t, 71, w)
			filled++
		}
	}
	assert.Equal(t, 3, filled)

	assert.True(t, sort.SliceIsSorted(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	}))
}

func TestSynthesizeWeightTrendSameDaySamples(t *testing.T) {
	// two profile edits on the same day leave two samples with one date;
	// the newest (first in DESC order) wins
	histories := []models.WeightHistory{
		{Weight: 71, Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
		{Weight: 69, Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
		{Weight: 72, Date: time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC)},
	}
	rng := rand.New(rand.NewSource(3))

	points := SynthesizeWeightTrend(histories, 70, testToday, rng)
	require.Len(t, points, 5)

	seen := make(map[string]int)
	for _, p := range points {
		seen[p.Date]++
	}
	for d, n := range seen {
		assert.Equal(t, 1, n, "duplicate date %s", d)
	}

	byDate := make(map[string]int, len(points))
	for _, p := range points {
		byDate[p.Date] = p.Weight
	}
	assert.Equal(t, 71, byDate["2025-03-03"])
	assert.Equal(t, 72, byDate["2025-02-25"])
}

func TestSynthesizeWeightTrendNoHistory(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	points := SynthesizeWeightTrend(nil, 70, testToday, rng)
	require.Len(t, points, 5)

	seen := make(map[string]bool)
	min := testToday.AddDate(0, 0, -14).Format(dateLayout)
	max := testToday.AddDate(0, 0, -1).Format(dateLayout)
	for _, p := range points {
		assert.Equal(t, 70, p.Weight)
		assert.False(t, seen[p.Date], "duplicate date %s", p.Date)
		seen[p.Date] = true
		assert.GreaterOrEqual(t, p.Date, min)
		assert.LessOrEqual(t, p.Date, max)
	}
}

func TestSynthesizeWeightTrendFullHistory(t *testing.T) {
	histories := make([]models.WeightHistory, 0, 5)
	for i := 0; i < 5; i++ {
		histories = append(histories, models.WeightHistory{
			Weight: 75 - i,
			Date:   testToday.AddDate(0, 0, -(i + 1)),
		})
	}
	rng := rand.New(rand.NewSource(7))

	points := SynthesizeWeightTrend(histories, 70, testToday, rng)
	require.Len(t, points, 5)

	// oldest sample first after sorting
	assert.Equal(t, "2025-02-28", points[0].Date)
	assert.Equal(t, 71, points[0].Weight)
	assert.Equal(t, "2025-03-04", points[4].Date)
	assert.Equal(t, 75, points[4].Weight)
}

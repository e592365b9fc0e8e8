package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateGoal(t *testing.T) {
	// bmr = 700 + 1093.75 - 125 + 5 = 1673.75; goal = 1673.75 * 1.725
	goal, err := CalculateGoal(25, 70, 175, "Male", "High Activity")
	require.NoError(t, err)
	assert.InDelta(t, 2887.22, goal, 0.001)

	assert.InDelta(t, 433.08, DailyCarbs(goal), 0.001)
	assert.InDelta(t, 108.27, DailyFat(goal), 0.001)
	assert.InDelta(t, 80.2, DailyProteins(goal), 0.001)
}

func TestCalculateGoalFemale(t *testing.T) {
	// bmr = 600 + 1031.25 - 150 - 161 = 1320.25; goal = 1320.25 * 1.2
	goal, err := CalculateGoal(30, 60, 165, "Female", "Little Activity/No Exercise")
	require.NoError(t, err)
	assert.InDelta(t, 1584.3, goal, 0.001)
}

func TestCalculateGoalGenderCaseInsensitive(t *testing.T) {
	upper, err := CalculateGoal(25, 70, 175, "MALE", "Moderate Activity")
	require.NoError(t, err)
	lower, err := CalculateGoal(25, 70, 175, "male", "Moderate Activity")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestCalculateGoalInvalidInput(t *testing.T) {
	_, err := CalculateGoal(25, 70, 175, "alien", "High Activity")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateGoal(25, 70, 175, "Male", "nonexistent")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, bmi, 0.001)
	assert.Equal(t, "Normal weight", BMICategory(bmi))

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)
}

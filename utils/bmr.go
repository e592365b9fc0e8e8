package utils

import (
	"fmt"
	"math"
	"strings"
)

// Activity tiers and their BMR multipliers. Labels are matched exactly.
var ActivityFactors = map[string]float64{
	"Little Activity/No Exercise": 1.2,
	"Light Activity":              1.375,
	"Moderate Activity":           1.55,
	"High Activity":               1.725,
}

// CalculateGoal computes the daily energy goal: Mifflin-St Jeor BMR times the
// activity factor, rounded to 2 decimals. Gender is matched case-insensitively.
// The goal lives in the same unit as stored composition energy.
func CalculateGoal(age, weight, height int, gender, activity string) (float64, error) {
	fa, ok := ActivityFactors[activity]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, activity)
	}

	var bmr float64
	switch {
	case strings.EqualFold(gender, "Male"):
		bmr = 10*float64(weight) + 6.25*float64(height) - 5*float64(age) + 5
	case strings.EqualFold(gender, "Female"):
		bmr = 10*float64(weight) + 6.25*float64(height) - 5*float64(age) - 161
	default:
		return 0, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, gender)
	}

	return round2(bmr * fa), nil
}

// Daily macro targets from the 60/15/25 caloric split.
func DailyCarbs(goal float64) float64    { return round2(0.60 * goal / 4) }
func DailyFat(goal float64) float64      { return round2(0.15 * goal / 4) }
func DailyProteins(goal float64) float64 { return round2(0.25 * goal / 9) }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

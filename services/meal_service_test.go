package services

import (
	"testing"

	"github.com/NutriCall/nutri-call-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMealsBySlot(t *testing.T) {
	rows := []MealFood{
		mf(testToday, "Breakfast", "Oatmeal", models.Nutrients{Energy: 350000, Carbs: 60}),
		mf(testToday, "Breakfast", "Coffee", models.Nutrients{Energy: 2000}),
		mf(testToday, "Brunch", "Toast", models.Nutrients{Energy: 100000}),
	}

	slots := GroupMealsBySlot(rows)
	require.Len(t, slots, 4)

	breakfast := slots[0]
	assert.Equal(t, "Breakfast", breakfast.Type)
	require.Len(t, breakfast.Meals, 2)
	assert.Equal(t, "Oatmeal", breakfast.Meals[0].FoodComposition.Name)
	// item details echo stored energy, the slot total is in display units
	assert.Equal(t, 350000.0, breakfast.Meals[0].FoodComposition.Energy)
	assert.Equal(t, 352.0, breakfast.TotalEnergy)

	assert.Empty(t, slots[1].Meals)
	assert.Empty(t, slots[2].Meals)

	snacks := slots[3]
	assert.Equal(t, "Snacks/Other", snacks.Type)
	require.Len(t, snacks.Meals, 1)
	assert.Equal(t, "Toast", snacks.Meals[0].FoodComposition.Name)
	assert.Equal(t, 100.0, snacks.TotalEnergy)
}

func TestGroupMealsBySlotEmpty(t *testing.T) {
	slots := GroupMealsBySlot(nil)
	require.Len(t, slots, 4)
	for _, s := range slots {
		assert.NotNil(t, s.Meals)
		assert.Empty(t, s.Meals)
		assert.Equal(t, 0.0, s.TotalEnergy)
	}
}

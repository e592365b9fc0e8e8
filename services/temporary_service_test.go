package services

import (
	"testing"

	"github.com/NutriCall/nutri-call-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidStagingSlot(t *testing.T) {
	for _, slot := range []string{"Breakfast", "Lunch", "Dinner", "Snacks/Other", "Ingredients"} {
		assert.True(t, ValidStagingSlot(slot), slot)
	}
	assert.False(t, ValidStagingSlot("Brunch"))
	assert.False(t, ValidStagingSlot("breakfast"))
	assert.False(t, ValidStagingSlot(""))
}

func TestCreateTemporaryItemRejectsUnknownSlot(t *testing.T) {
	// slot validation runs before any write
	_, err := CreateTemporaryItem(1, 1, "Brunch", testToday)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = ListTemporaryToday(1, "Brunch", testToday)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

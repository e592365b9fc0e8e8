package services

import (
	"fmt"
	"time"

	"github.com/NutriCall/nutri-call-backend/config"
	"github.com/NutriCall/nutri-call-backend/models"
	"github.com/NutriCall/nutri-call-backend/utils"
)

// Staged items accept the four meal slots plus the recipe-building slot.
var stagingSlots = map[string]bool{
	string(models.Breakfast):   true,
	string(models.Lunch):       true,
	string(models.Dinner):      true,
	string(models.SnacksOther): true,
	"Ingredients":              true,
}

func ValidStagingSlot(slot string) bool { return stagingSlots[slot] }

func CreateTemporaryItem(userID, compositionID uint, slot string, today time.Time) (*models.TemporaryItem, error) {
	if !ValidStagingSlot(slot) {
		return nil, fmt.Errorf("%w: unknown staging slot %q", utils.ErrInvalidInput, slot)
	}

	item := models.TemporaryItem{
		UserID:        userID,
		CompositionID: compositionID,
		Date:          dayStart(today),
		Type:          slot,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

type TemporaryItemDetail struct {
	ID            uint    `json:"id"`
	UserID        uint    `json:"user_id"`
	CompositionID uint    `json:"composition_id"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	Name          string  `json:"name"`
	Energy        float64 `json:"energy"`
}

// ListTemporaryToday returns today's staged items of one slot with their
// composition names.
func ListTemporaryToday(userID uint, slot string, today time.Time) ([]TemporaryItemDetail, error) {
	if !ValidStagingSlot(slot) {
		return nil, fmt.Errorf("%w: unknown staging slot %q", utils.ErrInvalidInput, slot)
	}

	var items []models.TemporaryItem
	if err := config.DB.
		Where("user_id = ? AND date = ? AND type = ?", userID, dayStart(today), slot).
		Find(&items).Error; err != nil {
		return nil, err
	}

	details := make([]TemporaryItemDetail, 0, len(items))
	for _, item := range items {
		var food models.FoodComposition
		if err := config.DB.First(&food, item.CompositionID).Error; err != nil {
			continue
		}
		details = append(details, TemporaryItemDetail{
			ID:            item.ID,
			UserID:        item.UserID,
			CompositionID: item.CompositionID,
			Date:          item.Date.Format(dateLayout),
			Type:          item.Type,
			Name:          food.Name,
			Energy:        food.Energy,
		})
	}
	return details, nil
}

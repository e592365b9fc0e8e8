package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/NutriCall/nutri-call-backend/config"
	"github.com/NutriCall/nutri-call-backend/models"
	"github.com/NutriCall/nutri-call-backend/utils"

	"gorm.io/gorm"
)

type IngredientRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type RecipeDetailResponse struct {
	ID            uint            `json:"id"`
	CompositionID uint            `json:"composition_id"`
	Name          string          `json:"name"`
	Title         string          `json:"title"`
	Source        string          `json:"source,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	Date          string          `json:"date"`
	Energy        float64         `json:"energy"`
	Protein       float64         `json:"protein"`
	Fat           float64         `json:"fat"`
	Carbs         float64         `json:"carbs"`
	Ingredients   []IngredientRef `json:"ingredients"`
	Steps         []string        `json:"steps"`
}

// CreateRecipe sums the full nutrient vectors of the chosen compositions
// (whole entries, no serving scaling), stores the recipe as a draft, and
// materializes a composition row under the recipe name so the dish can be
// logged as a meal later. An existing composition with the same name is
// reused instead (first match wins).
func CreateRecipe(userID uint, name, title, source string, ingredientIDs []uint, steps []string, imageURL string, today time.Time) (*RecipeDetailResponse, error) {
	var total models.Nutrients
	var totalSize float64
	var foods []models.FoodComposition
	if err := config.DB.Where("id IN ?", ingredientIDs).Find(&foods).Error; err != nil {
		return nil, err
	}
	for _, f := range foods {
		total.Add(f.Nutrients)
		totalSize += f.ServingSize
	}

	recipe := models.Recipe{
		UserID:    userID,
		Name:      name,
		Title:     title,
		Source:    source,
		Date:      dayStart(today),
		ImageURL:  imageURL,
		Nutrients: total,
	}
	if err := config.DB.Create(&recipe).Error; err != nil {
		return nil, err
	}

	var composition models.FoodComposition
	err := config.DB.Where("name = ?", name).First(&composition).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		composition = models.FoodComposition{
			Name:        name,
			Source:      source,
			Nutrients:   total,
			ServingSize: totalSize,
		}
		if err := config.DB.Create(&composition).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	for _, cid := range ingredientIDs {
		if err := config.DB.Create(&models.Ingredient{RecipeID: recipe.ID, CompositionID: cid}).Error; err != nil {
			return nil, err
		}
	}
	for _, step := range steps {
		if err := config.DB.Create(&models.RecipeStep{RecipeID: recipe.ID, Text: step}).Error; err != nil {
			return nil, err
		}
	}

	refs := make([]IngredientRef, 0, len(foods))
	for _, f := range foods {
		refs = append(refs, IngredientRef{ID: f.ID, Name: f.Name})
	}

	return &RecipeDetailResponse{
		ID:            recipe.ID,
		CompositionID: composition.ID,
		Name:          recipe.Name,
		Title:         recipe.Title,
		Source:        recipe.Source,
		ImageURL:      recipe.ImageURL,
		Date:          recipe.Date.Format(dateLayout),
		Energy:        displayEnergy(recipe.Energy),
		Protein:       round2(recipe.Protein),
		Fat:           round2(recipe.Fat),
		Carbs:         round2(recipe.Carbs),
		Ingredients:   refs,
		Steps:         steps,
	}, nil
}

type RecipeListItem struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	ImageURL     string `json:"image_url,omitempty"`
	UserID       uint   `json:"user_id"`
	UserFullName string `json:"user_full_name"`
	UserImage    string `json:"user_image,omitempty"`
}

// ListPublishedRecipes returns every published recipe with its author.
func ListPublishedRecipes() ([]RecipeListItem, error) {
	var rows []struct {
		models.Recipe
		FullName  string
		UserImage string
	}
	if err := config.DB.
		Table("recipes").
		Select("recipes.*, users.full_name, users.image_url AS user_image").
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("recipes.is_published = ?", true).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]RecipeListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, RecipeListItem{
			ID:           r.ID,
			Name:         r.Name,
			Date:         r.Date.Format(dateLayout),
			ImageURL:     r.ImageURL,
			UserID:       r.UserID,
			UserFullName: r.FullName,
			UserImage:    r.UserImage,
		})
	}
	return items, nil
}

func GetRecipeDetail(recipeID uint) (*RecipeDetailResponse, error) {
	var recipe models.Recipe
	if err := config.DB.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", utils.ErrNotFound, recipeID)
		}
		return nil, err
	}

	var refs []IngredientRef
	if err := config.DB.
		Table("ingredients").
		Select("food_compositions.id, food_compositions.name").
		Joins("JOIN food_compositions ON food_compositions.id = ingredients.composition_id").
		Where("ingredients.recipe_id = ?", recipeID).
		Scan(&refs).Error; err != nil {
		return nil, err
	}

	var stepRows []models.RecipeStep
	if err := config.DB.
		Where("recipe_id = ?", recipeID).
		Order("id ASC").
		Find(&stepRows).Error; err != nil {
		return nil, err
	}
	steps := make([]string, 0, len(stepRows))
	for _, s := range stepRows {
		steps = append(steps, s.Text)
	}

	// the composition materialized at creation, if it still exists
	var compositionID uint
	var composition models.FoodComposition
	if err := config.DB.Where("name = ?", recipe.Name).First(&composition).Error; err == nil {
		compositionID = composition.ID
	}

	return &RecipeDetailResponse{
		ID:            recipe.ID,
		CompositionID: compositionID,
		Name:          recipe.Name,
		Title:         recipe.Title,
		Source:        recipe.Source,
		ImageURL:      recipe.ImageURL,
		Date:          recipe.Date.Format(dateLayout),
		Energy:        displayEnergy(recipe.Energy),
		Protein:       round2(recipe.Protein),
		Fat:           round2(recipe.Fat),
		Carbs:         round2(recipe.Carbs),
		Ingredients:   refs,
		Steps:         steps,
	}, nil
}

func PublishRecipe(recipeID uint) error {
	var recipe models.Recipe
	if err := config.DB.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: recipe %d", utils.ErrNotFound, recipeID)
		}
		return err
	}
	recipe.IsPublished = true
	return config.DB.Save(&recipe).Error
}

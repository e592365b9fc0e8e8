package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/NutriCall/nutri-call-backend/middlewares"
	"github.com/NutriCall/nutri-call-backend/services"
	"github.com/NutriCall/nutri-call-backend/utils"

	"github.com/gin-gonic/gin"
)

func CreateRecipe(c *gin.Context) {
	name := c.PostForm("name")
	title := c.PostForm("title")
	source := c.PostForm("source")
	steps := c.PostFormArray("steps")
	if name == "" || title == "" || len(steps) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, title and steps are required"})
		return
	}

	var ingredientIDs []uint
	for _, raw := range c.PostFormArray("ingredients") {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
			return
		}
		ingredientIDs = append(ingredientIDs, uint(id))
	}
	if len(ingredientIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one ingredient is required"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe image is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	imageURL, err := utils.UploadImage(data, fileHeader.Header.Get("Content-Type"), "recipes")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	recipe, err := services.CreateRecipe(user.ID, name, title, source, ingredientIDs, steps, imageURL, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func ListRecipes(c *gin.Context) {
	recipes, err := services.ListPublishedRecipes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func GetRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := services.GetRecipeDetail(uint(id))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func PublishRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := services.PublishRecipe(uint(id)); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe published successfully"})
}

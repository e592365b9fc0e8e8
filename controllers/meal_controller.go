package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/NutriCall/nutri-call-backend/middlewares"
	"github.com/NutriCall/nutri-call-backend/services"
	"github.com/NutriCall/nutri-call-backend/utils"

	"github.com/gin-gonic/gin"
)

func MoveToMeals(c *gin.Context) {
	mealType := c.Query("type")
	if mealType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type query parameter required"})
		return
	}

	user := middlewares.CurrentUser(c)
	meals, err := services.MoveToMeals(user.ID, mealType, time.Now())
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meals)
}

type AddMealsInput struct {
	Compositions []uint `json:"compositions" binding:"required"`
	Type         string `json:"type" binding:"required"`
}

func AddMeals(c *gin.Context) {
	var input AddMealsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	meals, err := services.AddMeals(user.ID, input.Compositions, input.Type, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, meals)
}

func MealsForToday(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	slots, err := services.MealsForToday(user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}

func DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := services.DeleteMeal(user.ID, uint(id)); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}

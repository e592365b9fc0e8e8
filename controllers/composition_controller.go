package controllers

import (
	"errors"
	"net/http"

	"github.com/NutriCall/nutri-call-backend/services"
	"github.com/NutriCall/nutri-call-backend/utils"

	"github.com/gin-gonic/gin"
)

func ListCompositions(c *gin.Context) {
	compositions, err := services.ListCompositions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, compositions)
}

func SearchCompositions(c *gin.Context) {
	query := c.Query("name")
	matches, err := services.SearchCompositions(query)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matches)
}

type ScaleInput struct {
	Name string  `json:"name" binding:"required"`
	Size float64 `json:"size" binding:"required,gt=0"`
}

func ScaleComposition(c *gin.Context) {
	var input ScaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	derived, err := services.ScaleComposition(input.Name, input.Size)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, derived)
}

package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/NutriCall/nutri-call-backend/middlewares"
	"github.com/NutriCall/nutri-call-backend/services"
	"github.com/NutriCall/nutri-call-backend/utils"

	"github.com/gin-gonic/gin"
)

type TemporaryItemInput struct {
	CompositionID uint   `json:"composition_id" binding:"required"`
	Type          string `json:"type" binding:"required"`
}

func CreateTemporaryItem(c *gin.Context) {
	var input TemporaryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	item, err := services.CreateTemporaryItem(user.ID, input.CompositionID, input.Type, time.Now())
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func ListTemporaryToday(c *gin.Context) {
	slot := c.Query("type")

	user := middlewares.CurrentUser(c)
	items, err := services.ListTemporaryToday(user.ID, slot, time.Now())
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

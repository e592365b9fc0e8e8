package controllers

import (
	"net/http"
	"time"

	"github.com/NutriCall/nutri-call-backend/config"
	"github.com/NutriCall/nutri-call-backend/middlewares"
	"github.com/NutriCall/nutri-call-backend/services"

	"github.com/gin-gonic/gin"
)

func NutritionProgress(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	svc := services.NewProgressService(config.DB, nil)

	progress, err := svc.NutritionProgress(user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func WeightProgress(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	svc := services.NewProgressService(config.DB, nil)

	progress, err := svc.WeightProgress(user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

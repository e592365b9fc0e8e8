package controllers

import (
	"net/http"
	"time"

	"github.com/NutriCall/nutri-call-backend/config"
	"github.com/NutriCall/nutri-call-backend/middlewares"
	"github.com/NutriCall/nutri-call-backend/services"

	"github.com/gin-gonic/gin"
)

func DailyCalories(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	svc := services.NewDailyReportService(config.DB)

	report, err := svc.DailyCalories(user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func FoodEatenToday(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	svc := services.NewDailyReportService(config.DB)

	report, err := svc.FoodEatenToday(user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func MacroReport(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	svc := services.NewDailyReportService(config.DB)

	report, err := svc.MacroReport(user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func NutrientReport(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	svc := services.NewDailyReportService(config.DB)

	report, err := svc.NutrientReport(user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

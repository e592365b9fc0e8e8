package controllers

import (
	"net/http"
	"time"

	"github.com/NutriCall/nutri-call-backend/config"
	"github.com/NutriCall/nutri-call-backend/middlewares"
	"github.com/NutriCall/nutri-call-backend/services"

	"github.com/gin-gonic/gin"
)

func WeeklyCalories(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	svc := services.NewWeeklyReportService(config.DB)

	report, err := svc.WeeklyCalories(user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func WeeklyEaten(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	svc := services.NewWeeklyReportService(config.DB)

	report, err := svc.WeeklyEaten(user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func WeeklyGraphCalories(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	svc := services.NewWeeklyReportService(config.DB)

	report, err := svc.WeeklyGraphCalories(user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func WeeklyResume(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	svc := services.NewWeeklyReportService(config.DB)

	report, err := svc.WeeklyResume(user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

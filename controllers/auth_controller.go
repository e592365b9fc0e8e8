package controllers

import (
	"errors"
	"net/http"

	"github.com/NutriCall/nutri-call-backend/middlewares"
	"github.com/NutriCall/nutri-call-backend/services"
	"github.com/NutriCall/nutri-call-backend/utils"

	"github.com/gin-gonic/gin"
)

func Signup(c *gin.Context) {
	var input services.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(input)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, services.GetUserProfile(user))
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := services.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  services.GetUserProfile(user),
	})
}

func Logout(c *gin.Context) {
	// stateless tokens: the client drops the token
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func GetProfile(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	c.JSON(http.StatusOK, services.GetUserProfile(user))
}

func EditProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := services.UpdateUserProfile(user, input); err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.GetUserProfile(user))
}

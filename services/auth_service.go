package services

import (
	"errors"
	"time"

	"github.com/NutriCall/nutri-call-backend/config"
	"github.com/NutriCall/nutri-call-backend/models"
	"github.com/NutriCall/nutri-call-backend/utils"
)

type SignupInput struct {
	FullName     string `json:"full_name" binding:"required"`
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Age          int    `json:"age" binding:"required,min=0"`
	Weight       int    `json:"weight" binding:"required,gt=0"`
	WeightTarget int    `json:"weight_target" binding:"required,gt=0"`
	Height       int    `json:"height" binding:"required,gt=0"`
	Gender       string `json:"gender" binding:"required"`
	Activity     string `json:"activity" binding:"required"`
}

// RegisterUser validates the goal inputs before anything is written: an
// unrecognized gender or activity rejects the whole signup. The first weight
// history sample is appended alongside the profile.
func RegisterUser(input SignupInput) (*models.User, error) {
	var existing models.User
	if err := config.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return nil, errors.New("username already registered")
	}

	goal, err := utils.CalculateGoal(input.Age, input.Weight, input.Height, input.Gender, input.Activity)
	if err != nil {
		return nil, err
	}
	bmi, err := utils.CalculateBMI(float64(input.Height), float64(input.Weight))
	if err != nil {
		return nil, err
	}
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FullName:      input.FullName,
		Username:      input.Username,
		PasswordHash:  hashed,
		Age:           input.Age,
		Weight:        input.Weight,
		WeightTarget:  input.WeightTarget,
		Height:        input.Height,
		Gender:        input.Gender,
		Activity:      input.Activity,
		BMI:           bmi,
		Goal:          goal,
		DailyCarbs:    utils.DailyCarbs(goal),
		DailyFat:      utils.DailyFat(goal),
		DailyProteins: utils.DailyProteins(goal),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	sample := models.WeightHistory{
		UserID: user.ID,
		Weight: user.Weight,
		Date:   dayStart(time.Now()),
	}
	if err := config.DB.Create(&sample).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func AuthenticateUser(username, password string) (string, *models.User, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWT(user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

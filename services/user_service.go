package services

import (
	"fmt"
	"time"

	"github.com/NutriCall/nutri-call-backend/config"
	"github.com/NutriCall/nutri-call-backend/models"
	"github.com/NutriCall/nutri-call-backend/utils"
)

type ProfileInput struct {
	FullName     *string `json:"full_name"`
	Age          *int    `json:"age"`
	Weight       *int    `json:"weight"`
	WeightTarget *int    `json:"weight_target"`
	Height       *int    `json:"height"`
	Gender       *string `json:"gender"`
	Activity     *string `json:"activity"`
	Image        *string `json:"image"` // base64 data URI
}

// UpdateUserProfile applies the edit and recomputes the derived goal, macro
// targets and BMI in the same write. Validation runs on the edited values
// before anything is persisted, so a bad gender/activity leaves the profile
// untouched. A weight change appends a history sample.
func UpdateUserProfile(user *models.User, input ProfileInput) error {
	updated := *user

	if input.FullName != nil {
		updated.FullName = *input.FullName
	}
	if input.Age != nil {
		updated.Age = *input.Age
	}
	if input.Weight != nil {
		updated.Weight = *input.Weight
	}
	if input.WeightTarget != nil {
		updated.WeightTarget = *input.WeightTarget
	}
	if input.Height != nil {
		updated.Height = *input.Height
	}
	if input.Gender != nil {
		updated.Gender = *input.Gender
	}
	if input.Activity != nil {
		updated.Activity = *input.Activity
	}

	goal, err := utils.CalculateGoal(updated.Age, updated.Weight, updated.Height, updated.Gender, updated.Activity)
	if err != nil {
		return err
	}
	bmi, err := utils.CalculateBMI(float64(updated.Height), float64(updated.Weight))
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	updated.Goal = goal
	updated.DailyCarbs = utils.DailyCarbs(goal)
	updated.DailyFat = utils.DailyFat(goal)
	updated.DailyProteins = utils.DailyProteins(goal)
	updated.BMI = bmi

	if input.Image != nil && *input.Image != "" {
		url, err := utils.UploadBase64Image(*input.Image, "profile-pictures")
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		updated.ImageURL = url
	}

	weightChanged := updated.Weight != user.Weight

	if err := config.DB.Save(&updated).Error; err != nil {
		return err
	}

	if weightChanged {
		sample := models.WeightHistory{
			UserID: updated.ID,
			Weight: updated.Weight,
			Date:   dayStart(time.Now()),
		}
		if err := config.DB.Create(&sample).Error; err != nil {
			return err
		}
	}

	*user = updated
	return nil
}

// ProfileResponse is the read shape for /auth/profile.
type ProfileResponse struct {
	ID            uint    `json:"id"`
	FullName      string  `json:"full_name"`
	Username      string  `json:"username"`
	Age           int     `json:"age"`
	Weight        int     `json:"weight"`
	WeightTarget  int     `json:"weight_target"`
	Height        int     `json:"height"`
	Gender        string  `json:"gender"`
	Activity      string  `json:"activity"`
	BMI           float64 `json:"bmi"`
	BMICategory   string  `json:"bmi_category"`
	ImageURL      string  `json:"image_url,omitempty"`
	Goal          float64 `json:"goal"`
	DailyCarbs    float64 `json:"daily_carbs"`
	DailyFat      float64 `json:"daily_fat"`
	DailyProteins float64 `json:"daily_proteins"`
}

func GetUserProfile(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:            user.ID,
		FullName:      user.FullName,
		Username:      user.Username,
		Age:           user.Age,
		Weight:        user.Weight,
		WeightTarget:  user.WeightTarget,
		Height:        user.Height,
		Gender:        user.Gender,
		Activity:      user.Activity,
		BMI:           user.BMI,
		BMICategory:   utils.BMICategory(user.BMI),
		ImageURL:      user.ImageURL,
		Goal:          user.Goal,
		DailyCarbs:    user.DailyCarbs,
		DailyFat:      user.DailyFat,
		DailyProteins: user.DailyProteins,
	}
}

func FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: user %q", utils.ErrNotFound, username)
	}
	return &user, nil
}

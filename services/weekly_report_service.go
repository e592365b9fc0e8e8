package services

import (
	"math"
	"time"

	"github.com/NutriCall/nutri-call-backend/models"

	"gorm.io/gorm"
)

type WeeklyReportService struct{ db *gorm.DB }

func NewWeeklyReportService(db *gorm.DB) *WeeklyReportService { return &WeeklyReportService{db: db} }

// ---------- Calories summary ----------

type WeeklyCaloriesResponse struct {
	WeeklyGoal     float64 `json:"weekly_goal"`
	WeeklyConsumed float64 `json:"weekly_consumed"`
	Difference     float64 `json:"difference"`
}

func (s *WeeklyReportService) WeeklyCalories(user *models.User, today time.Time) (*WeeklyCaloriesResponse, error) {
	weekStart := startOfWeek(today)
	rows, err := mealsWithCompositions(s.db, user.ID, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	return buildWeeklyCalories(user.Goal, rows), nil
}

func buildWeeklyCalories(goal float64, rows []MealFood) *WeeklyCaloriesResponse {
	weeklyGoal := goal * 7
	var consumed float64
	for _, r := range rows {
		consumed += r.Food.Energy
	}
	return &WeeklyCaloriesResponse{
		WeeklyGoal:     displayEnergy(weeklyGoal),
		WeeklyConsumed: displayEnergy(consumed),
		Difference:     displayEnergy(weeklyGoal - consumed),
	}
}

// ---------- Macro split ----------

type WeeklyMacroPercentage struct {
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

type WeeklyEatenResponse struct {
	Items []WeeklyMacroPercentage `json:"items"`
}

func (s *WeeklyReportService) WeeklyEaten(user *models.User, today time.Time) (*WeeklyEatenResponse, error) {
	weekStart := startOfWeek(today)
	rows, err := mealsWithCompositions(s.db, user.ID, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	return buildWeeklyEaten(rows), nil
}

func buildWeeklyEaten(rows []MealFood) *WeeklyEatenResponse {
	var carbs, fats, proteins float64
	for _, r := range rows {
		carbs += r.Food.Carbs
		fats += r.Food.Fat
		proteins += r.Food.Protein
	}
	total := carbs + fats + proteins

	return &WeeklyEatenResponse{Items: []WeeklyMacroPercentage{
		{Name: "Carbohydrates", Total: round2(carbs), Percentage: pctOf(carbs, total)},
		{Name: "Fats", Total: round2(fats), Percentage: pctOf(fats, total)},
		{Name: "Proteins", Total: round2(proteins), Percentage: pctOf(proteins, total)},
	}}
}

// ---------- Per-day calories graph ----------

type CaloriesGraphDay struct {
	Date             string  `json:"date"`
	TotalEnergy      float64 `json:"total_energy"`
	PercentageOfGoal float64 `json:"percentage_of_goal"`
}

type WeeklyGraphCaloriesResponse struct {
	Graph []CaloriesGraphDay `json:"graph"`
}

func (s *WeeklyReportService) WeeklyGraphCalories(user *models.User, today time.Time) (*WeeklyGraphCaloriesResponse, error) {
	weekStart := startOfWeek(today)
	rows, err := mealsWithCompositions(s.db, user.ID, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	return buildWeeklyGraphCalories(user.Goal, rows, weekStart), nil
}

func buildWeeklyGraphCalories(goal float64, rows []MealFood, weekStart time.Time) *WeeklyGraphCaloriesResponse {
	var days [7]float64
	dayIndex := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		dayIndex[weekStart.AddDate(0, 0, i).Format(dateLayout)] = i
	}
	for _, r := range rows {
		if i, ok := dayIndex[r.Meal.Date.Format(dateLayout)]; ok {
			days[i] += r.Food.Energy
		}
	}

	graph := make([]CaloriesGraphDay, 7)
	for i := 0; i < 7; i++ {
		graph[i] = CaloriesGraphDay{
			Date:             weekStart.AddDate(0, 0, i).Format(dateLayout),
			TotalEnergy:      displayEnergy(days[i]),
			PercentageOfGoal: pctOf(days[i], goal),
		}
	}
	return &WeeklyGraphCaloriesResponse{Graph: graph}
}

// ---------- Resume ----------

// NutrientPercentages mirrors the 21-field vector; values are whole-number
// percentages of the mixed-unit weekly total. The aggregate mixes grams,
// milligrams and stored energy units, so the split is cosmetic, not a
// unit-correct breakdown.
type NutrientPercentages struct {
	Water         float64 `json:"water"`
	Energy        float64 `json:"energy"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbs         float64 `json:"carbs"`
	Fiber         float64 `json:"fiber"`
	Ash           float64 `json:"ash"`
	Calcium       float64 `json:"calcium"`
	Phosphorus    float64 `json:"phosphorus"`
	Iron          float64 `json:"iron"`
	Sodium        float64 `json:"sodium"`
	Potassium     float64 `json:"potassium"`
	Copper        float64 `json:"copper"`
	Zinc          float64 `json:"zinc"`
	Retinol       float64 `json:"retinol"`
	BetaCarotene  float64 `json:"beta_carotene"`
	TotalCarotene float64 `json:"total_carotene"`
	Thiamine      float64 `json:"thiamine"`
	Riboflavin    float64 `json:"riboflavin"`
	Niacin        float64 `json:"niacin"`
	VitaminC      float64 `json:"vitamin_c"`
}

type WeeklyResumeResponse struct {
	TotalAll           float64             `json:"total_all"`
	NutrientPercentage NutrientPercentages `json:"nutrient_percentage"`
}

func (s *WeeklyReportService) WeeklyResume(user *models.User, today time.Time) (*WeeklyResumeResponse, error) {
	weekStart := startOfWeek(today)
	rows, err := mealsWithCompositions(s.db, user.ID, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	return buildWeeklyResume(rows), nil
}

func buildWeeklyResume(rows []MealFood) *WeeklyResumeResponse {
	var sum models.Nutrients
	for _, r := range rows {
		sum.Add(r.Food.Nutrients)
	}

	totalAll := sum.Water + sum.Energy + sum.Protein + sum.Fat + sum.Carbs +
		sum.Fiber + sum.Ash + sum.Calcium + sum.Phosphorus + sum.Iron +
		sum.Sodium + sum.Potassium + sum.Copper + sum.Zinc + sum.Retinol +
		sum.BetaCarotene + sum.TotalCarotene + sum.Thiamine + sum.Riboflavin +
		sum.Niacin + sum.VitaminC

	pct := func(v float64) float64 {
		if totalAll <= 0 {
			return 0
		}
		return math.Round(v / totalAll * 100)
	}

	return &WeeklyResumeResponse{
		TotalAll: round2(totalAll),
		NutrientPercentage: NutrientPercentages{
			Water:         pct(sum.Water),
			Energy:        pct(sum.Energy),
			Protein:       pct(sum.Protein),
			Fat:           pct(sum.Fat),
			Carbs:         pct(sum.Carbs),
			Fiber:         pct(sum.Fiber),
			Ash:           pct(sum.Ash),
			Calcium:       pct(sum.Calcium),
			Phosphorus:    pct(sum.Phosphorus),
			Iron:          pct(sum.Iron),
			Sodium:        pct(sum.Sodium),
			Potassium:     pct(sum.Potassium),
			Copper:        pct(sum.Copper),
			Zinc:          pct(sum.Zinc),
			Retinol:       pct(sum.Retinol),
			BetaCarotene:  pct(sum.BetaCarotene),
			TotalCarotene: pct(sum.TotalCarotene),
			Thiamine:      pct(sum.Thiamine),
			Riboflavin:    pct(sum.Riboflavin),
			Niacin:        pct(sum.Niacin),
			VitaminC:      pct(sum.VitaminC),
		},
	}
}

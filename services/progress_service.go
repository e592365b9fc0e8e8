package services

import (
	"math/rand"
	"sort"
	"time"

	"github.com/NutriCall/nutri-call-backend/models"

	"gorm.io/gorm"
)

const trendPoints = 5

type ProgressService struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewProgressService takes the randomness source for trend gap-filling so
// tests can seed it.
func NewProgressService(db *gorm.DB, rng *rand.Rand) *ProgressService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ProgressService{db: db, rng: rng}
}

// ---------- Nutrition progress ----------

type NutritionProgressResponse struct {
	Goal          float64 `json:"goal"`
	DailyCarbs    float64 `json:"daily_carbs"`
	DailyFat      float64 `json:"daily_fat"`
	DailyProteins float64 `json:"daily_proteins"`
	TotalEnergy   float64 `json:"total_energy"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	TotalProteins float64 `json:"total_proteins"`
}

func (s *ProgressService) NutritionProgress(user *models.User, today time.Time) (*NutritionProgressResponse, error) {
	rows, err := mealsWithCompositions(s.db, user.ID, today, today)
	if err != nil {
		return nil, err
	}
	return buildNutritionProgress(user, rows), nil
}

func buildNutritionProgress(user *models.User, rows []MealFood) *NutritionProgressResponse {
	var energy, carbs, fat, proteins float64
	for _, r := range rows {
		energy += r.Food.Energy
		carbs += r.Food.Carbs
		fat += r.Food.Fat
		proteins += r.Food.Protein
	}
	return &NutritionProgressResponse{
		Goal:          displayEnergy(user.Goal),
		DailyCarbs:    round2(user.DailyCarbs),
		DailyFat:      round2(user.DailyFat),
		DailyProteins: round2(user.DailyProteins),
		TotalEnergy:   displayEnergy(energy),
		TotalCarbs:    round2(carbs),
		TotalFat:      round2(fat),
		TotalProteins: round2(proteins),
	}
}

// ---------- Weight trend ----------

type WeightPoint struct {
	Date   string `json:"date"`
	Weight int    `json:"weight"`
}

type WeightProgressResponse struct {
	Weight       int           `json:"weight"`
	WeightTarget int           `json:"weight_target"`
	Date         string        `json:"date"`
	Traffic      []WeightPoint `json:"traffic"`
}

func (s *ProgressService) WeightProgress(user *models.User, today time.Time) (*WeightProgressResponse, error) {
	var histories []models.WeightHistory
	if err := s.db.
		Where("user_id = ?", user.ID).
		Order("date DESC").
		Limit(trendPoints).
		Find(&histories).Error; err != nil {
		return nil, err
	}

	return &WeightProgressResponse{
		Weight:       user.Weight,
		WeightTarget: user.WeightTarget,
		Date:         today.Format(dateLayout),
		Traffic:      SynthesizeWeightTrend(histories, user.Weight, today, s.rng),
	}, nil
}

// SynthesizeWeightTrend turns up to 5 newest-first samples into exactly 5
// chronological points. Missing points get a date 1-14 days before today that
// is not already taken, carrying the most recent known weight (the user's
// current weight when there is no history at all). Lexicographic sort on the
// ISO dates is chronological.
func SynthesizeWeightTrend(histories []models.WeightHistory, currentWeight int, today time.Time, rng *rand.Rand) []WeightPoint {
	points := make([]WeightPoint, 0, trendPoints)
	used := make(map[string]bool, trendPoints)

	// Same-day samples collapse to the newest one, which comes first in the
	// DESC ordering.
	lastWeight := currentWeight
	for _, h := range histories {
		key := h.Date.Format(dateLayout)
		if used[key] {
			continue
		}
		points = append(points, WeightPoint{Date: key, Weight: h.Weight})
		used[key] = true
	}
	if len(histories) > 0 {
		lastWeight = histories[0].Weight
	}

	for len(points) < trendPoints {
		// 14 candidate days for at most 5 slots, so this terminates
		for {
			key := today.AddDate(0, 0, -(1 + rng.Intn(14))).Format(dateLayout)
			if !used[key] {
				used[key] = true
				points = append(points, WeightPoint{Date: key, Weight: lastWeight})
				break
			}
		}
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

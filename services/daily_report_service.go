package services

import (
	"time"

	"github.com/NutriCall/nutri-call-backend/models"

	"gorm.io/gorm"
)

type DailyReportService struct{ db *gorm.DB }

func NewDailyReportService(db *gorm.DB) *DailyReportService { return &DailyReportService{db: db} }

// ---------- Calories by meal slot ----------

type MealTypeCalories struct {
	Type       string  `json:"type"`
	Calories   float64 `json:"calories"`
	Percentage float64 `json:"percentage"`
}

// One day of the weekly graph, one column per meal slot. Fixed shape so a new
// slot cannot be silently dropped from the report.
type DayTypeCalories struct {
	Date      string  `json:"date"`
	Breakfast float64 `json:"Breakfast"`
	Lunch     float64 `json:"Lunch"`
	Dinner    float64 `json:"Dinner"`
	Snacks    float64 `json:"Snacks/Other"`
}

type DailyCaloriesResponse struct {
	Goal          float64            `json:"goal"`
	TotalCalToday float64            `json:"total_cal_today"`
	Average       float64            `json:"average"`
	TodayCalories []MealTypeCalories `json:"today_calories"`
	Graph         []DayTypeCalories  `json:"graph"`
}

// slotTotals is the per-slot accumulator for one day.
type slotTotals struct {
	breakfast, lunch, dinner, snacks float64
}

func (s *slotTotals) add(t models.MealType, v float64) {
	switch t {
	case models.Breakfast:
		s.breakfast += v
	case models.Lunch:
		s.lunch += v
	case models.Dinner:
		s.dinner += v
	default:
		s.snacks += v
	}
}

func (s slotTotals) total() float64 { return s.breakfast + s.lunch + s.dinner + s.snacks }

func (s *DailyReportService) DailyCalories(user *models.User, today time.Time) (*DailyCaloriesResponse, error) {
	weekStart := startOfWeek(today)
	weekRows, err := mealsWithCompositions(s.db, user.ID, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	todayRows, err := mealsWithCompositions(s.db, user.ID, today, today)
	if err != nil {
		return nil, err
	}
	return buildDailyCalories(user.Goal, todayRows, weekRows, weekStart), nil
}

func buildDailyCalories(goal float64, todayRows, weekRows []MealFood, weekStart time.Time) *DailyCaloriesResponse {
	var today slotTotals
	for _, r := range todayRows {
		today.add(models.ParseMealType(r.Meal.Type), r.Food.Energy)
	}
	totalToday := today.total()

	todayCalories := []MealTypeCalories{
		{Type: string(models.Breakfast), Calories: displayEnergy(today.breakfast), Percentage: pctOf(today.breakfast, totalToday)},
		{Type: string(models.Lunch), Calories: displayEnergy(today.lunch), Percentage: pctOf(today.lunch, totalToday)},
		{Type: string(models.Dinner), Calories: displayEnergy(today.dinner), Percentage: pctOf(today.dinner, totalToday)},
		{Type: string(models.SnacksOther), Calories: displayEnergy(today.snacks), Percentage: pctOf(today.snacks, totalToday)},
	}

	var week [7]slotTotals
	dayIndex := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		dayIndex[weekStart.AddDate(0, 0, i).Format(dateLayout)] = i
	}

	var weeklyTotal float64
	for _, r := range weekRows {
		i, ok := dayIndex[r.Meal.Date.Format(dateLayout)]
		if !ok {
			continue
		}
		week[i].add(models.ParseMealType(r.Meal.Type), r.Food.Energy)
		weeklyTotal += r.Food.Energy
	}

	graph := make([]DayTypeCalories, 7)
	for i := 0; i < 7; i++ {
		graph[i] = DayTypeCalories{
			Date:      weekStart.AddDate(0, 0, i).Format(dateLayout),
			Breakfast: displayEnergy(week[i].breakfast),
			Lunch:     displayEnergy(week[i].lunch),
			Dinner:    displayEnergy(week[i].dinner),
			Snacks:    displayEnergy(week[i].snacks),
		}
	}

	return &DailyCaloriesResponse{
		Goal:          displayEnergy(goal),
		TotalCalToday: displayEnergy(totalToday),
		Average:       displayEnergy(weeklyTotal / 7),
		TodayCalories: todayCalories,
		Graph:         graph,
	}
}

// ---------- Food eaten today ----------

type FoodEatenItem struct {
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	TotalCalories float64 `json:"total_calories"`
	TotalFats     float64 `json:"total_fats"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalProteins float64 `json:"total_proteins"`
}

type FoodEatenResponse struct {
	Items []FoodEatenItem `json:"items"`
	Total FoodEatenItem   `json:"total"`
}

func (s *DailyReportService) FoodEatenToday(user *models.User, today time.Time) (*FoodEatenResponse, error) {
	rows, err := mealsWithCompositions(s.db, user.ID, today, today)
	if err != nil {
		return nil, err
	}
	return buildFoodEaten(rows), nil
}

func buildFoodEaten(rows []MealFood) *FoodEatenResponse {
	type group struct {
		count                         int
		calories, fats, carbs, protein float64
	}
	groups := make(map[string]*group)
	var order []string

	for _, r := range rows {
		if r.Food.Name == "" {
			continue
		}
		g, ok := groups[r.Food.Name]
		if !ok {
			g = &group{}
			groups[r.Food.Name] = g
			order = append(order, r.Food.Name)
		}
		g.count++
		g.calories += r.Food.Energy
		g.fats += r.Food.Fat
		g.carbs += r.Food.Carbs
		g.protein += r.Food.Protein
	}

	var total FoodEatenItem
	total.Name = "Total"

	items := make([]FoodEatenItem, 0, len(order)+1)
	for _, name := range order {
		g := groups[name]
		items = append(items, FoodEatenItem{
			Name:          name,
			Count:         g.count,
			TotalCalories: displayEnergy(g.calories),
			TotalFats:     round2(g.fats),
			TotalCarbs:    round2(g.carbs),
			TotalProteins: round2(g.protein),
		})
		total.Count += g.count
		total.TotalCalories += g.calories
		total.TotalFats += g.fats
		total.TotalCarbs += g.carbs
		total.TotalProteins += g.protein
	}

	total.TotalCalories = displayEnergy(total.TotalCalories)
	total.TotalFats = round2(total.TotalFats)
	total.TotalCarbs = round2(total.TotalCarbs)
	total.TotalProteins = round2(total.TotalProteins)

	// the Total row rides along at the end of the item list as well
	items = append(items, total)

	return &FoodEatenResponse{Items: items, Total: total}
}

// ---------- Macronutrient report ----------

type MacroGraphDay struct {
	Date     string  `json:"date"`
	Carbs    float64 `json:"carbs"`
	Proteins float64 `json:"proteins"`
	Fats     float64 `json:"fats"`
}

type MacroDetail struct {
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

type TodayMacro struct {
	Carbs    MacroDetail `json:"carbs"`
	Proteins MacroDetail `json:"proteins"`
	Fats     MacroDetail `json:"fats"`
}

type MacroResponse struct {
	Graph      []MacroGraphDay `json:"graph"`
	TodayMacro TodayMacro      `json:"today_macro"`
}

func (s *DailyReportService) MacroReport(user *models.User, today time.Time) (*MacroResponse, error) {
	weekStart := startOfWeek(today)
	weekRows, err := mealsWithCompositions(s.db, user.ID, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	return buildMacroReport(user, weekRows, weekStart, today), nil
}

func buildMacroReport(user *models.User, weekRows []MealFood, weekStart, today time.Time) *MacroResponse {
	dayIndex := make(map[string]int, 7)
	graph := make([]MacroGraphDay, 7)
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i).Format(dateLayout)
		dayIndex[d] = i
		graph[i].Date = d
	}

	todayKey := today.Format(dateLayout)
	var totalCarbs, totalProteins, totalFats float64

	for _, r := range weekRows {
		key := r.Meal.Date.Format(dateLayout)
		i, ok := dayIndex[key]
		if !ok {
			continue
		}
		graph[i].Carbs += r.Food.Carbs
		graph[i].Proteins += r.Food.Protein
		graph[i].Fats += r.Food.Fat
		if key == todayKey {
			totalCarbs += r.Food.Carbs
			totalProteins += r.Food.Protein
			totalFats += r.Food.Fat
		}
	}
	for i := range graph {
		graph[i].Carbs = round2(graph[i].Carbs)
		graph[i].Proteins = round2(graph[i].Proteins)
		graph[i].Fats = round2(graph[i].Fats)
	}

	// A zero/absent target counts as 1 here instead of short-circuiting to 0.
	// Inherited behavior, kept as-is.
	orOne := func(v float64) float64 {
		if v == 0 {
			return 1
		}
		return v
	}

	return &MacroResponse{
		Graph: graph,
		TodayMacro: TodayMacro{
			Carbs:    MacroDetail{Value: round2(totalCarbs), Percentage: round2(totalCarbs / orOne(user.DailyCarbs) * 100)},
			Proteins: MacroDetail{Value: round2(totalProteins), Percentage: round2(totalProteins / orOne(user.DailyProteins) * 100)},
			Fats:     MacroDetail{Value: round2(totalFats), Percentage: round2(totalFats / orOne(user.DailyFat) * 100)},
		},
	}
}

// ---------- Nutrient report ----------

type NutrientItem struct {
	Name       string `json:"name"`
	Consumed   float64 `json:"consumed"`
	Goal       any    `json:"goal"`       // float64 target or "-"
	Difference any    `json:"difference"` // goal - consumed, or "-"
}

type NutrientReport struct {
	Nutrients []NutrientItem `json:"nutrients"`
}

func (s *DailyReportService) NutrientReport(user *models.User, today time.Time) (*NutrientReport, error) {
	rows, err := mealsWithCompositions(s.db, user.ID, today, today)
	if err != nil {
		return nil, err
	}
	return buildNutrientReport(user, rows), nil
}

func buildNutrientReport(user *models.User, rows []MealFood) *NutrientReport {
	var sum models.Nutrients
	for _, r := range rows {
		sum.Add(r.Food.Nutrients)
	}

	type entry struct {
		name     string
		consumed float64
		target   *float64
		energy   bool
	}
	entries := []entry{
		{"water", sum.Water, nil, false},
		{"energy", sum.Energy, &user.Goal, true},
		{"protein", sum.Protein, &user.DailyProteins, false},
		{"fat", sum.Fat, &user.DailyFat, false},
		{"carbs", sum.Carbs, &user.DailyCarbs, false},
		{"fiber", sum.Fiber, nil, false},
		{"ash", sum.Ash, nil, false},
		{"calcium", sum.Calcium, nil, false},
		{"phosphorus", sum.Phosphorus, nil, false},
		{"iron", sum.Iron, nil, false},
		{"sodium", sum.Sodium, nil, false},
		{"potassium", sum.Potassium, nil, false},
		{"copper", sum.Copper, nil, false},
		{"zinc", sum.Zinc, nil, false},
		{"retinol", sum.Retinol, nil, false},
		{"beta_carotene", sum.BetaCarotene, nil, false},
		{"total_carotene", sum.TotalCarotene, nil, false},
		{"thiamine", sum.Thiamine, nil, false},
		{"riboflavin", sum.Riboflavin, nil, false},
		{"niacin", sum.Niacin, nil, false},
		{"vitamin_c", sum.VitaminC, nil, false},
	}

	items := make([]NutrientItem, 0, len(entries))
	for _, e := range entries {
		item := NutrientItem{Name: e.name, Goal: "-", Difference: "-"}
		if e.energy {
			item.Consumed = displayEnergy(e.consumed)
		} else {
			item.Consumed = round2(e.consumed)
		}
		if e.target != nil {
			diff := *e.target - e.consumed
			if e.energy {
				item.Goal = displayEnergy(*e.target)
				item.Difference = displayEnergy(diff)
			} else {
				item.Goal = round2(*e.target)
				item.Difference = round2(diff)
			}
		}
		items = append(items, item)
	}

	return &NutrientReport{Nutrients: items}
}

package routes

import (
	"github.com/NutriCall/nutri-call-backend/controllers"
	"github.com/NutriCall/nutri-call-backend/middlewares"
	"github.com/NutriCall/nutri-call-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log))

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
	}

	// Everything else requires a token
	authed := api.Group("")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/auth/profile", controllers.GetProfile)
		authed.PUT("/auth/edit-profile", controllers.EditProfile)

		compositions := authed.Group("/compositions")
		{
			compositions.GET("", controllers.ListCompositions)
			compositions.GET("/search", controllers.SearchCompositions)
			compositions.POST("/scale", controllers.ScaleComposition)
		}

		temporary := authed.Group("/temporary")
		{
			temporary.POST("", controllers.CreateTemporaryItem)
			temporary.GET("", controllers.ListTemporaryToday)
		}

		meals := authed.Group("/meals")
		{
			meals.POST("/move-to-meals", controllers.MoveToMeals)
			meals.POST("", controllers.AddMeals)
			meals.GET("", controllers.MealsForToday)
			meals.DELETE("/:id", controllers.DeleteMeal)
		}

		recipes := authed.Group("/recipes")
		{
			recipes.POST("", controllers.CreateRecipe)
			recipes.GET("", controllers.ListRecipes)
			recipes.GET("/:id", controllers.GetRecipe)
			recipes.POST("/:id/publish", controllers.PublishRecipe)
		}

		report := authed.Group("/report")
		{
			report.GET("/calories", controllers.DailyCalories)
			report.GET("/food-eaten", controllers.FoodEatenToday)
			report.GET("/macro", controllers.MacroReport)
			report.GET("/nutrients", controllers.NutrientReport)
		}

		weekly := authed.Group("/weekly-report")
		{
			weekly.GET("/calories", controllers.WeeklyCalories)
			weekly.GET("/eaten", controllers.WeeklyEaten)
			weekly.GET("/graph-calories", controllers.WeeklyGraphCalories)
			weekly.GET("/resume", controllers.WeeklyResume)
		}

		progress := authed.Group("/progress")
		{
			progress.GET("/nutritions", controllers.NutritionProgress)
			progress.GET("/weight", controllers.WeightProgress)
		}
	}

	return r
}

package config

import (
	"fmt"
	"os"

	"github.com/NutriCall/nutri-call-backend/models"
	"github.com/NutriCall/nutri-call-backend/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(log *logger.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.FoodComposition{},
		&models.Meal{},
		&models.TemporaryItem{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.RecipeStep{},
		&models.WeightHistory{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Info("Database connected and migrated")
}

package main

import (
	"os"

	"github.com/NutriCall/nutri-call-backend/config"
	"github.com/NutriCall/nutri-call-backend/pkg/logger"
	"github.com/NutriCall/nutri-call-backend/routes"
	"github.com/NutriCall/nutri-call-backend/utils"
)

func main() {
	log := logger.New()
	log.Info("Starting Nutri Call backend...")

	config.InitDB(log)
	utils.InitS3()

	r := routes.SetupRouter(log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

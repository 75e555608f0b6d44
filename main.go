package main

import (
	"GreenCompost-Backend/cmd/config"
	migration "GreenCompost-Backend/cmd/database/migrate"
	"GreenCompost-Backend/cmd/database/seed"
	"GreenCompost-Backend/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if utils.GetConfig("SEED_SAMPLE_DATA") == "true" {
		if err := seed.Seed(db); err != nil {
			log.Fatalf("failed to seed sample data: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

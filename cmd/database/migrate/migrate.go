package migration

import (
	"GreenCompost-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"food item", &entities.FoodItem{}},
		{"service", &entities.LocalService{}},
		{"operating hour", &entities.OperatingHour{}},
		{"accepted item", &entities.AcceptedItem{}},
		{"non-accepted item", &entities.NonAcceptedItem{}},
		{"donation guideline", &entities.DonationGuideline{}},
		{"event", &entities.ScheduledEvent{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Fatalf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}

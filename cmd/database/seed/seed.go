package seed

import (
	"GreenCompost-Backend/entities"
	"GreenCompost-Backend/pkg/food"
	"GreenCompost-Backend/pkg/service"
	"GreenCompost-Backend/pkg/user"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads a small sample data set for local development. Existing rows
// with the same natural keys are updated, so seeding twice is harmless.
func Seed(db *gorm.DB) error {
	ctx := context.Background()

	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	catalog := service.NewServiceCatalog(service.NewServiceRepository(db))
	if err := catalog.Rehydrate(ctx); err != nil {
		return err
	}

	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []*entities.User{
		{
			ID:        uuid.New(),
			Username:  "aoife",
			Password:  string(password),
			Name:      "Aoife Byrne",
			Email:     "aoife@example.com",
			Location:  "Dublin, Ireland",
			Latitude:  53.3498,
			Longitude: -6.2603,
			CreatedAt: time.Now(),
		},
		{
			ID:        uuid.New(),
			Username:  "liam",
			Password:  string(password),
			Name:      "Liam Murphy",
			Email:     "liam@example.com",
			Location:  "Cork, Ireland",
			Latitude:  51.8985,
			Longitude: -8.4756,
			CreatedAt: time.Now(),
		},
	}
	for _, u := range users {
		if err := userRepository.SaveUser(ctx, u); err != nil {
			return err
		}
	}

	owner, err := userRepository.GetUserByUsername(ctx, "aoife")
	if err != nil {
		return err
	}

	items := []*entities.FoodItem{
		{
			ID:             uuid.New(),
			Name:           "Carrots",
			Category:       entities.CategoryVegetable,
			Quantity:       2,
			QuantityUnit:   "kg",
			ExpirationDate: time.Now().Add(7 * 24 * time.Hour),
			Status:         entities.StatusAvailable,
			UserID:         owner.ID,
			CreatedAt:      time.Now(),
		},
		{
			ID:             uuid.New(),
			Name:           "Milk",
			Category:       entities.CategoryDairy,
			Quantity:       1,
			QuantityUnit:   "litre",
			ExpirationDate: time.Now().Add(36 * time.Hour),
			Status:         entities.StatusAvailable,
			UserID:         owner.ID,
			CreatedAt:      time.Now(),
		},
	}
	for _, item := range items {
		if err := foodRepository.SaveFoodItem(ctx, item); err != nil {
			return err
		}
	}

	services := []*entities.LocalService{
		{
			Name:                 "Dublin Food Bank",
			Description:          "Collects surplus food for redistribution",
			Address:              "12 Abbey Street, Dublin, Ireland",
			ContactInfo:          "info@dublinfoodbank.ie",
			Latitude:             53.3489,
			Longitude:            -6.2600,
			PickupAvailable:      true,
			PickupRadius:         15,
			AcceptsFoodDonations: true,
			ServiceType:          entities.ServiceTypeFoodBank,
			Hours:                entities.DefaultWeeklyHours(),
			AcceptedItems:        []string{"vegetables", "fruit", "tinned goods"},
			NonAcceptedItems:     []string{"opened packages"},
			DonationGuidelines:   []string{"Food must be within its expiration date"},
		},
		{
			Name:                 "Ringsend Composting Facility",
			Description:          "Community composting site",
			Address:              "4 Pigeon House Road, Dublin, Ireland",
			ContactInfo:          "compost@ringsend.ie",
			Latitude:             53.3410,
			Longitude:            -6.2180,
			PickupAvailable:      false,
			PickupRadius:         0,
			AcceptsFoodDonations: false,
			ServiceType:          entities.ServiceTypeCompostingFacility,
			Hours:                entities.DefaultWeeklyHours(),
			AcceptedItems:        []string{"vegetable scraps", "coffee grounds"},
			NonAcceptedItems:     []string{"meat", "dairy"},
			DonationGuidelines:   []string{"No plastic packaging"},
		},
	}
	for _, svc := range services {
		if existing := catalog.FindByName(svc.Name); existing != nil {
			svc.ID = existing.ID
		}
		if err := catalog.Add(ctx, svc); err != nil {
			return err
		}
	}

	fmt.Println("Sample data seeded")
	return nil
}

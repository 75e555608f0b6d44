package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodCategory string

const (
	CategoryVegetable    FoodCategory = "VEGETABLE"
	CategoryFruit        FoodCategory = "FRUIT"
	CategoryDairy        FoodCategory = "DAIRY"
	CategoryGrain        FoodCategory = "GRAIN"
	CategoryProtein      FoodCategory = "PROTEIN"
	CategoryLeftoverMeal FoodCategory = "LEFTOVER_MEAL"
	CategoryOther        FoodCategory = "OTHER"
)

var FoodCategories = []FoodCategory{
	CategoryVegetable,
	CategoryFruit,
	CategoryDairy,
	CategoryGrain,
	CategoryProtein,
	CategoryLeftoverMeal,
	CategoryOther,
}

func ParseFoodCategory(s string) (FoodCategory, bool) {
	for _, c := range FoodCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

type FoodItemStatus string

const (
	StatusAvailable          FoodItemStatus = "AVAILABLE"
	StatusScheduledForPickup FoodItemStatus = "SCHEDULED_FOR_PICKUP"
	StatusDonated            FoodItemStatus = "DONATED"
	StatusComposted          FoodItemStatus = "COMPOSTED"
)

// foodItemTransitions is the complete event-driven transition table for food
// items. Callers may still force any status administratively; everything an
// event does goes through this table.
var foodItemTransitions = map[FoodItemStatus][]FoodItemStatus{
	StatusAvailable:          {StatusScheduledForPickup},
	StatusScheduledForPickup: {StatusDonated, StatusComposted, StatusAvailable},
	StatusDonated:            {},
	StatusComposted:          {},
}

func (s FoodItemStatus) CanTransitionTo(next FoodItemStatus) bool {
	for _, allowed := range foodItemTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s FoodItemStatus) IsTerminal() bool {
	return len(foodItemTransitions[s]) == 0
}

const expiringSoonHorizon = 48 * time.Hour

type FoodItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Category       FoodCategory   `gorm:"not null" json:"category"`
	Quantity       float64        `gorm:"not null" json:"quantity"`
	QuantityUnit   string         `gorm:"column:quantityUnit" json:"quantity_unit"`
	ExpirationDate time.Time      `gorm:"column:expirationDate" json:"expiration_date"`
	Status         FoodItemStatus `gorm:"not null" json:"status"`
	UserID         uuid.UUID      `gorm:"column:userId" json:"user_id"`
	CreatedAt      time.Time      `gorm:"column:createdAt" json:"created_at"`
	Description    string         `json:"description"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (f *FoodItem) IsExpired() bool {
	return f.ExpirationDate.Before(time.Now())
}

func (f *FoodItem) IsExpiringSoon() bool {
	now := time.Now()
	return f.ExpirationDate.After(now) && f.ExpirationDate.Before(now.Add(expiringSoonHorizon))
}

// DaysUntilExpiry returns whole days until the item expires, floored at 0
// once expired.
func (f *FoodItem) DaysUntilExpiry() int {
	if f.IsExpired() {
		return 0
	}
	return int(time.Until(f.ExpirationDate).Hours() / 24)
}

func (f *FoodItem) Recommendation() string {
	switch {
	case f.IsExpired():
		return "This item has expired. Consider composting."
	case f.IsExpiringSoon():
		return "This item will expire soon. Consider immediate donation."
	case f.DaysUntilExpiry() < 5:
		return "Schedule a pickup or drop-off soon to avoid waste."
	default:
		return "This item has good shelf life. Perfect for donation."
	}
}

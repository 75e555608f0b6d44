package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"not null" json:"-"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Location   string    `json:"location"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CreatedAt  time.Time `gorm:"column:createdAt" json:"created_at"`
	RememberMe bool      `gorm:"column:remember_me" json:"remember_me"`

	// City is derived from Location and never persisted directly.
	City      string      `gorm:"-" json:"city"`
	FoodItems []*FoodItem `gorm:"foreignKey:UserID" json:"food_items,omitempty"`
}

// CityName returns the explicit city when set, otherwise the segment of the
// location string before the first comma ("Dublin, Ireland" -> "Dublin").
// Empty when neither is available; callers apply the configured fallback.
func (u *User) CityName() string {
	if u.City != "" {
		return u.City
	}
	return cityFromLocation(u.Location)
}

func cityFromLocation(location string) string {
	if location == "" {
		return ""
	}
	if idx := strings.Index(location, ","); idx >= 0 {
		return strings.TrimSpace(location[:idx])
	}
	return strings.TrimSpace(location)
}

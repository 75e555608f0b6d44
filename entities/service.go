package entities

import (
	"strings"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServiceTypeFoodBank           ServiceType = "FOOD_BANK"
	ServiceTypeCommunityGarden    ServiceType = "COMMUNITY_GARDEN"
	ServiceTypeCompostingFacility ServiceType = "COMPOSTING_FACILITY"
	ServiceTypeUrbanFarm          ServiceType = "URBAN_FARM"
	ServiceTypeRestaurant         ServiceType = "RESTAURANT"
	ServiceTypeCommunityFridge    ServiceType = "COMMUNITY_FRIDGE"
	ServiceTypeFoodDonationCenter ServiceType = "FOOD_DONATION_CENTER"
	ServiceTypeSoupKitchen        ServiceType = "SOUP_KITCHEN"
	ServiceTypeFoodPantry         ServiceType = "FOOD_PANTRY"
)

var ServiceTypes = []ServiceType{
	ServiceTypeFoodBank,
	ServiceTypeCommunityGarden,
	ServiceTypeCompostingFacility,
	ServiceTypeUrbanFarm,
	ServiceTypeRestaurant,
	ServiceTypeCommunityFridge,
	ServiceTypeFoodDonationCenter,
	ServiceTypeSoupKitchen,
	ServiceTypeFoodPantry,
}

func ParseServiceType(s string) (ServiceType, bool) {
	for _, t := range ServiceTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// LocalService is the root of the service aggregate. The hours map, item
// lists and guidelines live in child tables and are assembled by the
// persistence layer; gorm never touches them directly.
type LocalService struct {
	ID                   uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                 string      `gorm:"uniqueIndex;not null" json:"name"`
	Description          string      `json:"description"`
	Address              string      `gorm:"not null" json:"address"`
	ContactInfo          string      `gorm:"column:contactInfo;not null" json:"contact_info"`
	Latitude             float64     `json:"latitude"`
	Longitude            float64     `json:"longitude"`
	PickupAvailable      bool        `gorm:"column:pickupAvailable" json:"pickup_available"`
	PickupRadius         float64     `gorm:"column:pickupRadius" json:"pickup_radius"`
	AcceptsFoodDonations bool        `gorm:"column:acceptsFoodDonations" json:"accepts_food_donations"`
	ServiceType          ServiceType `gorm:"column:serviceType;not null" json:"service_type"`

	City               string      `gorm:"-" json:"city"`
	Hours              WeeklyHours `gorm:"-" json:"hours"`
	AcceptedItems      []string    `gorm:"-" json:"accepted_items"`
	NonAcceptedItems   []string    `gorm:"-" json:"non_accepted_items"`
	DonationGuidelines []string    `gorm:"-" json:"donation_guidelines"`

	// CalculatedDistance caches the distance from the last matching pass.
	// Valid only immediately after that pass.
	CalculatedDistance float64 `gorm:"-" json:"calculated_distance,omitempty"`
}

func (LocalService) TableName() string {
	return "services"
}

// CityName returns the explicit city when set, otherwise the city segment of
// the address ("123 Main St, Dublin, Ireland" -> "Dublin").
func (s *LocalService) CityName() string {
	if s.City != "" {
		return s.City
	}
	parts := strings.Split(s.Address, ",")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[1])
	}
	return "Unknown"
}

// AcceptsDonatedFood reports whether the service takes food donations,
// either by type or by its explicit flag.
func (s *LocalService) AcceptsDonatedFood() bool {
	switch s.ServiceType {
	case ServiceTypeFoodBank, ServiceTypeFoodDonationCenter, ServiceTypeSoupKitchen, ServiceTypeFoodPantry:
		return true
	}
	return s.AcceptsFoodDonations
}

type AcceptedItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ServiceID uuid.UUID `gorm:"column:serviceId" json:"service_id"`
	ItemName  string    `gorm:"column:itemName;not null" json:"item_name"`
}

type NonAcceptedItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ServiceID uuid.UUID `gorm:"column:serviceId" json:"service_id"`
	ItemName  string    `gorm:"column:itemName;not null" json:"item_name"`
}

type DonationGuideline struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ServiceID uuid.UUID `gorm:"column:serviceId" json:"service_id"`
	Guideline string    `gorm:"not null" json:"guideline"`
}

package domain

import "errors"

var (
	MessageSuccessSaveService   = "service saved successfully"
	MessageSuccessGetServices   = "services retrieved successfully"
	MessageSuccessDeleteService = "service deleted successfully"

	MessageFailedSaveService   = "failed to save service"
	MessageFailedGetServices   = "failed to retrieve services"
	MessageFailedDeleteService = "failed to delete service"

	ErrServiceNotFound       = errors.New("service not found")
	ErrServiceNameRequired   = errors.New("service name cannot be empty")
	ErrServiceFieldsRequired = errors.New("service address and contact info cannot be empty")
	ErrInvalidServiceType    = errors.New("invalid service type")
	ErrInvalidPickupRadius   = errors.New("pickup radius cannot be negative")
	ErrInvalidTimeSlot       = errors.New("invalid operating hours time slot")
)

type (
	HoursEntry struct {
		// DayOfWeek uses the stored convention, 0=Monday .. 6=Sunday.
		DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
		OpenTime  string `json:"open_time" validate:"required"`
		CloseTime string `json:"close_time" validate:"required"`
	}

	SaveServiceRequest struct {
		Name                 string       `json:"name" validate:"required"`
		Description          string       `json:"description" validate:"omitempty"`
		Address              string       `json:"address" validate:"required"`
		ContactInfo          string       `json:"contact_info" validate:"required"`
		City                 string       `json:"city" validate:"omitempty"`
		Latitude             float64      `json:"latitude" validate:"omitempty,min=-90,max=90"`
		Longitude            float64      `json:"longitude" validate:"omitempty,min=-180,max=180"`
		PickupAvailable      bool         `json:"pickup_available"`
		PickupRadius         float64      `json:"pickup_radius" validate:"gte=0"`
		AcceptsFoodDonations bool         `json:"accepts_food_donations"`
		ServiceType          string       `json:"service_type" validate:"required"`
		Hours                []HoursEntry `json:"hours" validate:"omitempty,dive"`
		AcceptedItems        []string     `json:"accepted_items" validate:"omitempty"`
		NonAcceptedItems     []string     `json:"non_accepted_items" validate:"omitempty"`
		DonationGuidelines   []string     `json:"donation_guidelines" validate:"omitempty"`
	}

	ServiceResponse struct {
		ID                   string       `json:"id"`
		Name                 string       `json:"name"`
		Description          string       `json:"description"`
		Address              string       `json:"address"`
		ContactInfo          string       `json:"contact_info"`
		City                 string       `json:"city"`
		Latitude             float64      `json:"latitude"`
		Longitude            float64      `json:"longitude"`
		PickupAvailable      bool         `json:"pickup_available"`
		PickupRadius         float64      `json:"pickup_radius"`
		AcceptsFoodDonations bool         `json:"accepts_food_donations"`
		ServiceType          string       `json:"service_type"`
		Hours                []HoursEntry `json:"hours"`
		AcceptedItems        []string     `json:"accepted_items"`
		NonAcceptedItems     []string     `json:"non_accepted_items"`
		DonationGuidelines   []string     `json:"donation_guidelines"`
		CalculatedDistance   float64      `json:"calculated_distance,omitempty"`
	}
)

package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodItem    = "food item added successfully"
	MessageSuccessUpdateFoodItem = "food item updated successfully"
	MessageSuccessDeleteFoodItem = "food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessUpdateStatus   = "food item status updated successfully"
	MessageSuccessGetStats       = "statistics retrieved successfully"

	MessageFailedAddFoodItem    = "failed to add food item"
	MessageFailedUpdateFoodItem = "failed to update food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedUpdateStatus   = "failed to update food item status"
	MessageFailedGetStats       = "failed to retrieve statistics"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidCategory    = errors.New("invalid food category")
	ErrInvalidItemStatus  = errors.New("invalid food item status")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		Name           string  `json:"name" validate:"required"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		QuantityUnit   string  `json:"quantity_unit" validate:"required"`
		ExpirationDate string  `json:"expiration_date" validate:"required"`
		Category       string  `json:"category" validate:"required"`
		Description    string  `json:"description" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Name           string  `json:"name" validate:"omitempty"`
		Quantity       float64 `json:"quantity" validate:"omitempty,gt=0"`
		QuantityUnit   string  `json:"quantity_unit" validate:"omitempty"`
		ExpirationDate string  `json:"expiration_date" validate:"omitempty"`
		Category       string  `json:"category" validate:"omitempty"`
		Description    string  `json:"description" validate:"omitempty"`
	}

	UpdateItemStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}

	FoodItemResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Quantity       float64   `json:"quantity"`
		QuantityUnit   string    `json:"quantity_unit"`
		ExpirationDate time.Time `json:"expiration_date"`
		Category       string    `json:"category"`
		Status         string    `json:"status"`
		Description    string    `json:"description"`
		CreatedAt      time.Time `json:"created_at"`

		IsExpired       bool   `json:"is_expired"`
		IsExpiringSoon  bool   `json:"is_expiring_soon"`
		DaysUntilExpiry int    `json:"days_until_expiry"`
		Recommendation  string `json:"recommendation"`
	}

	FoodStatsResponse struct {
		TotalItems    int     `json:"total_items"`
		Available     int     `json:"available"`
		Scheduled     int     `json:"scheduled_for_pickup"`
		Donated       int     `json:"donated"`
		Composted     int     `json:"composted"`
		ExpiringSoon  int     `json:"expiring_soon"`
		Expired       int     `json:"expired"`
		TotalQuantity float64 `json:"total_quantity"`
		QuantityMoved float64 `json:"quantity_moved"`
	}
)

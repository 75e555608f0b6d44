package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessScheduleEvent = "event scheduled successfully"
	MessageSuccessGetEvents     = "events retrieved successfully"
	MessageSuccessAddItem       = "food item added to event"
	MessageSuccessRemoveItem    = "food item removed from event"
	MessageSuccessCompleteEvent = "event completed successfully"
	MessageSuccessCancelEvent   = "event cancelled successfully"

	MessageFailedScheduleEvent = "failed to schedule event"
	MessageFailedGetEvents     = "failed to retrieve events"
	MessageFailedAddItem       = "failed to add food item to event"
	MessageFailedRemoveItem    = "failed to remove food item from event"
	MessageFailedCompleteEvent = "failed to complete event"
	MessageFailedCancelEvent   = "failed to cancel event"

	ErrEventNotFound = errors.New("event not found")
	// ErrEventNotModifiable flags item-set or status mutation through an
	// event that is no longer SCHEDULED. Programmer error, never a no-op.
	ErrEventNotModifiable   = errors.New("event is not in a modifiable state")
	ErrItemAlreadyScheduled = errors.New("food item is already part of an active event")
	ErrItemNotInEvent       = errors.New("food item is not part of this event")
	ErrInvalidEventTime     = errors.New("invalid event time")
)

type (
	ScheduleEventRequest struct {
		Title         string   `json:"title" validate:"required"`
		Description   string   `json:"description" validate:"omitempty"`
		ScheduledTime string   `json:"scheduled_time" validate:"required"`
		ServiceName   string   `json:"service_name" validate:"required"`
		Notes         string   `json:"notes" validate:"omitempty"`
		FoodItemIDs   []string `json:"food_item_ids" validate:"omitempty,dive,uuid"`
	}

	EventItemRequest struct {
		FoodItemID string `json:"food_item_id" validate:"required,uuid"`
	}

	EventResponse struct {
		ID            string             `json:"id"`
		Title         string             `json:"title"`
		Description   string             `json:"description"`
		Location      string             `json:"location"`
		ScheduledTime time.Time          `json:"scheduled_time"`
		EndTime       time.Time          `json:"end_time"`
		ServiceName   string             `json:"service_name"`
		EventType     string             `json:"event_type"`
		Status        string             `json:"status"`
		Notes         string             `json:"notes"`
		IsUpcoming    bool               `json:"is_upcoming"`
		ItemCount     int                `json:"item_count"`
		TotalQuantity float64            `json:"total_quantity"`
		FoodItems     []FoodItemResponse `json:"food_items"`
	}
)

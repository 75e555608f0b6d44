package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypePickup  EventType = "PICKUP"
	EventTypeDropOff EventType = "DROP_OFF"
)

type EventStatus string

const (
	EventStatusScheduled EventStatus = "SCHEDULED"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// eventTransitions is the complete transition table for scheduled events.
// COMPLETED and CANCELLED are terminal.
var eventTransitions = map[EventStatus][]EventStatus{
	EventStatusScheduled: {EventStatusCompleted, EventStatusCancelled},
	EventStatusCompleted: {},
	EventStatusCancelled: {},
}

func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	for _, allowed := range eventTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s EventStatus) IsTerminal() bool {
	return len(eventTransitions[s]) == 0
}

// ScheduledEvent persists only the event row columns; the requesting user,
// the item set, the event type and the lifecycle status live in memory and
// are rebuilt by the event service on load.
type ScheduledEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `gorm:"column:startTime" json:"start_time"`
	EndTime     time.Time `gorm:"column:endTime" json:"end_time"`
	ServiceID   uuid.UUID `gorm:"column:serviceId" json:"service_id"`

	Service   *LocalService `gorm:"-" json:"service,omitempty"`
	User      *User         `gorm:"-" json:"user,omitempty"`
	EventType EventType     `gorm:"-" json:"event_type"`
	Status    EventStatus   `gorm:"-" json:"status"`
	FoodItems []*FoodItem   `gorm:"-" json:"food_items,omitempty"`
	Notes     string        `gorm:"-" json:"notes"`
}

func (ScheduledEvent) TableName() string {
	return "events"
}

// EventTypeFromDescription derives the type from free text: a description
// mentioning "pickup" makes a pickup event, anything else a drop-off.
func EventTypeFromDescription(description string) EventType {
	if strings.Contains(strings.ToLower(description), "pickup") {
		return EventTypePickup
	}
	return EventTypeDropOff
}

func (e *ScheduledEvent) IsUpcoming() bool {
	return e.Status == EventStatusScheduled && e.StartTime.After(time.Now())
}

func (e *ScheduledEvent) ItemCount() int {
	return len(e.FoodItems)
}

func (e *ScheduledEvent) TotalQuantity() float64 {
	var total float64
	for _, item := range e.FoodItems {
		total += item.Quantity
	}
	return total
}

// CompletedItemStatus is the status fanned out to every included item when
// the event completes: pickups donate, drop-offs compost only when the
// target service is a composting facility.
func (e *ScheduledEvent) CompletedItemStatus() FoodItemStatus {
	if e.EventType == EventTypePickup {
		return StatusDonated
	}
	if e.Service != nil && e.Service.ServiceType == ServiceTypeCompostingFacility {
		return StatusComposted
	}
	return StatusDonated
}

package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeFromDescription(t *testing.T) {
	assert.Equal(t, EventTypePickup, EventTypeFromDescription("Weekly Pickup round"))
	assert.Equal(t, EventTypeDropOff, EventTypeFromDescription("bring your scraps"))
	assert.Equal(t, EventTypeDropOff, EventTypeFromDescription(""))
}

func TestCompletedItemStatus(t *testing.T) {
	pickup := &ScheduledEvent{
		EventType: EventTypePickup,
		Service:   &LocalService{ServiceType: ServiceTypeCompostingFacility},
	}
	assert.Equal(t, StatusDonated, pickup.CompletedItemStatus())

	dropOffCompost := &ScheduledEvent{
		EventType: EventTypeDropOff,
		Service:   &LocalService{ServiceType: ServiceTypeCompostingFacility},
	}
	assert.Equal(t, StatusComposted, dropOffCompost.CompletedItemStatus())

	dropOffOther := &ScheduledEvent{
		EventType: EventTypeDropOff,
		Service:   &LocalService{ServiceType: ServiceTypeFoodBank},
	}
	assert.Equal(t, StatusDonated, dropOffOther.CompletedItemStatus())
}

func TestEventTransitions(t *testing.T) {
	assert.True(t, EventStatusScheduled.CanTransitionTo(EventStatusCompleted))
	assert.True(t, EventStatusScheduled.CanTransitionTo(EventStatusCancelled))
	assert.True(t, EventStatusCompleted.IsTerminal())
	assert.True(t, EventStatusCancelled.IsTerminal())
	assert.False(t, EventStatusCompleted.CanTransitionTo(EventStatusScheduled))
}

func TestIsUpcoming(t *testing.T) {
	future := &ScheduledEvent{Status: EventStatusScheduled, StartTime: time.Now().Add(time.Hour)}
	assert.True(t, future.IsUpcoming())

	past := &ScheduledEvent{Status: EventStatusScheduled, StartTime: time.Now().Add(-time.Hour)}
	assert.False(t, past.IsUpcoming())

	cancelled := &ScheduledEvent{Status: EventStatusCancelled, StartTime: time.Now().Add(time.Hour)}
	assert.False(t, cancelled.IsUpcoming())
}

func TestEventTotals(t *testing.T) {
	ev := &ScheduledEvent{
		FoodItems: []*FoodItem{
			{Quantity: 2},
			{Quantity: 1.5},
		},
	}
	assert.Equal(t, 2, ev.ItemCount())
	assert.InDelta(t, 3.5, ev.TotalQuantity(), 0.001)
}

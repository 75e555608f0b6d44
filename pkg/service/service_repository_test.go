package service

import (
	"GreenCompost-Backend/entities"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowTables mirrors the four child tables, with the same full-replace write
// semantics the repository uses: every save deletes the aggregate's rows and
// re-inserts the current collections.
type rowTables struct {
	hours       []*entities.OperatingHour
	accepted    []*entities.AcceptedItem
	nonAccepted []*entities.NonAcceptedItem
	guidelines  []*entities.DonationGuideline
}

func (t *rowTables) save(service *entities.LocalService) {
	keep := func(serviceID uuid.UUID) bool { return serviceID != service.ID }

	var hours []*entities.OperatingHour
	for _, row := range t.hours {
		if keep(row.ServiceID) {
			hours = append(hours, row)
		}
	}
	t.hours = hours
	for _, row := range hourRows(service) {
		t.hours = append(t.hours, row.(*entities.OperatingHour))
	}

	var accepted []*entities.AcceptedItem
	for _, row := range t.accepted {
		if keep(row.ServiceID) {
			accepted = append(accepted, row)
		}
	}
	t.accepted = accepted
	for _, row := range acceptedRows(service) {
		t.accepted = append(t.accepted, row.(*entities.AcceptedItem))
	}

	var nonAccepted []*entities.NonAcceptedItem
	for _, row := range t.nonAccepted {
		if keep(row.ServiceID) {
			nonAccepted = append(nonAccepted, row)
		}
	}
	t.nonAccepted = nonAccepted
	for _, row := range nonAcceptedRows(service) {
		t.nonAccepted = append(t.nonAccepted, row.(*entities.NonAcceptedItem))
	}

	var guidelines []*entities.DonationGuideline
	for _, row := range t.guidelines {
		if keep(row.ServiceID) {
			guidelines = append(guidelines, row)
		}
	}
	t.guidelines = guidelines
	for _, row := range guidelineRows(service) {
		t.guidelines = append(t.guidelines, row.(*entities.DonationGuideline))
	}
}

// load reassembles the aggregate from the rows the way loadChildren does,
// including the day-index to time.Weekday conversion.
func (t *rowTables) load(serviceID uuid.UUID) *entities.LocalService {
	service := &entities.LocalService{ID: serviceID, Hours: entities.WeeklyHours{}}
	for _, row := range t.hours {
		if row.ServiceID != serviceID {
			continue
		}
		day, ok := entities.WeekdayFromIndex(row.DayOfWeek)
		if !ok {
			continue
		}
		service.Hours[day] = entities.TimeSlot{Open: row.OpenTime, Close: row.CloseTime}
	}
	for _, row := range t.accepted {
		if row.ServiceID == serviceID {
			service.AcceptedItems = append(service.AcceptedItems, row.ItemName)
		}
	}
	for _, row := range t.nonAccepted {
		if row.ServiceID == serviceID {
			service.NonAcceptedItems = append(service.NonAcceptedItems, row.ItemName)
		}
	}
	for _, row := range t.guidelines {
		if row.ServiceID == serviceID {
			service.DonationGuidelines = append(service.DonationGuidelines, row.Guideline)
		}
	}
	return service
}

func populatedService() *entities.LocalService {
	hours := entities.DefaultWeeklyHours()
	hours[time.Sunday] = entities.TimeSlot{Open: "10:00", Close: "14:00"}

	return &entities.LocalService{
		ID:                 uuid.New(),
		Name:               "Dublin Food Bank",
		Address:            "12 Abbey Street, Dublin, Ireland",
		ContactInfo:        "info@example.com",
		ServiceType:        entities.ServiceTypeFoodBank,
		Hours:              hours,
		AcceptedItems:      []string{"vegetables", "fruit", "tinned goods"},
		NonAcceptedItems:   []string{"opened packages"},
		DonationGuidelines: []string{"Food must be within its expiration date"},
	}
}

func TestAggregateRowRoundTrip(t *testing.T) {
	service := populatedService()
	tables := &rowTables{}
	tables.save(service)

	loaded := tables.load(service.ID)
	assert.Equal(t, service.Hours, loaded.Hours)
	assert.ElementsMatch(t, service.AcceptedItems, loaded.AcceptedItems)
	assert.ElementsMatch(t, service.NonAcceptedItems, loaded.NonAcceptedItems)
	assert.ElementsMatch(t, service.DonationGuidelines, loaded.DonationGuidelines)

	// The stored day index follows the Monday=0 convention.
	for _, row := range tables.hours {
		if row.DayOfWeek == 6 {
			assert.Equal(t, "10:00", row.OpenTime)
		}
	}
}

func TestAggregateSaveTwiceIsIdempotent(t *testing.T) {
	service := populatedService()
	tables := &rowTables{}

	tables.save(service)
	tables.save(service)

	assert.Len(t, tables.hours, 6)
	assert.Len(t, tables.accepted, 3)
	assert.Len(t, tables.nonAccepted, 1)
	assert.Len(t, tables.guidelines, 1)

	loaded := tables.load(service.ID)
	assert.Equal(t, service.Hours, loaded.Hours)
	assert.ElementsMatch(t, service.AcceptedItems, loaded.AcceptedItems)
	assert.ElementsMatch(t, service.NonAcceptedItems, loaded.NonAcceptedItems)
	assert.ElementsMatch(t, service.DonationGuidelines, loaded.DonationGuidelines)
}

func TestAggregateSaveReplacesChangedChildren(t *testing.T) {
	service := populatedService()
	tables := &rowTables{}
	tables.save(service)

	service.AcceptedItems = []string{"bread"}
	service.Hours = entities.WeeklyHours{time.Monday: {Open: "08:00", Close: "12:00"}}
	tables.save(service)

	loaded := tables.load(service.ID)
	assert.ElementsMatch(t, []string{"bread"}, loaded.AcceptedItems)
	require.Len(t, loaded.Hours, 1)
	assert.Equal(t, entities.TimeSlot{Open: "08:00", Close: "12:00"}, loaded.Hours[time.Monday])

	// Rows of other aggregates are untouched by the replace.
	other := populatedService()
	other.Name = "Cork Soup Kitchen"
	tables.save(other)
	tables.save(service)
	assert.Len(t, tables.load(other.ID).AcceptedItems, 3)
}

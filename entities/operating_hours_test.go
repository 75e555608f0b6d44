package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayIndexRoundTrip(t *testing.T) {
	assert.Equal(t, 0, DayIndex(time.Monday))
	assert.Equal(t, 6, DayIndex(time.Sunday))

	for index := 0; index <= 6; index++ {
		day, ok := WeekdayFromIndex(index)
		assert.True(t, ok)
		assert.Equal(t, index, DayIndex(day))
	}

	_, ok := WeekdayFromIndex(-1)
	assert.False(t, ok)
	_, ok = WeekdayFromIndex(7)
	assert.False(t, ok)
}

func TestTimeSlot(t *testing.T) {
	slot := TimeSlot{Open: "09:00", Close: "17:00"}

	assert.InDelta(t, 8.0, slot.DurationHours(), 0.001)
	assert.True(t, slot.Contains("09:00"))
	assert.True(t, slot.Contains("12:30"))
	assert.True(t, slot.Contains("17:00"))
	assert.False(t, slot.Contains("17:01"))
	assert.False(t, slot.Contains("not a time"))
}

func TestDefaultWeeklyHours(t *testing.T) {
	hours := DefaultWeeklyHours()

	assert.True(t, hours.IsOpenOn(time.Monday))
	assert.True(t, hours.IsOpenOn(time.Friday))
	assert.False(t, hours.IsOpenOn(time.Saturday))
	assert.False(t, hours.IsOpenOn(time.Sunday))

	assert.True(t, hours.IsOpenAt(time.Wednesday, "10:00"))
	assert.False(t, hours.IsOpenAt(time.Wednesday, "18:00"))
	assert.False(t, hours.IsOpenAt(time.Sunday, "10:00"))

	assert.InDelta(t, 40.0, hours.TotalWeeklyHours(), 0.001)
}

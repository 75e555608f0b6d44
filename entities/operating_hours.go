package entities

import (
	"time"

	"github.com/google/uuid"
)

const clockLayout = "15:04"

// TimeSlot holds the open and close times for one day as "HH:MM" strings,
// the same shape they are stored in. Close must not be before open; slots do
// not wrap past midnight.
type TimeSlot struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

func (t TimeSlot) DurationHours() float64 {
	open, err := time.Parse(clockLayout, t.Open)
	if err != nil {
		return 0
	}
	close_, err := time.Parse(clockLayout, t.Close)
	if err != nil {
		return 0
	}
	return close_.Sub(open).Hours()
}

// Contains reports whether the clock time "HH:MM" falls inside the slot,
// boundaries included.
func (t TimeSlot) Contains(clock string) bool {
	at, err := time.Parse(clockLayout, clock)
	if err != nil {
		return false
	}
	open, err := time.Parse(clockLayout, t.Open)
	if err != nil {
		return false
	}
	close_, err := time.Parse(clockLayout, t.Close)
	if err != nil {
		return false
	}
	return !at.Before(open) && !at.After(close_)
}

// WeeklyHours maps a weekday to its time slot. A missing day means closed.
type WeeklyHours map[time.Weekday]TimeSlot

func (w WeeklyHours) IsOpenOn(day time.Weekday) bool {
	_, ok := w[day]
	return ok
}

func (w WeeklyHours) IsOpenAt(day time.Weekday, clock string) bool {
	slot, ok := w[day]
	if !ok {
		return false
	}
	return slot.Contains(clock)
}

func (w WeeklyHours) TotalWeeklyHours() float64 {
	var total float64
	for _, slot := range w {
		total += slot.DurationHours()
	}
	return total
}

// DefaultWeeklyHours is Monday-Friday 09:00-17:00.
func DefaultWeeklyHours() WeeklyHours {
	hours := WeeklyHours{}
	for _, day := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	} {
		hours[day] = TimeSlot{Open: "09:00", Close: "17:00"}
	}
	return hours
}

// The store uses a Monday=0..Sunday=6 day index; time.Weekday counts from
// Sunday. The two helpers below are the only place that mapping lives.

func DayIndex(day time.Weekday) int {
	return (int(day) + 6) % 7
}

func WeekdayFromIndex(index int) (time.Weekday, bool) {
	if index < 0 || index > 6 {
		return time.Sunday, false
	}
	return time.Weekday((index + 1) % 7), true
}

type OperatingHour struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ServiceID uuid.UUID `gorm:"column:serviceId" json:"service_id"`
	DayOfWeek int       `gorm:"column:dayOfWeek" json:"day_of_week"`
	OpenTime  string    `gorm:"column:openTime" json:"open_time"`
	CloseTime string    `gorm:"column:closeTime" json:"close_time"`
}

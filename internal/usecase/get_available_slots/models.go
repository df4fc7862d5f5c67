package get_available_slots

import (
	"time"

	"github.com/viamente/booking-service/internal/domain"
)

// ResourceKind which calendar the slots are computed for.
type ResourceKind string

const (
	KindRoom         ResourceKind = "room"
	KindPsychologist ResourceKind = "psychologist"
)

// Request free-slot enumeration over an inclusive date range.
type Request struct {
	Kind       ResourceKind
	ResourceID int64
	StartDate  time.Time
	EndDate    time.Time
	Hours      domain.WorkingHours // zero value falls back to practice defaults
}

// DaySlots free windows of one business day. A fully booked day is
// present with an empty slot list, which distinguishes it from a date
// outside the range.
type DaySlots struct {
	Date  time.Time
	Slots []string // "HH:MM - HH:MM"
}

// Response ordered sequence of business days and their free slots.
type Response struct {
	Kind       ResourceKind
	ResourceID int64
	StartDate  time.Time
	EndDate    time.Time
	Days       []DaySlots
}

package domain

import (
	"time"

	"github.com/viamente/booking-service/pkg/types"
)

// WorkingHours practice-level slot generation bounds.
type WorkingHours struct {
	Opening             types.TimeString
	Closing             types.TimeString
	SlotDurationMinutes int
}

// DefaultWorkingHours returns the practice defaults, 08:00-18:00 with
// hourly slots.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Opening:             DefaultOpeningTime,
		Closing:             DefaultClosingTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// Normalize fills empty or out-of-range fields with the defaults.
func (w WorkingHours) Normalize() WorkingHours {
	if w.Opening.Validate() != nil {
		w.Opening = DefaultOpeningTime
	}
	if w.Closing.Validate() != nil || !w.Opening.IsBefore(w.Closing) {
		w.Closing = DefaultClosingTime
	}
	if w.SlotDurationMinutes < MinSlotDurationMinutes || w.SlotDurationMinutes > MaxSlotDurationMinutes {
		w.SlotDurationMinutes = DefaultSlotDurationMinutes
	}
	return w
}

// IsBusinessDay reports whether the practice is open on the given
// date. The practice does not see patients on weekends.
func IsBusinessDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

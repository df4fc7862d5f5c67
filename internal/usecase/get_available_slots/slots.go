package get_available_slots

import (
	"fmt"
	"time"

	"github.com/viamente/booking-service/internal/domain"
)

// enumerateBusinessDays lists every date between start and end
// inclusive, skipping Saturdays and Sundays.
func enumerateBusinessDays(start, end time.Time) []time.Time {
	days := make([]time.Time, 0)
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if domain.IsBusinessDay(d) {
			days = append(days, d)
		}
	}
	return days
}

// freeSlotsForDay generates consecutive candidate slots from the
// opening time and keeps each one that overlaps no busy interval.
// Candidates whose end would pass the closing time are not generated.
// A slot ending exactly where a busy interval begins is kept, touching
// endpoints do not conflict.
func freeSlotsForDay(busy []domain.Interval, hours domain.WorkingHours) ([]string, error) {
	slots := make([]string, 0)

	current := hours.Opening
	for {
		slotEnd, err := current.AddMinutes(hours.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(hours.Closing) {
			break
		}

		candidate := domain.Interval{Start: current, End: slotEnd}
		if !overlapsAny(candidate, busy) {
			slots = append(slots, fmt.Sprintf("%s - %s", candidate.Start, candidate.End))
		}

		current = slotEnd
	}

	return slots, nil
}

func overlapsAny(candidate domain.Interval, busy []domain.Interval) bool {
	for _, interval := range busy {
		if candidate.Overlaps(interval) {
			return true
		}
	}
	return false
}

// dateOnly strips the time-of-day part so range iteration compares
// whole dates.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

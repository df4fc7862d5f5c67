package domain

import "github.com/viamente/booking-service/pkg/types"

// Interval half-open [Start, End) time window within one day.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps reports whether two intervals share at least one instant.
// Touching endpoints do not count, back-to-back bookings are allowed.
func (i Interval) Overlaps(other Interval) bool {
	return types.Overlaps(i.Start, i.End, other.Start, other.End)
}

// IsValid reports whether the window has positive length. Inverted and
// zero-length windows are rejected at validation time.
func (i Interval) IsValid() bool {
	return i.Start.Validate() == nil && i.End.Validate() == nil && i.Start.IsBefore(i.End)
}

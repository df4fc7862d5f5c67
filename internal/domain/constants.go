package domain

import "github.com/viamente/booking-service/pkg/types"

// Default practice configuration values
const (
	DefaultOpeningTime         = types.TimeString("08:00")
	DefaultClosingTime         = types.TimeString("18:00")
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 240
	MaxPatientNameLength   = 200
	MaxNotesLength         = 1000
	MaxPurposeLength       = 500
	MaxDateRangeDays       = 92 // roughly one quarter of availability at a time
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses every known appointment status.
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCanceled,
	StatusCompleted,
	StatusFirstSession,
	StatusPendingConfirmation,
}

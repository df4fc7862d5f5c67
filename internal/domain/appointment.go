package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/viamente/booking-service/pkg/types"
)

// AppointmentStatus represents the status of a patient appointment
type AppointmentStatus string

const (
	StatusScheduled           AppointmentStatus = "scheduled"
	StatusConfirmed           AppointmentStatus = "confirmed"
	StatusCanceled            AppointmentStatus = "canceled"
	StatusCompleted           AppointmentStatus = "completed"
	StatusFirstSession        AppointmentStatus = "first-session"
	StatusPendingConfirmation AppointmentStatus = "pending-confirmation"
)

// Appointment represents a patient session in the practice calendar.
// Times are wall-clock in the venue's local time, no timezone.
type Appointment struct {
	ID             uuid.UUID
	PatientName    string
	PsychologistID int64
	RoomID         int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         AppointmentStatus
	Notes          *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time
// window. Canceled appointments do not block the calendar.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCanceled
}

// Interval returns the appointment's half-open time window.
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}

// ValidStatus reports whether s is one of the known statuses. The
// transition graph is deliberately unconstrained, staff may move an
// appointment between any two statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCanceled,
		StatusCompleted, StatusFirstSession, StatusPendingConfirmation:
		return true
	default:
		return false
	}
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/viamente/booking-service/pkg/types"
)

// RoomBooking represents a room reservation. One is created
// automatically alongside every appointment (dual-entity booking) and
// they can also be created directly for non-patient use, e.g. internal
// meetings.
type RoomBooking struct {
	ID             uuid.UUID
	RoomID         int64
	PsychologistID int64
	AppointmentID  *uuid.UUID // nil for direct reservations
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Purpose        *string

	CreatedAt time.Time
}

// Interval returns the booking's half-open time window.
func (b *RoomBooking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// IsCompanion returns true if the booking was materialized for an
// appointment rather than reserved directly.
func (b *RoomBooking) IsCompanion() bool {
	return b.AppointmentID != nil
}

// AppointmentPurpose builds the purpose text for a companion booking.
func AppointmentPurpose(patientName string) string {
	return fmt.Sprintf("Appointment with %s", patientName)
}

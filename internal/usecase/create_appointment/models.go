package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/pkg/types"
)

// Request staff booking request.
type Request struct {
	PatientName    string
	PsychologistID int64
	RoomID         int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         domain.AppointmentStatus // empty defaults to "scheduled"
	Notes          *string
}

// Response the created appointment together with its companion room
// booking, both persisted in the same transaction.
type Response struct {
	ID             uuid.UUID
	PatientName    string
	PsychologistID int64
	RoomID         int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         domain.AppointmentStatus
	Notes          *string

	RoomBookingID uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(appt *domain.Appointment, bookingID uuid.UUID) *Response {
	return &Response{
		ID:             appt.ID,
		PatientName:    appt.PatientName,
		PsychologistID: appt.PsychologistID,
		RoomID:         appt.RoomID,
		Date:           appt.Date,
		StartTime:      appt.StartTime,
		EndTime:        appt.EndTime,
		Status:         appt.Status,
		Notes:          appt.Notes,
		RoomBookingID:  bookingID,
		CreatedAt:      appt.CreatedAt,
		UpdatedAt:      appt.UpdatedAt,
	}
}

package create_room_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/pkg/types"
)

// Request direct room reservation, not tied to an appointment.
type Request struct {
	RoomID         int64
	PsychologistID int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Purpose        *string
}

// Response the created room booking.
type Response struct {
	ID             uuid.UUID
	RoomID         int64
	PsychologistID int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Purpose        *string
	CreatedAt      time.Time
}

func fromDomain(booking *domain.RoomBooking) *Response {
	return &Response{
		ID:             booking.ID,
		RoomID:         booking.RoomID,
		PsychologistID: booking.PsychologistID,
		Date:           booking.Date,
		StartTime:      booking.StartTime,
		EndTime:        booking.EndTime,
		Purpose:        booking.Purpose,
		CreatedAt:      booking.CreatedAt,
	}
}

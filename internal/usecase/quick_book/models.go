package quick_book

import (
	"time"

	"github.com/google/uuid"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/pkg/types"
)

// Request self-scheduling request coming from a shared link, no
// authenticated session behind it. The caller cannot choose a status.
type Request struct {
	PatientName    string
	PsychologistID int64
	RoomID         int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Notes          *string
}

// Response the created appointment, always pending staff confirmation.
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
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/viamente/booking-service/internal/domain"
)

// AppointmentRepository read path for psychologist calendars
type AppointmentRepository interface {
	ListByPsychologistAndDateRange(ctx context.Context, psychologistID int64, from, to time.Time) ([]*domain.Appointment, error)
}

// RoomBookingRepository read path for room calendars
type RoomBookingRepository interface {
	ListByRoomAndDateRange(ctx context.Context, roomID int64, from, to time.Time) ([]*domain.RoomBooking, error)
}

// CatalogRepository reference data lookups backing 404 semantics
type CatalogRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	GetPsychologist(ctx context.Context, id int64) (*domain.Psychologist, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

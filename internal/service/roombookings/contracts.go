package roombookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/viamente/booking-service/internal/domain"
)

// RoomBookingRepository room booking storage access.
type RoomBookingRepository interface {
	ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.RoomBooking, error)
}

// AppointmentRepository appointment lookups, used to spot companion
// bookings whose appointment is gone.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
}

// CatalogRepository room catalog access.
type CatalogRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger log interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

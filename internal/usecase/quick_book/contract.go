package quick_book

import (
	"context"
	"time"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/internal/integrations/notifier"
)

// AppointmentRepository appointment writes plus the psychologist
// calendar read the quick-booking path needs
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListByPsychologistAndDate(ctx context.Context, psychologistID int64, date time.Time) ([]*domain.Appointment, error)
}

// RoomBookingRepository room calendar reads and the companion write
type RoomBookingRepository interface {
	Create(ctx context.Context, booking *domain.RoomBooking) (*domain.RoomBooking, error)
	ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.RoomBooking, error)
}

// CatalogRepository reference data lookups
type CatalogRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	GetPsychologist(ctx context.Context, id int64) (*domain.Psychologist, error)
}

// TransactionManager keeps the conflict checks and both writes atomic
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier post-commit confirmation delivery, best effort
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, confirmation notifier.BookingConfirmation) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

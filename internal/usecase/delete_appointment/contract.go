package delete_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/viamente/booking-service/internal/domain"
)

// AppointmentRepository appointment storage access.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomBookingRepository room booking storage access.
type RoomBookingRepository interface {
	DeleteByAppointmentID(ctx context.Context, appointmentID uuid.UUID) error
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger log interface.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/viamente/booking-service/internal/domain"
)

// AppointmentRepository appointment storage access.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
}

// Logger log interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

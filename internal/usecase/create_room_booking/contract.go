package create_room_booking

import (
	"context"
	"time"

	"github.com/viamente/booking-service/internal/domain"
)

// RoomBookingRepository room calendar reads and the reservation write
type RoomBookingRepository interface {
	Create(ctx context.Context, booking *domain.RoomBooking) (*domain.RoomBooking, error)
	ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.RoomBooking, error)
}

// CatalogRepository reference data lookups
type CatalogRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	GetPsychologist(ctx context.Context, id int64) (*domain.Psychologist, error)
}

// TransactionManager keeps the conflict check and the write atomic
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

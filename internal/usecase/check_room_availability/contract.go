package check_room_availability

import (
	"context"
	"time"

	"github.com/viamente/booking-service/internal/domain"
)

// RoomBookingRepository room calendar read path
type RoomBookingRepository interface {
	ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.RoomBooking, error)
}

// CatalogRepository reference data lookup
type CatalogRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

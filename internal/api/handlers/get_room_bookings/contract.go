package get_room_bookings

import (
	"context"
	"time"

	"github.com/viamente/booking-service/internal/service/roombookings/models"
)

type RoomBookingService interface {
	ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) (*models.RoomBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

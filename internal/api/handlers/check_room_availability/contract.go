package check_room_availability

import (
	"context"

	checkRoomAvailability "github.com/viamente/booking-service/internal/usecase/check_room_availability"
)

type CheckRoomAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkRoomAvailability.Request) (*checkRoomAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_room_booking

import (
	"context"

	createRoomBooking "github.com/viamente/booking-service/internal/usecase/create_room_booking"
)

type CreateRoomBookingUseCase interface {
	Execute(ctx context.Context, req *createRoomBooking.Request) (*createRoomBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

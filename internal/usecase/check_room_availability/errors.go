package check_room_availability

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("check_room_availability: room not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("check_room_availability: invalid input data")

	// ErrInvalidTimeRange is returned when startTime is not strictly
	// before endTime
	ErrInvalidTimeRange = errors.New("check_room_availability: invalid time range")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("check_room_availability: internal error")
)

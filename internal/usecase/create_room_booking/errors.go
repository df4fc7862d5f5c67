package create_room_booking

import "errors"

var (
	// ErrRoomUnavailable is returned when the room already has an
	// overlapping booking in the requested window
	ErrRoomUnavailable = errors.New("create_room_booking: room is unavailable in this time window")

	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("create_room_booking: room not found")

	// ErrPsychologistNotFound is returned when the psychologist does not exist
	ErrPsychologistNotFound = errors.New("create_room_booking: psychologist not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_room_booking: invalid input data")

	// ErrInvalidTimeRange is returned when startTime is not strictly
	// before endTime
	ErrInvalidTimeRange = errors.New("create_room_booking: invalid time range")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("create_room_booking: internal error")
)

package create_appointment

import "errors"

var (
	// ErrRoomUnavailable is returned when the room already has an
	// overlapping booking in the requested window
	ErrRoomUnavailable = errors.New("create_appointment: room is unavailable in this time window")

	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("create_appointment: room not found")

	// ErrPsychologistNotFound is returned when the psychologist does not exist
	ErrPsychologistNotFound = errors.New("create_appointment: psychologist not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidTimeRange is returned when startTime is not strictly
	// before endTime
	ErrInvalidTimeRange = errors.New("create_appointment: invalid time range")

	// ErrInvalidStatus is returned for unknown appointment statuses
	ErrInvalidStatus = errors.New("create_appointment: invalid appointment status")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("create_appointment: internal error")
)

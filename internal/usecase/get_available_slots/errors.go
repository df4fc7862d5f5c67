package get_available_slots

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("get_available_slots: room not found")

	// ErrPsychologistNotFound is returned when the psychologist does not exist
	ErrPsychologistNotFound = errors.New("get_available_slots: psychologist not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDateRange is returned when the date range is inverted or too wide
	ErrInvalidDateRange = errors.New("get_available_slots: invalid date range")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("get_available_slots: internal error")
)

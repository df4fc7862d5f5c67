package quick_book

import "errors"

var (
	// ErrRoomUnavailable is returned when the room already has an
	// overlapping booking in the requested window
	ErrRoomUnavailable = errors.New("quick_book: room is unavailable in this time window")

	// ErrPsychologistUnavailable is returned when the psychologist
	// already has an overlapping appointment that day, in any room
	ErrPsychologistUnavailable = errors.New("quick_book: psychologist is unavailable in this time window")

	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("quick_book: room not found")

	// ErrPsychologistNotFound is returned when the psychologist does not exist
	ErrPsychologistNotFound = errors.New("quick_book: psychologist not found")

	// ErrInvalidInput is returned on malformed or missing request data
	ErrInvalidInput = errors.New("quick_book: invalid input data")

	// ErrInvalidTimeRange is returned when startTime is not strictly
	// before endTime
	ErrInvalidTimeRange = errors.New("quick_book: invalid time range")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("quick_book: internal error")
)

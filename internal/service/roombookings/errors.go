package roombookings

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")

	// ErrBookingInconsistent classifies a companion booking whose
	// appointment no longer exists. Such bookings still block the room
	// until removed.
	ErrBookingInconsistent = errors.New("room booking references a missing appointment")
)

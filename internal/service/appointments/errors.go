package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment exists
	// with the given id
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus is returned when the requested status is not a
	// known appointment status
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)

package delete_appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment exists
	// with the given id
	ErrAppointmentNotFound = errors.New("delete_appointment: appointment not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("delete_appointment: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("delete_appointment: internal error")
)

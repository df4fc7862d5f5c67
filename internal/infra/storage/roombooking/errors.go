package roombooking

import "errors"

var (
	// ErrBookingNotFound is returned when the room booking does not exist
	ErrBookingNotFound = errors.New("roombooking.repository: room booking not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("roombooking.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("roombooking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("roombooking.repository: failed to scan row")
)

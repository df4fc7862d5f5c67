package notifier

import "errors"

var (
	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse is returned when the gateway answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("notifier client: invalid response")
)

package catalog

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("catalog.repository: room not found")

	// ErrPsychologistNotFound is returned when the psychologist does not exist
	ErrPsychologistNotFound = errors.New("catalog.repository: psychologist not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)

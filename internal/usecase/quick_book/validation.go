package quick_book

import (
	"fmt"
	"strings"

	"github.com/viamente/booking-service/internal/domain"
)

// validateRequest checks the request before touching the store. The
// public entry point is stricter about missing fields since there is
// no staff UI in front of it.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PatientName) == "" {
		return fmt.Errorf("%w: patientName is required", ErrInvalidInput)
	}
	if len(req.PatientName) > domain.MaxPatientNameLength {
		return fmt.Errorf("%w: patientName exceeds %d characters", ErrInvalidInput, domain.MaxPatientNameLength)
	}

	if req.PsychologistID <= 0 {
		return fmt.Errorf("%w: psychologistID is required", ErrInvalidInput)
	}
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// hasRoomConflict reports whether the window overlaps any existing
// room booking.
func hasRoomConflict(bookings []*domain.RoomBooking, window domain.Interval) bool {
	for _, booking := range bookings {
		if window.Overlaps(booking.Interval()) {
			return true
		}
	}
	return false
}

// hasPsychologistConflict reports whether the window overlaps any of
// the psychologist's active appointments that day, independent of
// which room hosts them.
func hasPsychologistConflict(appointments []*domain.Appointment, window domain.Interval) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if window.Overlaps(appt.Interval()) {
			return true
		}
	}
	return false
}

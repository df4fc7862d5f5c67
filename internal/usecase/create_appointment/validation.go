package create_appointment

import (
	"fmt"
	"strings"

	"github.com/viamente/booking-service/internal/domain"
)

// validateRequest checks the request before touching the store.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PatientName) == "" {
		return fmt.Errorf("%w: patientName is required", ErrInvalidInput)
	}
	if len(req.PatientName) > domain.MaxPatientNameLength {
		return fmt.Errorf("%w: patientName exceeds %d characters", ErrInvalidInput, domain.MaxPatientNameLength)
	}

	if req.PsychologistID <= 0 {
		return fmt.Errorf("%w: psychologistID must be positive", ErrInvalidInput)
	}
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	// The reference office software accepted inverted and zero-length
	// windows, here they are rejected
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	if req.Status != "" && !domain.ValidStatus(req.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// hasRoomConflict reports whether the window overlaps any existing
// booking. Half-open semantics, touching endpoints are not a conflict.
func hasRoomConflict(bookings []*domain.RoomBooking, window domain.Interval) bool {
	for _, booking := range bookings {
		if window.Overlaps(booking.Interval()) {
			return true
		}
	}
	return false
}

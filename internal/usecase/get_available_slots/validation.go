package get_available_slots

import (
	"fmt"

	"github.com/viamente/booking-service/internal/domain"
)

// validateRequest checks the request before touching the store.
func validateRequest(req *Request) error {
	if req.Kind != KindRoom && req.Kind != KindPsychologist {
		return fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, req.Kind)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if dateOnly(req.EndDate).Before(dateOnly(req.StartDate)) {
		return fmt.Errorf("%w: endDate before startDate", ErrInvalidDateRange)
	}

	if dateOnly(req.EndDate).Sub(dateOnly(req.StartDate)).Hours() > 24*domain.MaxDateRangeDays {
		return fmt.Errorf("%w: range wider than %d days", ErrInvalidDateRange, domain.MaxDateRangeDays)
	}

	return nil
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/viamente/booking-service/internal/domain"
	catalogRepo "github.com/viamente/booking-service/internal/infra/storage/catalog"
)

// UseCase enumerates free slots for a room or a psychologist over a
// date range. Read-only and deterministic: the same store state and
// request always produce the same response, so the result can be
// recomputed freely, e.g. for a shared schedule page.
type UseCase struct {
	appointmentRepo AppointmentRepository
	roomBookingRepo RoomBookingRepository
	catalogRepo     CatalogRepository
	hours           domain.WorkingHours
	logger          Logger
}

// NewUseCase creates the usecase. hours carries the practice-level
// working window, normalized against the defaults.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	roomBookingRepo RoomBookingRepository,
	catalogRepo CatalogRepository,
	hours domain.WorkingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		roomBookingRepo: roomBookingRepo,
		catalogRepo:     catalogRepo,
		hours:           hours.Normalize(),
		logger:          logger,
	}
}

// Execute computes the available slots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: kind=%s, resource=%d, range=%s..%s",
		req.Kind, req.ResourceID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	hours := req.Hours.Normalize()
	if req.Hours == (domain.WorkingHours{}) {
		hours = uc.hours
	}

	busyByDate, err := uc.collectBusyIntervals(ctx, req)
	if err != nil {
		return nil, err
	}

	days := make([]DaySlots, 0)
	for _, day := range enumerateBusinessDays(req.StartDate, req.EndDate) {
		slots, err := freeSlotsForDay(busyByDate[day.Format(domain.DateFormat)], hours)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to generate slots for %s: %v",
				day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
		days = append(days, DaySlots{Date: day, Slots: slots})
	}

	uc.logger.Info("GetAvailableSlots: computed %d business days for kind=%s resource=%d",
		len(days), req.Kind, req.ResourceID)

	return &Response{
		Kind:       req.Kind,
		ResourceID: req.ResourceID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Days:       days,
	}, nil
}

// collectBusyIntervals resolves the resource and groups its booked
// intervals by calendar date.
func (uc *UseCase) collectBusyIntervals(ctx context.Context, req *Request) (map[string][]domain.Interval, error) {
	busy := make(map[string][]domain.Interval)

	switch req.Kind {
	case KindRoom:
		if _, err := uc.catalogRepo.GetRoom(ctx, req.ResourceID); err != nil {
			if errors.Is(err, catalogRepo.ErrRoomNotFound) {
				uc.logger.Warn("GetAvailableSlots: room id=%d not found", req.ResourceID)
				return nil, ErrRoomNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get room id=%d: %v", req.ResourceID, err)
			return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		bookings, err := uc.roomBookingRepo.ListByRoomAndDateRange(ctx, req.ResourceID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list room bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to list room bookings: %v", ErrInternal, err)
		}
		for _, booking := range bookings {
			key := booking.Date.Format(domain.DateFormat)
			busy[key] = append(busy[key], booking.Interval())
		}

	case KindPsychologist:
		if _, err := uc.catalogRepo.GetPsychologist(ctx, req.ResourceID); err != nil {
			if errors.Is(err, catalogRepo.ErrPsychologistNotFound) {
				uc.logger.Warn("GetAvailableSlots: psychologist id=%d not found", req.ResourceID)
				return nil, ErrPsychologistNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get psychologist id=%d: %v", req.ResourceID, err)
			return nil, fmt.Errorf("%w: failed to get psychologist: %v", ErrInternal, err)
		}

		appointments, err := uc.appointmentRepo.ListByPsychologistAndDateRange(ctx, req.ResourceID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
			return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}
		for _, appt := range appointments {
			// Canceled sessions free their window
			if !appt.IsActive() {
				continue
			}
			key := appt.Date.Format(domain.DateFormat)
			busy[key] = append(busy[key], appt.Interval())
		}
	}

	return busy, nil
}

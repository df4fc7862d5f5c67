package roombookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "github.com/viamente/booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/viamente/booking-service/internal/infra/storage/catalog"
	"github.com/viamente/booking-service/internal/service/roombookings/models"
)

// Service read operations over the room schedule.
type Service struct {
	roomBookingRepo RoomBookingRepository
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	logger          Logger
}

// NewService creates the room bookings service.
func NewService(
	roomBookingRepo RoomBookingRepository,
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		roomBookingRepo: roomBookingRepo,
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		logger:          logger,
	}
}

// ListByRoomAndDate returns every booking that blocks the room on the
// given date, companion bookings included, sorted by start time.
func (s *Service) ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) (*models.RoomBookingListResponse, error) {
	s.logger.Info("ListByRoomAndDate: room=%d, date=%s", roomID, date.Format("2006-01-02"))

	if roomID <= 0 {
		s.logger.Warn("ListByRoomAndDate: invalid room id=%d", roomID)
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		s.logger.Warn("ListByRoomAndDate: empty date for room=%d", roomID)
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := s.catalogRepo.GetRoom(ctx, roomID); err != nil {
		if errors.Is(err, catalogRepo.ErrRoomNotFound) {
			s.logger.Warn("ListByRoomAndDate: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("ListByRoomAndDate: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: ListByRoomAndDate - failed to get room: %v", ErrInternal, err)
	}

	bookings, err := s.roomBookingRepo.ListByRoomAndDate(ctx, roomID, date)
	if err != nil {
		s.logger.Error("ListByRoomAndDate: repository error for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: ListByRoomAndDate - repository error: %v", ErrInternal, err)
	}

	// Companion bookings whose appointment vanished (out-of-band
	// deletes bypassing the cascade) are reported but still listed,
	// since they keep blocking the room.
	for _, b := range bookings {
		if b.AppointmentID == nil {
			continue
		}
		if _, err := s.appointmentRepo.GetByID(ctx, *b.AppointmentID); errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("ListByRoomAndDate: %v: booking=%s, appointment=%s",
				ErrBookingInconsistent, b.ID, *b.AppointmentID)
		}
	}

	s.logger.Info("ListByRoomAndDate: found %d bookings for room=%d", len(bookings), roomID)
	return models.FromDomainRoomBookingList(bookings), nil
}

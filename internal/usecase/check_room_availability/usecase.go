package check_room_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viamente/booking-service/internal/domain"
	catalogRepo "github.com/viamente/booking-service/internal/infra/storage/catalog"
	"github.com/viamente/booking-service/pkg/types"
)

// Request single-window availability probe.
type Request struct {
	RoomID    int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response availability verdict.
type Response struct {
	Available bool
}

// UseCase answers "is this room free in this window". A pure read over
// store state at call time: the answer can be stale by the time the
// caller books, the booking path re-checks under its transaction.
type UseCase struct {
	roomBookingRepo RoomBookingRepository
	catalogRepo     CatalogRepository
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(roomBookingRepo RoomBookingRepository, catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		roomBookingRepo: roomBookingRepo,
		catalogRepo:     catalogRepo,
		logger:          logger,
	}
}

// Execute runs the availability probe.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckRoomAvailability: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.catalogRepo.GetRoom(ctx, req.RoomID); err != nil {
		if errors.Is(err, catalogRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckRoomAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckRoomAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	bookings, err := uc.roomBookingRepo.ListByRoomAndDate(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("CheckRoomAvailability: failed to list room bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list room bookings: %v", ErrInternal, err)
	}

	window := domain.Interval{Start: req.StartTime, End: req.EndTime}
	for _, booking := range bookings {
		if window.Overlaps(booking.Interval()) {
			uc.logger.Info("CheckRoomAvailability: room id=%d busy on %s %s-%s",
				req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return &Response{Available: false}, nil
		}
	}

	return &Response{Available: true}, nil
}

func validateRequest(req *Request) error {
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
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}
	return nil
}

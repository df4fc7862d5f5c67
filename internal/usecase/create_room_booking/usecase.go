package create_room_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/viamente/booking-service/internal/domain"
	catalogRepo "github.com/viamente/booking-service/internal/infra/storage/catalog"
)

// UseCase reserves a room directly, for supervision sessions, group
// meetings and similar non-appointment use. The conflict check and the
// insert share one serializable transaction.
type UseCase struct {
	roomBookingRepo RoomBookingRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	roomBookingRepo RoomBookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomBookingRepo: roomBookingRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute creates the room booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRoomBooking: room=%d, psychologist=%d, date=%s, window=%s-%s",
		req.RoomID, req.PsychologistID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRoomBooking: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.catalogRepo.GetRoom(ctx, req.RoomID); err != nil {
		if errors.Is(err, catalogRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateRoomBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateRoomBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if _, err := uc.catalogRepo.GetPsychologist(ctx, req.PsychologistID); err != nil {
		if errors.Is(err, catalogRepo.ErrPsychologistNotFound) {
			uc.logger.Warn("CreateRoomBooking: psychologist id=%d not found", req.PsychologistID)
			return nil, ErrPsychologistNotFound
		}
		uc.logger.Error("CreateRoomBooking: failed to get psychologist id=%d: %v", req.PsychologistID, err)
		return nil, fmt.Errorf("%w: failed to get psychologist: %v", ErrInternal, err)
	}

	var created *domain.RoomBooking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.roomBookingRepo.ListByRoomAndDate(txCtx, req.RoomID, req.Date)
		if err != nil {
			uc.logger.Error("CreateRoomBooking: failed to list room bookings: %v", err)
			return fmt.Errorf("%w: failed to list room bookings: %v", ErrInternal, err)
		}

		window := domain.Interval{Start: req.StartTime, End: req.EndTime}
		if hasRoomConflict(existing, window) {
			uc.logger.Warn("CreateRoomBooking: room id=%d already booked on %s %s-%s",
				req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return ErrRoomUnavailable
		}

		created, err = uc.roomBookingRepo.Create(txCtx, &domain.RoomBooking{
			RoomID:         req.RoomID,
			PsychologistID: req.PsychologistID,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Purpose:        req.Purpose,
		})
		if err != nil {
			uc.logger.Error("CreateRoomBooking: failed to create room booking: %v", err)
			return fmt.Errorf("%w: failed to create room booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateRoomBooking: created room booking id=%s", created.ID)

	return fromDomain(created), nil
}

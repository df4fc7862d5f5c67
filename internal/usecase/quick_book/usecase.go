package quick_book

import (
	"context"
	"errors"
	"fmt"

	"github.com/viamente/booking-service/internal/domain"
	catalogRepo "github.com/viamente/booking-service/internal/infra/storage/catalog"
	"github.com/viamente/booking-service/internal/integrations/notifier"
	"github.com/viamente/booking-service/pkg/ptr"
)

// UseCase public self-scheduling. On top of the room check it guards
// the psychologist's own calendar: two rooms could physically host
// simultaneous sessions, but one professional cannot be in both. The
// created appointment is always pending-confirmation regardless of
// caller input.
type UseCase struct {
	appointmentRepo AppointmentRepository
	roomBookingRepo RoomBookingRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	roomBookingRepo RoomBookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	notify Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		roomBookingRepo: roomBookingRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		notifier:        notify,
		logger:          logger,
	}
}

// Execute creates the pending appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuickBook: psychologist=%d, room=%d, date=%s, window=%s-%s",
		req.PsychologistID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuickBook: validation failed: %v", err)
		return nil, err
	}

	psychologist, err := uc.catalogRepo.GetPsychologist(ctx, req.PsychologistID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPsychologistNotFound) {
			uc.logger.Warn("QuickBook: psychologist id=%d not found", req.PsychologistID)
			return nil, ErrPsychologistNotFound
		}
		uc.logger.Error("QuickBook: failed to get psychologist id=%d: %v", req.PsychologistID, err)
		return nil, fmt.Errorf("%w: failed to get psychologist: %v", ErrInternal, err)
	}

	room, err := uc.catalogRepo.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRoomNotFound) {
			uc.logger.Warn("QuickBook: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("QuickBook: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	window := domain.Interval{Start: req.StartTime, End: req.EndTime}

	var created *domain.Appointment
	var companion *domain.RoomBooking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existingBookings, err := uc.roomBookingRepo.ListByRoomAndDate(txCtx, req.RoomID, req.Date)
		if err != nil {
			uc.logger.Error("QuickBook: failed to list room bookings: %v", err)
			return fmt.Errorf("%w: failed to list room bookings: %v", ErrInternal, err)
		}
		if hasRoomConflict(existingBookings, window) {
			uc.logger.Warn("QuickBook: room id=%d already booked on %s %s-%s",
				req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return ErrRoomUnavailable
		}

		existingAppointments, err := uc.appointmentRepo.ListByPsychologistAndDate(txCtx, req.PsychologistID, req.Date)
		if err != nil {
			uc.logger.Error("QuickBook: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}
		if hasPsychologistConflict(existingAppointments, window) {
			uc.logger.Warn("QuickBook: psychologist id=%d already has a session on %s %s-%s",
				req.PsychologistID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return ErrPsychologistUnavailable
		}

		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			PatientName:    req.PatientName,
			PsychologistID: req.PsychologistID,
			RoomID:         req.RoomID,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Status:         domain.StatusPendingConfirmation,
			Notes:          req.Notes,
		})
		if err != nil {
			uc.logger.Error("QuickBook: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		companion, err = uc.roomBookingRepo.Create(txCtx, &domain.RoomBooking{
			RoomID:         req.RoomID,
			PsychologistID: req.PsychologistID,
			AppointmentID:  &created.ID,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Purpose:        ptr.Ptr(domain.AppointmentPurpose(req.PatientName)),
		})
		if err != nil {
			uc.logger.Error("QuickBook: failed to create companion room booking: %v", err)
			return fmt.Errorf("%w: failed to create room booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("QuickBook: created pending appointment id=%s with room booking id=%s",
		created.ID, companion.ID)

	if err := uc.notifier.SendBookingConfirmation(ctx, notifier.BookingConfirmation{
		PatientName:      created.PatientName,
		PsychologistName: psychologist.FullName,
		RoomName:         room.Name,
		Date:             created.Date.Format(domain.DateFormat),
		StartTime:        created.StartTime.String(),
		EndTime:          created.EndTime.String(),
	}); err != nil {
		uc.logger.Warn("QuickBook: confirmation not sent for appointment id=%s: %v", created.ID, err)
	}

	return &Response{
		ID:             created.ID,
		PatientName:    created.PatientName,
		PsychologistID: created.PsychologistID,
		RoomID:         created.RoomID,
		Date:           created.Date,
		StartTime:      created.StartTime,
		EndTime:        created.EndTime,
		Status:         created.Status,
		Notes:          created.Notes,
		RoomBookingID:  companion.ID,
		CreatedAt:      created.CreatedAt,
	}, nil
}

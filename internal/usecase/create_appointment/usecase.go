package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/viamente/booking-service/internal/domain"
	catalogRepo "github.com/viamente/booking-service/internal/infra/storage/catalog"
	"github.com/viamente/booking-service/internal/integrations/notifier"
	"github.com/viamente/booking-service/pkg/ptr"
)

// UseCase staff booking: creates an Appointment and its companion
// RoomBooking in one serializable transaction. The transaction spans
// the room conflict check and both inserts, so two concurrent requests
// for the same window cannot both commit, and an appointment can never
// be left without its room booking.
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

// Execute creates the appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: psychologist=%d, room=%d, date=%s, window=%s-%s",
		req.PsychologistID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	room, err := uc.catalogRepo.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateAppointment: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	psychologist, err := uc.catalogRepo.GetPsychologist(ctx, req.PsychologistID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPsychologistNotFound) {
			uc.logger.Warn("CreateAppointment: psychologist id=%d not found", req.PsychologistID)
			return nil, ErrPsychologistNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get psychologist id=%d: %v", req.PsychologistID, err)
		return nil, fmt.Errorf("%w: failed to get psychologist: %v", ErrInternal, err)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusScheduled
	}

	var created *domain.Appointment
	var companion *domain.RoomBooking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Same-date bookings are read under lock, the check holds
		// until commit
		existing, err := uc.roomBookingRepo.ListByRoomAndDate(txCtx, req.RoomID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list room bookings: %v", err)
			return fmt.Errorf("%w: failed to list room bookings: %v", ErrInternal, err)
		}

		window := domain.Interval{Start: req.StartTime, End: req.EndTime}
		if hasRoomConflict(existing, window) {
			uc.logger.Warn("CreateAppointment: room id=%d already booked on %s %s-%s",
				req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return ErrRoomUnavailable
		}

		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			PatientName:    req.PatientName,
			PsychologistID: req.PsychologistID,
			RoomID:         req.RoomID,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Status:         status,
			Notes:          req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
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
			uc.logger.Error("CreateAppointment: failed to create companion room booking: %v", err)
			return fmt.Errorf("%w: failed to create room booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s with room booking id=%s",
		created.ID, companion.ID)

	// Notification is strictly post-commit and best effort, a gateway
	// failure must not affect the booking
	if err := uc.notifier.SendBookingConfirmation(ctx, notifier.BookingConfirmation{
		PatientName:      created.PatientName,
		PsychologistName: psychologist.FullName,
		RoomName:         room.Name,
		Date:             created.Date.Format(domain.DateFormat),
		StartTime:        created.StartTime.String(),
		EndTime:          created.EndTime.String(),
	}); err != nil {
		uc.logger.Warn("CreateAppointment: confirmation not sent for appointment id=%s: %v", created.ID, err)
	}

	return fromDomain(created, companion.ID), nil
}

package delete_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	appointmentRepo "github.com/viamente/booking-service/internal/infra/storage/appointment"
)

// UseCase removes an appointment together with its companion room
// booking. Both deletes run in one transaction so the room cannot stay
// blocked by a booking whose appointment is gone.
type UseCase struct {
	appointmentRepo AppointmentRepository
	roomBookingRepo RoomBookingRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	roomBookingRepo RoomBookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		roomBookingRepo: roomBookingRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute deletes the appointment and its companion room booking.
func (uc *UseCase) Execute(ctx context.Context, id uuid.UUID) error {
	uc.logger.Info("DeleteAppointment: id=%s", id)

	if id == uuid.Nil {
		uc.logger.Warn("DeleteAppointment: empty appointment id")
		return fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	if _, err := uc.appointmentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("DeleteAppointment: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		uc.logger.Error("DeleteAppointment: failed to get appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.roomBookingRepo.DeleteByAppointmentID(txCtx, id); err != nil {
			uc.logger.Error("DeleteAppointment: failed to delete companion room booking: %v", err)
			return fmt.Errorf("%w: failed to delete room booking: %v", ErrInternal, err)
		}

		if err := uc.appointmentRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("DeleteAppointment: failed to delete appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("DeleteAppointment: deleted appointment id=%s", id)

	return nil
}

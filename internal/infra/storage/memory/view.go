package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/viamente/booking-service/internal/domain"
)

// RoomBookingView exposes the room booking half of the store under the
// same method names as the Postgres repository, so callers accept
// either interchangeably.
type RoomBookingView struct {
	store *Store
}

// RoomBookings returns the room booking repository view of the store.
func (s *Store) RoomBookings() *RoomBookingView {
	return &RoomBookingView{store: s}
}

func (v *RoomBookingView) Create(ctx context.Context, booking *domain.RoomBooking) (*domain.RoomBooking, error) {
	return v.store.CreateRoomBooking(ctx, booking)
}

func (v *RoomBookingView) ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.RoomBooking, error) {
	return v.store.ListByRoomAndDate(ctx, roomID, date)
}

func (v *RoomBookingView) ListByRoomAndDateRange(ctx context.Context, roomID int64, from, to time.Time) ([]*domain.RoomBooking, error) {
	return v.store.ListByRoomAndDateRange(ctx, roomID, from, to)
}

func (v *RoomBookingView) Delete(ctx context.Context, id uuid.UUID) error {
	return v.store.DeleteRoomBooking(ctx, id)
}

func (v *RoomBookingView) DeleteByAppointmentID(ctx context.Context, appointmentID uuid.UUID) error {
	return v.store.DeleteByAppointmentID(ctx, appointmentID)
}

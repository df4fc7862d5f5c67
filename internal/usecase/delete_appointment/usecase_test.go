package delete_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/internal/infra/storage/memory"
	"github.com/viamente/booking-service/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func seedAppointmentWithBooking(t *testing.T, store *memory.Store) *domain.Appointment {
	t.Helper()
	ctx := context.Background()

	appt, err := store.Create(ctx, &domain.Appointment{
		PatientName:    "Maria Silva",
		PsychologistID: 1,
		RoomID:         1,
		Date:           time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         domain.StatusScheduled,
	})
	require.NoError(t, err)

	_, err = store.CreateRoomBooking(ctx, &domain.RoomBooking{
		RoomID:         1,
		PsychologistID: 1,
		AppointmentID:  &appt.ID,
		Date:           appt.Date,
		StartTime:      appt.StartTime,
		EndTime:        appt.EndTime,
		Purpose:        ptr.Ptr(domain.AppointmentPurpose(appt.PatientName)),
	})
	require.NoError(t, err)

	return appt
}

func TestExecute_CascadesToCompanionBooking(t *testing.T) {
	store := memory.NewStore()
	uc := NewUseCase(store, store.RoomBookings(), memory.NewTxManager(), testLogger{})
	ctx := context.Background()

	appt := seedAppointmentWithBooking(t, store)

	require.NoError(t, uc.Execute(ctx, appt.ID))

	_, err := store.GetByID(ctx, appt.ID)
	assert.Error(t, err)

	// The room is free again
	bookings, err := store.ListByRoomAndDate(ctx, 1, appt.Date)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestExecute_DirectBookingsSurvive(t *testing.T) {
	store := memory.NewStore()
	uc := NewUseCase(store, store.RoomBookings(), memory.NewTxManager(), testLogger{})
	ctx := context.Background()

	appt := seedAppointmentWithBooking(t, store)

	// Unrelated direct reservation in the same room
	_, err := store.CreateRoomBooking(ctx, &domain.RoomBooking{
		RoomID:         1,
		PsychologistID: 2,
		Date:           appt.Date,
		StartTime:      "14:00",
		EndTime:        "15:00",
		Purpose:        ptr.Ptr("Supervisão"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Execute(ctx, appt.ID))

	bookings, err := store.ListByRoomAndDate(ctx, 1, appt.Date)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Nil(t, bookings[0].AppointmentID)
}

func TestExecute_UnknownAppointment(t *testing.T) {
	store := memory.NewStore()
	uc := NewUseCase(store, store.RoomBookings(), memory.NewTxManager(), testLogger{})

	err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_NilID(t *testing.T) {
	store := memory.NewStore()
	uc := NewUseCase(store, store.RoomBookings(), memory.NewTxManager(), testLogger{})

	err := uc.Execute(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

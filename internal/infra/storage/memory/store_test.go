package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamente/booking-service/internal/domain"
	appointmentRepo "github.com/viamente/booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/viamente/booking-service/internal/infra/storage/catalog"
	roombookingRepo "github.com/viamente/booking-service/internal/infra/storage/roombooking"
	"github.com/viamente/booking-service/pkg/types"
)

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestStore_AppointmentLifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, err := store.Create(ctx, &domain.Appointment{
		PatientName:    "Maria Silva",
		PsychologistID: 1,
		RoomID:         1,
		Date:           day(3),
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         domain.StatusScheduled,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", got.PatientName)

	require.NoError(t, store.UpdateStatus(ctx, created.ID, domain.StatusConfirmed))
	got, err = store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)

	require.NoError(t, store.Delete(ctx, created.ID))
	_, err = store.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, appointmentRepo.ErrAppointmentNotFound)
}

func TestStore_SentinelErrorsMatchPostgresRepos(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, appointmentRepo.ErrAppointmentNotFound)

	assert.ErrorIs(t, store.UpdateStatus(ctx, uuid.New(), domain.StatusConfirmed),
		appointmentRepo.ErrAppointmentNotFound)

	assert.ErrorIs(t, store.DeleteRoomBooking(ctx, uuid.New()),
		roombookingRepo.ErrBookingNotFound)

	_, err = store.GetRoom(ctx, 1)
	assert.ErrorIs(t, err, catalogRepo.ErrRoomNotFound)

	_, err = store.GetPsychologist(ctx, 1)
	assert.ErrorIs(t, err, catalogRepo.ErrPsychologistNotFound)
}

func TestStore_ListOrdering(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	// Inserted out of order across two dates
	for _, b := range []struct {
		d          int
		start, end types.TimeString
	}{
		{d: 4, start: "09:00", end: "10:00"},
		{d: 3, start: "15:00", end: "16:00"},
		{d: 3, start: "08:00", end: "09:00"},
	} {
		_, err := store.CreateRoomBooking(ctx, &domain.RoomBooking{
			RoomID:         1,
			PsychologistID: 1,
			Date:           day(b.d),
			StartTime:      b.start,
			EndTime:        b.end,
		})
		require.NoError(t, err)
	}

	bookings, err := store.ListByRoomAndDateRange(ctx, 1, day(3), day(4))
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	// Date first, then start time
	assert.Equal(t, types.TimeString("08:00"), bookings[0].StartTime)
	assert.Equal(t, types.TimeString("15:00"), bookings[1].StartTime)
	assert.Equal(t, types.TimeString("09:00"), bookings[2].StartTime)
}

func TestStore_DeleteByAppointmentID(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	apptID := uuid.New()
	_, err := store.CreateRoomBooking(ctx, &domain.RoomBooking{
		RoomID:         1,
		PsychologistID: 1,
		AppointmentID:  &apptID,
		Date:           day(3),
		StartTime:      "10:00",
		EndTime:        "11:00",
	})
	require.NoError(t, err)

	_, err = store.CreateRoomBooking(ctx, &domain.RoomBooking{
		RoomID:         1,
		PsychologistID: 1,
		Date:           day(3),
		StartTime:      "14:00",
		EndTime:        "15:00",
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteByAppointmentID(ctx, apptID))

	bookings, err := store.ListByRoomAndDate(ctx, 1, day(3))
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Nil(t, bookings[0].AppointmentID)

	// Zero matching rows is not an error
	require.NoError(t, store.DeleteByAppointmentID(ctx, uuid.New()))
}

func TestStore_CopyOnReturn(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, err := store.Create(ctx, &domain.Appointment{
		PatientName:    "Maria Silva",
		PsychologistID: 1,
		RoomID:         1,
		Date:           day(3),
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         domain.StatusScheduled,
	})
	require.NoError(t, err)

	// Mutating a returned value must not leak into the store
	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	got.PatientName = "Alterada"

	again, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", again.PatientName)
}

func TestTxManager_SerializesWriters(t *testing.T) {
	tm := NewTxManager()
	ctx := context.Background()

	counter := 0
	done := make(chan struct{})

	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_ = tm.DoSerializable(ctx, func(context.Context) error {
				counter++
				return nil
			})
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, 10, counter)
}

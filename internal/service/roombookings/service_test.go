package roombookings

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/internal/infra/storage/memory"
	"github.com/viamente/booking-service/pkg/ptr"
	"github.com/viamente/booking-service/pkg/types"
)

type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) Info(string, ...interface{}) {}
func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *memory.Store, *recordingLogger) {
	t.Helper()

	store := memory.NewStore()
	store.AddRoom(domain.Room{ID: 1, Name: "Sala 1"})

	log := &recordingLogger{}
	return NewService(store.RoomBookings(), store, store, log), store, log
}

func TestListByRoomAndDate_ReturnsSchedule(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	_, err := store.RoomBookings().Create(ctx, &domain.RoomBooking{
		RoomID:         1,
		PsychologistID: 1,
		Date:           date,
		StartTime:      types.TimeString("10:00"),
		EndTime:        types.TimeString("11:00"),
		Purpose:        ptr.Ptr("Supervisão"),
	})
	require.NoError(t, err)

	resp, err := svc.ListByRoomAndDate(ctx, 1, date)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "10:00", resp.Bookings[0].StartTime)
	assert.Nil(t, resp.Bookings[0].AppointmentID)
}

func TestListByRoomAndDate_UnknownRoom(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ListByRoomAndDate(context.Background(),
		99, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestListByRoomAndDate_InvalidInput(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ListByRoomAndDate(ctx, 0, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListByRoomAndDate(ctx, 1, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByRoomAndDate_ReportsOrphanedCompanionBooking(t *testing.T) {
	svc, store, log := newTestService(t)
	ctx := context.Background()
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	appt, err := store.Create(ctx, &domain.Appointment{
		PatientName:    "Maria Silva",
		PsychologistID: 1,
		RoomID:         1,
		Date:           date,
		StartTime:      types.TimeString("10:00"),
		EndTime:        types.TimeString("11:00"),
		Status:         domain.StatusScheduled,
	})
	require.NoError(t, err)

	_, err = store.RoomBookings().Create(ctx, &domain.RoomBooking{
		RoomID:         1,
		PsychologistID: 1,
		AppointmentID:  &appt.ID,
		Date:           date,
		StartTime:      types.TimeString("10:00"),
		EndTime:        types.TimeString("11:00"),
	})
	require.NoError(t, err)

	// Delete the appointment directly, leaving the companion behind.
	require.NoError(t, store.Delete(ctx, appt.ID))

	resp, err := svc.ListByRoomAndDate(ctx, 1, date)
	require.NoError(t, err)

	// The orphan still blocks the room and is still listed.
	require.Len(t, resp.Bookings, 1)

	found := false
	for _, w := range log.warns {
		if strings.Contains(w, ErrBookingInconsistent.Error()) && strings.Contains(w, appt.ID.String()) {
			found = true
		}
	}
	assert.True(t, found, "expected a warning classifying the orphaned booking")
}

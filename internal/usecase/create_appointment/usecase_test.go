package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/internal/infra/storage/memory"
	"github.com/viamente/booking-service/internal/integrations/notifier"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type recordingNotifier struct {
	sent []notifier.BookingConfirmation
}

func (n *recordingNotifier) SendBookingConfirmation(_ context.Context, c notifier.BookingConfirmation) error {
	n.sent = append(n.sent, c)
	return nil
}

func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	store.AddRoom(domain.Room{ID: 1, Name: "Sala 1", Capacity: 2})
	store.AddPsychologist(domain.Psychologist{ID: 1, FullName: "Dra. Ana Souza"})
	return store
}

func newUseCase(store *memory.Store, sink *recordingNotifier) *UseCase {
	return NewUseCase(store, store.RoomBookings(), store, memory.NewTxManager(), sink, testLogger{})
}

func validRequest() *Request {
	return &Request{
		PatientName:    "Maria Silva",
		PsychologistID: 1,
		RoomID:         1,
		Date:           time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		EndTime:        "11:00",
	}
}

func TestExecute_CreatesAppointmentWithCompanionBooking(t *testing.T) {
	store := newTestStore(t)
	sink := &recordingNotifier{}
	uc := newUseCase(store, sink)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusScheduled, resp.Status)
	assert.NotEqual(t, resp.ID.String(), resp.RoomBookingID.String())

	// The companion booking carries the appointment link and purpose
	bookings, err := store.ListByRoomAndDate(ctx, 1, resp.Date)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	require.NotNil(t, bookings[0].AppointmentID)
	assert.Equal(t, resp.ID, *bookings[0].AppointmentID)
	require.NotNil(t, bookings[0].Purpose)
	assert.Equal(t, "Appointment with Maria Silva", *bookings[0].Purpose)

	// Post-commit confirmation went out once
	require.Len(t, sink.sent, 1)
	assert.Equal(t, "Maria Silva", sink.sent[0].PatientName)
	assert.Equal(t, "Sala 1", sink.sent[0].RoomName)
}

func TestExecute_ExplicitStatusKept(t *testing.T) {
	store := newTestStore(t)
	uc := newUseCase(store, &recordingNotifier{})

	req := validRequest()
	req.Status = domain.StatusFirstSession

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFirstSession, resp.Status)
}

func TestExecute_RoomConflictLeavesNothingBehind(t *testing.T) {
	store := newTestStore(t)
	uc := newUseCase(store, &recordingNotifier{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	// Overlapping window in the same room
	req := validRequest()
	req.PatientName = "João Santos"
	req.StartTime = "10:30"
	req.EndTime = "11:30"

	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	// Only the first pair of records exists
	bookings, err := store.ListByRoomAndDate(ctx, 1, req.Date)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	appts, err := store.ListByPsychologistAndDate(ctx, 1, req.Date)
	require.NoError(t, err)
	assert.Len(t, appts, 1)
}

func TestExecute_TouchingWindowsDoNotConflict(t *testing.T) {
	store := newTestStore(t)
	uc := newUseCase(store, &recordingNotifier{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	// 11:00-12:00 touches 10:00-11:00 and must be accepted
	req := validRequest()
	req.PatientName = "João Santos"
	req.StartTime = "11:00"
	req.EndTime = "12:00"

	_, err = uc.Execute(ctx, req)
	require.NoError(t, err)

	bookings, err := store.ListByRoomAndDate(ctx, 1, req.Date)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestExecute_InvalidRequests(t *testing.T) {
	store := newTestStore(t)
	uc := newUseCase(store, &recordingNotifier{})
	ctx := context.Background()

	t.Run("inverted time range", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "11:00"
		req.EndTime = "10:00"
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("zero-length window", func(t *testing.T) {
		req := validRequest()
		req.EndTime = req.StartTime
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("empty patient name", func(t *testing.T) {
		req := validRequest()
		req.PatientName = "   "
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown status", func(t *testing.T) {
		req := validRequest()
		req.Status = "double-booked"
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestExecute_UnknownRoomAndPsychologist(t *testing.T) {
	store := newTestStore(t)
	uc := newUseCase(store, &recordingNotifier{})
	ctx := context.Background()

	req := validRequest()
	req.RoomID = 99
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	req = validRequest()
	req.PsychologistID = 99
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrPsychologistNotFound)
}

func TestExecute_ConflictAcrossDatesIsAllowed(t *testing.T) {
	store := newTestStore(t)
	uc := newUseCase(store, &recordingNotifier{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	// Same room and window on another day
	req := validRequest()
	req.Date = req.Date.AddDate(0, 0, 1)
	_, err = uc.Execute(ctx, req)
	require.NoError(t, err)
}

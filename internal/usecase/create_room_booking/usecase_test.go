package create_room_booking

import (
	"context"
	"testing"
	"time"

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

func newTestUseCase(t *testing.T) (*UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.AddRoom(domain.Room{ID: 1, Name: "Sala 1", Capacity: 6})
	store.AddPsychologist(domain.Psychologist{ID: 1, FullName: "Dra. Ana Souza"})
	return NewUseCase(store.RoomBookings(), store, memory.NewTxManager(), testLogger{}), store
}

func validRequest() *Request {
	return &Request{
		RoomID:         1,
		PsychologistID: 1,
		Date:           time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		StartTime:      "14:00",
		EndTime:        "16:00",
		Purpose:        ptr.Ptr("Supervisão em grupo"),
	}
}

func TestExecute_CreatesDirectBooking(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.Purpose)
	assert.Equal(t, "Supervisão em grupo", *resp.Purpose)

	// Direct reservations carry no appointment link
	bookings, err := store.ListByRoomAndDate(ctx, 1, resp.Date)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Nil(t, bookings[0].AppointmentID)
}

func TestExecute_ConflictWithExistingBooking(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartTime = "15:00"
	req.EndTime = "17:00"

	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestExecute_TouchingBookingAllowed(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartTime = "16:00"
	req.EndTime = "17:00"

	_, err = uc.Execute(ctx, req)
	require.NoError(t, err)
}

func TestExecute_UnknownResources(t *testing.T) {
	uc, _ := newTestUseCase(t)
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

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	req := validRequest()
	req.StartTime = "16:00"
	req.EndTime = "14:00"
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	req = validRequest()
	req.RoomID = 0
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package check_room_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/internal/infra/storage/memory"
	"github.com/viamente/booking-service/pkg/types"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T) (*UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.AddRoom(domain.Room{ID: 1, Name: "Sala 1", Capacity: 2})
	return NewUseCase(store.RoomBookings(), store, testLogger{}), store
}

func TestExecute_Availability(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	_, err := store.CreateRoomBooking(ctx, &domain.RoomBooking{
		RoomID:         1,
		PsychologistID: 1,
		Date:           day,
		StartTime:      "10:00",
		EndTime:        "11:00",
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{name: "free window", start: "12:00", end: "13:00", want: true},
		{name: "exact overlap", start: "10:00", end: "11:00", want: false},
		{name: "partial overlap", start: "10:30", end: "11:30", want: false},
		{name: "containing window", start: "09:00", end: "12:00", want: false},
		{name: "touching before", start: "09:00", end: "10:00", want: true},
		{name: "touching after", start: "11:00", end: "12:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, &Request{
				RoomID:    1,
				Date:      day,
				StartTime: types.TimeString(tt.start),
				EndTime:   types.TimeString(tt.end),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Available)
		})
	}
}

func TestExecute_UnknownRoom(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:    99,
		Date:      time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:    1,
		Date:      time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		StartTime: "11:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

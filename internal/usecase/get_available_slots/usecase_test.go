package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/internal/infra/storage/memory"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	store.AddRoom(domain.Room{ID: 1, Name: "Sala 1", Capacity: 2})
	store.AddPsychologist(domain.Psychologist{ID: 1, FullName: "Dra. Ana Souza"})
	return store
}

func newSlotsUseCase(store *memory.Store) *UseCase {
	return NewUseCase(store, store.RoomBookings(), store, domain.DefaultWorkingHours(), testLogger{})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_RoomSingleBusyHour(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Monday, one booking 14:00-15:00
	monday := date(2024, time.June, 3)
	_, err := store.CreateRoomBooking(ctx, &domain.RoomBooking{
		RoomID:         1,
		PsychologistID: 1,
		Date:           monday,
		StartTime:      "14:00",
		EndTime:        "15:00",
	})
	require.NoError(t, err)

	uc := newSlotsUseCase(store)

	resp, err := uc.Execute(ctx, &Request{
		Kind:       KindRoom,
		ResourceID: 1,
		StartDate:  monday,
		EndDate:    monday,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)

	// 08:00-18:00 with 60-minute slots gives 10 candidates, one is taken
	slots := resp.Days[0].Slots
	assert.Len(t, slots, 9)
	assert.NotContains(t, slots, "14:00 - 15:00")
	assert.Contains(t, slots, "08:00 - 09:00")
	assert.Contains(t, slots, "13:00 - 14:00")
	assert.Contains(t, slots, "15:00 - 16:00")
	assert.Contains(t, slots, "17:00 - 18:00")
}

func TestExecute_SkipsWeekends(t *testing.T) {
	store := newTestStore(t)
	uc := newSlotsUseCase(store)

	// Friday 2024-06-07 through Monday 2024-06-10
	resp, err := uc.Execute(context.Background(), &Request{
		Kind:       KindRoom,
		ResourceID: 1,
		StartDate:  date(2024, time.June, 7),
		EndDate:    date(2024, time.June, 10),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2024-06-07", resp.Days[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2024-06-10", resp.Days[1].Date.Format(domain.DateFormat))
}

func TestExecute_FullyBookedDayStaysPresent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	monday := date(2024, time.June, 3)
	_, err := store.CreateRoomBooking(ctx, &domain.RoomBooking{
		RoomID:         1,
		PsychologistID: 1,
		Date:           monday,
		StartTime:      "08:00",
		EndTime:        "18:00",
	})
	require.NoError(t, err)

	uc := newSlotsUseCase(store)

	resp, err := uc.Execute(ctx, &Request{
		Kind:       KindRoom,
		ResourceID: 1,
		StartDate:  monday,
		EndDate:    monday,
	})
	require.NoError(t, err)

	// The day appears with an empty slot list, it is not dropped
	require.Len(t, resp.Days, 1)
	assert.Empty(t, resp.Days[0].Slots)
}

func TestExecute_PsychologistIgnoresCanceled(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	monday := date(2024, time.June, 3)
	_, err := store.Create(ctx, &domain.Appointment{
		PatientName:    "Maria",
		PsychologistID: 1,
		RoomID:         1,
		Date:           monday,
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         domain.StatusCanceled,
	})
	require.NoError(t, err)

	uc := newSlotsUseCase(store)

	resp, err := uc.Execute(ctx, &Request{
		Kind:       KindPsychologist,
		ResourceID: 1,
		StartDate:  monday,
		EndDate:    monday,
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.Contains(t, resp.Days[0].Slots, "10:00 - 11:00")
}

func TestExecute_PsychologistActiveBlocks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	monday := date(2024, time.June, 3)
	_, err := store.Create(ctx, &domain.Appointment{
		PatientName:    "Maria",
		PsychologistID: 1,
		RoomID:         1,
		Date:           monday,
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         domain.StatusScheduled,
	})
	require.NoError(t, err)

	uc := newSlotsUseCase(store)

	resp, err := uc.Execute(ctx, &Request{
		Kind:       KindPsychologist,
		ResourceID: 1,
		StartDate:  monday,
		EndDate:    monday,
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.NotContains(t, resp.Days[0].Slots, "10:00 - 11:00")
	assert.Len(t, resp.Days[0].Slots, 9)
}

func TestExecute_Deterministic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	monday := date(2024, time.June, 3)
	_, err := store.CreateRoomBooking(ctx, &domain.RoomBooking{
		RoomID:         1,
		PsychologistID: 1,
		Date:           monday,
		StartTime:      "09:00",
		EndTime:        "10:30",
	})
	require.NoError(t, err)

	uc := newSlotsUseCase(store)
	req := &Request{Kind: KindRoom, ResourceID: 1, StartDate: monday, EndDate: monday}

	first, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	second, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_UnknownResources(t *testing.T) {
	store := newTestStore(t)
	uc := newSlotsUseCase(store)
	monday := date(2024, time.June, 3)

	_, err := uc.Execute(context.Background(), &Request{
		Kind:       KindRoom,
		ResourceID: 99,
		StartDate:  monday,
		EndDate:    monday,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		Kind:       KindPsychologist,
		ResourceID: 99,
		StartDate:  monday,
		EndDate:    monday,
	})
	assert.ErrorIs(t, err, ErrPsychologistNotFound)
}

func TestExecute_ValidatesDateRange(t *testing.T) {
	store := newTestStore(t)
	uc := newSlotsUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		Kind:       KindRoom,
		ResourceID: 1,
		StartDate:  date(2024, time.June, 10),
		EndDate:    date(2024, time.June, 3),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = uc.Execute(context.Background(), &Request{
		Kind:       KindRoom,
		ResourceID: 1,
		StartDate:  date(2024, time.January, 1),
		EndDate:    date(2024, time.December, 31),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_CustomSlotDuration(t *testing.T) {
	store := newTestStore(t)
	uc := newSlotsUseCase(store)
	monday := date(2024, time.June, 3)

	resp, err := uc.Execute(context.Background(), &Request{
		Kind:       KindRoom,
		ResourceID: 1,
		StartDate:  monday,
		EndDate:    monday,
		Hours: domain.WorkingHours{
			Opening:             "09:00",
			Closing:             "12:00",
			SlotDurationMinutes: 90,
		},
	})
	require.NoError(t, err)

	// 09:00-12:00 fits two 90-minute slots, the third would pass closing
	require.Len(t, resp.Days, 1)
	assert.Equal(t, []string{"09:00 - 10:30", "10:30 - 12:00"}, resp.Days[0].Slots)
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/viamente/booking-service/internal/domain"
	appointmentRepo "github.com/viamente/booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/viamente/booking-service/internal/infra/storage/catalog"
	roombookingRepo "github.com/viamente/booking-service/internal/infra/storage/roombooking"
)

// Store in-process implementation of the storage method sets, selected
// at startup via [database] driver = "memory". Useful for demos and
// tests, data does not survive a restart. Returns the same sentinel
// errors as the Postgres repositories so callers are oblivious to the
// backing strategy.
type Store struct {
	mu            sync.RWMutex
	appointments  map[uuid.UUID]domain.Appointment
	roomBookings  map[uuid.UUID]domain.RoomBooking
	rooms         map[int64]domain.Room
	psychologists map[int64]domain.Psychologist
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		appointments:  make(map[uuid.UUID]domain.Appointment),
		roomBookings:  make(map[uuid.UUID]domain.RoomBooking),
		rooms:         make(map[int64]domain.Room),
		psychologists: make(map[int64]domain.Psychologist),
	}
}

func sameDate(a, b time.Time) bool {
	return a.Format(domain.DateFormat) == b.Format(domain.DateFormat)
}

func dateInRange(d, from, to time.Time) bool {
	key := d.Format(domain.DateFormat)
	return key >= from.Format(domain.DateFormat) && key <= to.Format(domain.DateFormat)
}

// --- appointments ---

// Create inserts an appointment.
func (s *Store) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	s.appointments[appt.ID] = *appt
	out := *appt
	return &out, nil
}

// GetByID fetches an appointment.
func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appt, ok := s.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	out := appt
	return &out, nil
}

// ListByPsychologistAndDate returns the psychologist's appointments on
// one date, ordered by start time.
func (s *Store) ListByPsychologistAndDate(_ context.Context, psychologistID int64, date time.Time) ([]*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range s.appointments {
		if appt.PsychologistID == psychologistID && sameDate(appt.Date, date) {
			out := appt
			result = append(result, &out)
		}
	}
	sortAppointments(result)
	return result, nil
}

// ListByPsychologistAndDateRange returns appointments in the inclusive
// date range, chronologically ordered.
func (s *Store) ListByPsychologistAndDateRange(_ context.Context, psychologistID int64, from, to time.Time) ([]*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range s.appointments {
		if appt.PsychologistID == psychologistID && dateInRange(appt.Date, from, to) {
			out := appt
			result = append(result, &out)
		}
	}
	sortAppointments(result)
	return result, nil
}

// UpdateStatus sets the appointment status.
func (s *Store) UpdateStatus(_ context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	appt.UpdatedAt = time.Now()
	s.appointments[id] = appt
	return nil
}

// Delete removes an appointment.
func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(s.appointments, id)
	return nil
}

// --- room bookings ---

// CreateRoomBooking inserts a room booking.
func (s *Store) CreateRoomBooking(_ context.Context, booking *domain.RoomBooking) (*domain.RoomBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.CreatedAt = time.Now()

	s.roomBookings[booking.ID] = *booking
	out := *booking
	return &out, nil
}

// ListByRoomAndDate returns the room's bookings on one date, ordered
// by start time.
func (s *Store) ListByRoomAndDate(_ context.Context, roomID int64, date time.Time) ([]*domain.RoomBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.RoomBooking, 0)
	for _, booking := range s.roomBookings {
		if booking.RoomID == roomID && sameDate(booking.Date, date) {
			out := booking
			result = append(result, &out)
		}
	}
	sortRoomBookings(result)
	return result, nil
}

// ListByRoomAndDateRange returns bookings in the inclusive date range.
func (s *Store) ListByRoomAndDateRange(_ context.Context, roomID int64, from, to time.Time) ([]*domain.RoomBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.RoomBooking, 0)
	for _, booking := range s.roomBookings {
		if booking.RoomID == roomID && dateInRange(booking.Date, from, to) {
			out := booking
			result = append(result, &out)
		}
	}
	sortRoomBookings(result)
	return result, nil
}

// DeleteRoomBooking removes a room booking.
func (s *Store) DeleteRoomBooking(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roomBookings[id]; !ok {
		return roombookingRepo.ErrBookingNotFound
	}
	delete(s.roomBookings, id)
	return nil
}

// DeleteByAppointmentID removes the companion booking of an
// appointment. Missing companion is not an error.
func (s *Store) DeleteByAppointmentID(_ context.Context, appointmentID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, booking := range s.roomBookings {
		if booking.AppointmentID != nil && *booking.AppointmentID == appointmentID {
			delete(s.roomBookings, id)
		}
	}
	return nil
}

// --- catalog ---

// GetRoom fetches a room by ID.
func (s *Store) GetRoom(_ context.Context, id int64) (*domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[id]
	if !ok {
		return nil, catalogRepo.ErrRoomNotFound
	}
	out := room
	return &out, nil
}

// GetPsychologist fetches a psychologist by ID.
func (s *Store) GetPsychologist(_ context.Context, id int64) (*domain.Psychologist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.psychologists[id]
	if !ok {
		return nil, catalogRepo.ErrPsychologistNotFound
	}
	out := p
	return &out, nil
}

// AddRoom seeds reference data, used at startup in memory mode.
func (s *Store) AddRoom(room domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
}

// AddPsychologist seeds reference data, used at startup in memory mode.
func (s *Store) AddPsychologist(p domain.Psychologist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.psychologists[p.ID] = p
}

package memory

import (
	"sort"

	"github.com/viamente/booking-service/internal/domain"
)

func sortAppointments(appointments []*domain.Appointment) {
	sort.Slice(appointments, func(i, j int) bool {
		di := appointments[i].Date.Format(domain.DateFormat)
		dj := appointments[j].Date.Format(domain.DateFormat)
		if di != dj {
			return di < dj
		}
		return appointments[i].StartTime.Minutes() < appointments[j].StartTime.Minutes()
	})
}

func sortRoomBookings(bookings []*domain.RoomBooking) {
	sort.Slice(bookings, func(i, j int) bool {
		di := bookings[i].Date.Format(domain.DateFormat)
		dj := bookings[j].Date.Format(domain.DateFormat)
		if di != dj {
			return di < dj
		}
		return bookings[i].StartTime.Minutes() < bookings[j].StartTime.Minutes()
	})
}

package models

import (
	"time"

	"github.com/viamente/booking-service/internal/domain"
)

// RoomBookingResponse room booking data as returned to the API layer.
type RoomBookingResponse struct {
	ID             string  `json:"id"`
	RoomID         int64   `json:"roomId"`
	PsychologistID int64   `json:"psychologistId"`
	AppointmentID  *string `json:"appointmentId,omitempty"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "10:00"
	EndTime        string  `json:"endTime"`   // "11:00"
	Purpose        *string `json:"purpose,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// RoomBookingListResponse room schedule for one date.
type RoomBookingListResponse struct {
	Bookings []RoomBookingResponse `json:"bookings"`
}

// FromDomainRoomBooking converts the domain model into a DTO.
func FromDomainRoomBooking(b *domain.RoomBooking) *RoomBookingResponse {
	if b == nil {
		return nil
	}

	resp := &RoomBookingResponse{
		ID:             b.ID.String(),
		RoomID:         b.RoomID,
		PsychologistID: b.PsychologistID,
		Date:           b.Date.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Purpose:        b.Purpose,
		CreatedAt:      b.CreatedAt,
	}

	if b.AppointmentID != nil {
		apptID := b.AppointmentID.String()
		resp.AppointmentID = &apptID
	}

	return resp
}

// FromDomainRoomBookingList converts a list of domain models into a DTO.
func FromDomainRoomBookingList(bookings []*domain.RoomBooking) *RoomBookingListResponse {
	resp := &RoomBookingListResponse{
		Bookings: make([]RoomBookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainRoomBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

package models

import (
	"time"

	"github.com/viamente/booking-service/internal/domain"
)

// UpdateStatusRequest status change for an appointment.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AppointmentResponse appointment data as returned to the API layer.
type AppointmentResponse struct {
	ID             string  `json:"id"`
	PatientName    string  `json:"patientName"`
	PsychologistID int64   `json:"psychologistId"`
	RoomID         int64   `json:"roomId"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "10:00"
	EndTime        string  `json:"endTime"`   // "11:00"
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainAppointment converts the domain model into a DTO.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:             a.ID.String(),
		PatientName:    a.PatientName,
		PsychologistID: a.PsychologistID,
		RoomID:         a.RoomID,
		Date:           a.Date.Format(domain.DateFormat),
		StartTime:      a.StartTime.String(),
		EndTime:        a.EndTime.String(),
		Status:         string(a.Status),
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToDomainAppointmentStatus converts a string into a validated status.
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, bool) {
	s := domain.AppointmentStatus(status)
	if !domain.ValidStatus(s) {
		return "", false
	}
	return s, true
}

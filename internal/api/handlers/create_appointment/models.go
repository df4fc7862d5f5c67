package create_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/viamente/booking-service/internal/domain"
	createAppointment "github.com/viamente/booking-service/internal/usecase/create_appointment"
	"github.com/viamente/booking-service/pkg/types"
)

var (
	errBadDate = errors.New("invalid date format")
	errBadTime = errors.New("invalid time format")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	PatientName    string  `json:"patientName"`
	PsychologistID int64   `json:"psychologistId"`
	RoomID         int64   `json:"roomId"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "10:00"
	EndTime        string  `json:"endTime"`   // "11:00"
	Status         *string `json:"status,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             string  `json:"id"`
	PatientName    string  `json:"patientName"`
	PsychologistID int64   `json:"psychologistId"`
	RoomID         int64   `json:"roomId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	RoomBookingID  string  `json:"roomBookingId"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadTime, err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadTime, err)
	}

	req := &createAppointment.Request{
		PatientName:    r.PatientName,
		PsychologistID: r.PsychologistID,
		RoomID:         r.RoomID,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Notes:          r.Notes,
	}
	if r.Status != nil {
		req.Status = domain.AppointmentStatus(*r.Status)
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID.String(),
		PatientName:    resp.PatientName,
		PsychologistID: resp.PsychologistID,
		RoomID:         resp.RoomID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Status:         string(resp.Status),
		Notes:          resp.Notes,
		RoomBookingID:  resp.RoomBookingID.String(),
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}

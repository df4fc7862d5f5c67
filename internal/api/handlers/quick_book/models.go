package quick_book

import (
	"errors"
	"fmt"
	"time"

	"github.com/viamente/booking-service/internal/domain"
	quickBook "github.com/viamente/booking-service/internal/usecase/quick_book"
	"github.com/viamente/booking-service/pkg/types"
)

var (
	errBadDate = errors.New("invalid date format")
	errBadTime = errors.New("invalid time format")
)

// QuickBookRequest HTTP request model for patient self-scheduling.
type QuickBookRequest struct {
	PatientName    string  `json:"patientName"`
	PsychologistID int64   `json:"psychologistId"`
	RoomID         int64   `json:"roomId"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "10:00"
	EndTime        string  `json:"endTime"`   // "11:00"
	Notes          *string `json:"notes,omitempty"`
}

// QuickBookResponse HTTP response model
type QuickBookResponse struct {
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
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *QuickBookRequest) ToUseCaseRequest() (*quickBook.Request, error) {
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

	return &quickBook.Request{
		PatientName:    r.PatientName,
		PsychologistID: r.PsychologistID,
		RoomID:         r.RoomID,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *quickBook.Response) *QuickBookResponse {
	return &QuickBookResponse{
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
	}
}

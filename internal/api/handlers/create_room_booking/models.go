package create_room_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/viamente/booking-service/internal/domain"
	createRoomBooking "github.com/viamente/booking-service/internal/usecase/create_room_booking"
	"github.com/viamente/booking-service/pkg/types"
)

var (
	errBadDate = errors.New("invalid date format")
	errBadTime = errors.New("invalid time format")
)

// CreateRoomBookingRequest HTTP request model
type CreateRoomBookingRequest struct {
	RoomID         int64   `json:"roomId"`
	PsychologistID int64   `json:"psychologistId"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "10:00"
	EndTime        string  `json:"endTime"`   // "11:00"
	Purpose        *string `json:"purpose,omitempty"`
}

// RoomBookingResponse HTTP response model
type RoomBookingResponse struct {
	ID             string  `json:"id"`
	RoomID         int64   `json:"roomId"`
	PsychologistID int64   `json:"psychologistId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Purpose        *string `json:"purpose,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateRoomBookingRequest) ToUseCaseRequest() (*createRoomBooking.Request, error) {
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

	return &createRoomBooking.Request{
		RoomID:         r.RoomID,
		PsychologistID: r.PsychologistID,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Purpose:        r.Purpose,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createRoomBooking.Response) *RoomBookingResponse {
	return &RoomBookingResponse{
		ID:             resp.ID.String(),
		RoomID:         resp.RoomID,
		PsychologistID: resp.PsychologistID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Purpose:        resp.Purpose,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}

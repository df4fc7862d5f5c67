package get_available_slots

import (
	"time"

	"github.com/viamente/booking-service/internal/domain"
	getAvailableSlots "github.com/viamente/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ResourceID int64      `json:"resourceId"`
	Kind       string     `json:"kind"` // "room" or "psychologist"
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	Days       []DaySlots `json:"days"`
}

// DaySlots free windows of one business day
type DaySlots struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"` // "HH:MM - HH:MM"
}

// ToUseCaseRequest builds the use case request from path and query data.
func ToUseCaseRequest(kind getAvailableSlots.ResourceKind, resourceID int64, startDateStr, endDateStr string) (*getAvailableSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Kind:       kind,
		ResourceID: resourceID,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]DaySlots, len(resp.Days))
	for i, day := range resp.Days {
		slots := day.Slots
		if slots == nil {
			slots = []string{}
		}
		days[i] = DaySlots{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		}
	}

	return &AvailableSlotsResponse{
		ResourceID: resp.ResourceID,
		Kind:       string(resp.Kind),
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		Days:       days,
	}
}

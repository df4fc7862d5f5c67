package check_room_availability

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID    int64  `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

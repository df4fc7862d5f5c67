package domain

// Room static reference data for a consulting room. Not mutated by the
// booking flow.
type Room struct {
	ID            int64
	Name          string
	Capacity      int
	HasWhiteboard bool
	HasVideoCall  bool
	IsAccessible  bool
	FloorArea     float64
}

// Psychologist static reference data for a professional. The booking
// flow only needs the ID to test conflicts, the profile fields exist
// for the rest of the office application.
type Psychologist struct {
	ID             int64
	UserID         int64
	FullName       string
	Specialization string
	Bio            string
	HourlyRate     float64
}

package notifier

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingConfirmation payload describing a freshly created booking.
type BookingConfirmation struct {
	PatientName      string
	PsychologistName string
	RoomName         string
	Date             string // YYYY-MM-DD
	StartTime        string // HH:MM
	EndTime          string // HH:MM
}

// gatewayMessage wire format of the WhatsApp gateway.
type gatewayMessage struct {
	Template string            `json:"template"`
	Params   map[string]string `json:"params"`
}

package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts booking confirmations to the practice's WhatsApp
// gateway. Strictly fire-after-commit: the booking flow calls it only
// once the booking is durable, and any failure here is logged and
// swallowed, it never rolls a booking back.
type Client struct {
	baseURL    string
	httpClient *http.Client
	enabled    bool
	log        Logger
}

// NewClient creates a gateway client. A disabled client accepts calls
// and does nothing, so the booking flow never branches on config.
func NewClient(baseURL string, timeout time.Duration, enabled bool, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		enabled: enabled,
		log:     log,
	}
}

// SendBookingConfirmation delivers a confirmation message for the
// given booking.
func (c *Client) SendBookingConfirmation(ctx context.Context, confirmation BookingConfirmation) error {
	if !c.enabled {
		return nil
	}

	msg := gatewayMessage{
		Template: "booking_confirmation",
		Params: map[string]string{
			"patient":      confirmation.PatientName,
			"psychologist": confirmation.PsychologistName,
			"room":         confirmation.RoomName,
			"date":         confirmation.Date,
			"start_time":   confirmation.StartTime,
			"end_time":     confirmation.EndTime,
		},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to encode message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/messages", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("Notifier: booking confirmation sent for patient=%s, date=%s %s",
		confirmation.PatientName, confirmation.Date, confirmation.StartTime)
	return nil
}

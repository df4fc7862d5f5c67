package get_room_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/viamente/booking-service/internal/api/handlers"
	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/internal/service/roombookings"
)

const (
	msgInvalidRoomID = "ID de sala inválido"
	msgInvalidDate   = "formato de data inválido, esperado YYYY-MM-DD"
	msgRoomNotFound  = "sala não encontrada"
	msgInvalidInput  = "dados da requisição inválidos"
)

type Handler struct {
	service RoomBookingService
	logger  Logger
}

func NewHandler(service RoomBookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/rooms/{roomId}/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/bookings - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	bookings, err := h.service.ListByRoomAndDate(r.Context(), roomID, date)
	if err != nil {
		switch {
		case errors.Is(err, roombookings.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/bookings - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, roombookings.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomId}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{roomId}/bookings - Failed to list bookings: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{roomId}/bookings - Retrieved %d bookings: room_id=%d", len(bookings.Bookings), roomID)
	handlers.RespondJSON(w, http.StatusOK, bookings)
}

package check_room_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/viamente/booking-service/internal/api/handlers"
	"github.com/viamente/booking-service/internal/domain"
	checkRoomAvailability "github.com/viamente/booking-service/internal/usecase/check_room_availability"
	"github.com/viamente/booking-service/pkg/types"
)

const (
	msgInvalidRoomID    = "ID de sala inválido"
	msgInvalidDate      = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidTime      = "formato de horário inválido, esperado HH:MM"
	msgInvalidTimeRange = "o horário de início deve ser anterior ao horário de término"
	msgRoomNotFound     = "sala não encontrada"
	msgInvalidInput     = "dados da requisição inválidos"
)

type Handler struct {
	useCase CheckRoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckRoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/rooms/availability/{roomId}?date=YYYY-MM-DD&startTime=HH:MM&endTime=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/availability/{roomId} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/availability/{roomId} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /rooms/availability/{roomId} - Invalid startTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := types.NewTimeStringFromString(query.Get("endTime"))
	if err != nil {
		h.logger.Warn("GET /rooms/availability/{roomId} - Invalid endTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkRoomAvailability.Request{
		RoomID:    roomID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkRoomAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/availability/{roomId} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkRoomAvailability.ErrInvalidTimeRange):
			h.logger.Warn("GET /rooms/availability/{roomId} - Invalid time range: %s-%s", startTime, endTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, checkRoomAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/availability/{roomId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/availability/{roomId} - Failed to check availability: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/availability/{roomId} - Availability checked: room_id=%d, available=%t",
		roomID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
		RoomID:    roomID,
		Date:      date.Format(domain.DateFormat),
		StartTime: startTime.String(),
		EndTime:   endTime.String(),
		Available: result.Available,
	})
}

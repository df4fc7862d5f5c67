package create_room_booking

import (
	"errors"
	"net/http"

	"github.com/viamente/booking-service/internal/api/handlers"
	createRoomBooking "github.com/viamente/booking-service/internal/usecase/create_room_booking"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidDate          = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidTime          = "formato de horário inválido, esperado HH:MM"
	msgRoomUnavailable      = "a sala já está reservada neste horário"
	msgRoomNotFound         = "sala não encontrada"
	msgPsychologistNotFound = "psicólogo não encontrado"
	msgInvalidInput         = "dados da requisição inválidos"
	msgInvalidTimeRange     = "o horário de início deve ser anterior ao horário de término"
)

type Handler struct {
	useCase CreateRoomBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateRoomBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/room-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /room-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /room-bookings - Failed to parse request: %v", err)
		if errors.Is(err, errBadTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRoomBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /room-bookings - Room unavailable: room_id=%d, date=%s", req.RoomID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		case errors.Is(err, createRoomBooking.ErrRoomNotFound):
			h.logger.Warn("POST /room-bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createRoomBooking.ErrPsychologistNotFound):
			h.logger.Warn("POST /room-bookings - Psychologist not found: psychologist_id=%d", req.PsychologistID)
			handlers.RespondNotFound(w, msgPsychologistNotFound)

		case errors.Is(err, createRoomBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /room-bookings - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createRoomBooking.ErrInvalidInput):
			h.logger.Warn("POST /room-bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /room-bookings - Failed to create room booking: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /room-bookings - Room booking created: booking_id=%s, room_id=%d", result.ID, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package create_appointment

import (
	"errors"
	"net/http"

	"github.com/viamente/booking-service/internal/api/handlers"
	createAppointment "github.com/viamente/booking-service/internal/usecase/create_appointment"
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
	msgInvalidStatus        = "status de consulta inválido"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
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
		case errors.Is(err, createAppointment.ErrRoomUnavailable):
			h.logger.Warn("POST /appointments - Room unavailable: room_id=%d, date=%s", req.RoomID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		case errors.Is(err, createAppointment.ErrRoomNotFound):
			h.logger.Warn("POST /appointments - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createAppointment.ErrPsychologistNotFound):
			h.logger.Warn("POST /appointments - Psychologist not found: psychologist_id=%d", req.PsychologistID)
			handlers.RespondNotFound(w, msgPsychologistNotFound)

		case errors.Is(err, createAppointment.ErrInvalidTimeRange):
			h.logger.Warn("POST /appointments - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createAppointment.ErrInvalidStatus):
			h.logger.Warn("POST /appointments - Invalid status: %v", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, room_booking_id=%s",
		result.ID, result.RoomBookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

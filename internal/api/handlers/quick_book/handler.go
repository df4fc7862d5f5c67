package quick_book

import (
	"errors"
	"net/http"

	"github.com/viamente/booking-service/internal/api/handlers"
	quickBook "github.com/viamente/booking-service/internal/usecase/quick_book"
)

const (
	msgInvalidRequestBody      = "corpo da requisição inválido"
	msgInvalidDate             = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidTime             = "formato de horário inválido, esperado HH:MM"
	msgRoomUnavailable         = "a sala já está reservada neste horário"
	msgPsychologistUnavailable = "o psicólogo já possui uma consulta neste horário"
	msgRoomNotFound            = "sala não encontrada"
	msgPsychologistNotFound    = "psicólogo não encontrado"
	msgInvalidInput            = "dados da requisição inválidos"
	msgInvalidTimeRange        = "o horário de início deve ser anterior ao horário de término"
)

type Handler struct {
	useCase QuickBookUseCase
	logger  Logger
}

func NewHandler(useCase QuickBookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments/quick-book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuickBookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/quick-book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/quick-book - Failed to parse request: %v", err)
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
		case errors.Is(err, quickBook.ErrRoomUnavailable):
			h.logger.Warn("POST /appointments/quick-book - Room unavailable: room_id=%d, date=%s", req.RoomID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		case errors.Is(err, quickBook.ErrPsychologistUnavailable):
			h.logger.Warn("POST /appointments/quick-book - Psychologist unavailable: psychologist_id=%d, date=%s",
				req.PsychologistID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgPsychologistUnavailable)

		case errors.Is(err, quickBook.ErrRoomNotFound):
			h.logger.Warn("POST /appointments/quick-book - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quickBook.ErrPsychologistNotFound):
			h.logger.Warn("POST /appointments/quick-book - Psychologist not found: psychologist_id=%d", req.PsychologistID)
			handlers.RespondNotFound(w, msgPsychologistNotFound)

		case errors.Is(err, quickBook.ErrInvalidTimeRange):
			h.logger.Warn("POST /appointments/quick-book - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, quickBook.ErrInvalidInput):
			h.logger.Warn("POST /appointments/quick-book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments/quick-book - Failed to book: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/quick-book - Appointment booked: appointment_id=%s, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

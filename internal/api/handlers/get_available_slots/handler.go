package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/viamente/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/viamente/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidRoomID         = "ID de sala inválido"
	msgInvalidPsychologistID = "ID de psicólogo inválido"
	msgMissingDates          = "startDate e endDate são obrigatórios"
	msgInvalidDate           = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidDateRange      = "intervalo de datas inválido"
	msgRoomNotFound          = "sala não encontrada"
	msgPsychologistNotFound  = "psicólogo não encontrado"
	msgInvalidInput          = "dados da requisição inválidos"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleRoom GET /api/rooms/{roomId}/available-slots
// Query params: startDate, endDate (required, YYYY-MM-DD)
func (h *Handler) HandleRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/available-slots - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	h.serve(w, r, getAvailableSlots.KindRoom, roomID)
}

// HandlePsychologist GET /api/psychologists/{psychologistId}/available-slots
// Query params: startDate, endDate (required, YYYY-MM-DD)
func (h *Handler) HandlePsychologist(w http.ResponseWriter, r *http.Request) {
	psychologistID, err := strconv.ParseInt(mux.Vars(r)["psychologistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /psychologists/{psychologistId}/available-slots - Invalid psychologist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPsychologistID)
		return
	}

	h.serve(w, r, getAvailableSlots.KindPsychologist, psychologistID)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, kind getAvailableSlots.ResourceKind, resourceID int64) {
	query := r.URL.Query()
	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")

	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET available-slots - Missing dates: kind=%s, resource_id=%d", kind, resourceID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(kind, resourceID, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET available-slots - Invalid date: kind=%s, resource_id=%d, error=%v", kind, resourceID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrRoomNotFound):
			h.logger.Warn("GET available-slots - Room not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getAvailableSlots.ErrPsychologistNotFound):
			h.logger.Warn("GET available-slots - Psychologist not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgPsychologistNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDateRange):
			h.logger.Warn("GET available-slots - Invalid date range: %s to %s", startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET available-slots - Failed to compute slots: kind=%s, resource_id=%d, error=%v",
				kind, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET available-slots - Computed slots for %d days: kind=%s, resource_id=%d",
		len(result.Days), kind, resourceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

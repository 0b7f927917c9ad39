package get_slot_sessions

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitStudio-SessionService/internal/api/handlers"
	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/internal/service/sessions"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgInvalidTime      = "некорректное время слота, ожидается HH:MM"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные данные запроса"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/slots/{time}/sessions
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/slots/{time}/sessions - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	slotTime, err := types.NewTimeStringFromString(vars["time"])
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/slots/{time}/sessions - Invalid slot time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /trainers/{id}/slots/{time}/sessions - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/slots/{time}/sessions - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListSlotSessions(r.Context(), trainerID, date, slotTime)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("GET /trainers/{id}/slots/{time}/sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /trainers/{id}/slots/{time}/sessions - Failed to get slot sessions: trainer_id=%d, date=%s, time=%s, error=%v",
				trainerID, dateStr, slotTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/slots/{time}/sessions - Sessions retrieved: trainer_id=%d, date=%s, time=%s, count=%d",
		trainerID, dateStr, slotTime, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(trainerID, date, slotTime.String(), result))
}

package confirm_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitStudio-SessionService/internal/api/handlers"
	"github.com/m04kA/FitStudio-SessionService/internal/service/sessions"
)

const (
	msgInvalidSessionID  = "некорректный ID сессии"
	msgNotFound          = "сессия не найдена"
	msgAlreadyCancelled  = "сессия уже отменена"
	msgInvalidTransition = "сессию в этом статусе нельзя подтвердить"
	msgSlotConflict      = "слот уже занят подтверждённой записью"
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

// Handle PATCH /api/v1/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := strconv.ParseInt(vars["sessionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/confirm - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	result, err := h.service.Confirm(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/confirm - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /sessions/{id}/confirm - Already cancelled: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, sessions.ErrInvalidTransition):
			h.logger.Warn("PATCH /sessions/{id}/confirm - Invalid transition: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, sessions.ErrSlotConflict):
			h.logger.Warn("PATCH /sessions/{id}/confirm - Slot conflict: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("PATCH /sessions/{id}/confirm - Failed to confirm session: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/confirm - Session confirmed successfully: session_id=%d", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}

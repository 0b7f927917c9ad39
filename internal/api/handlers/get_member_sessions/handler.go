package get_member_sessions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitStudio-SessionService/internal/api/handlers"
	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/internal/service/sessions"
)

const (
	msgInvalidMemberID = "некорректный ID клиента"
	msgInvalidStatus   = "некорректный статус сессии"
	msgInvalidInput    = "некорректные данные запроса"
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

// Handle GET /api/v1/members/{memberId}/sessions
// Query params: status (optional, requested|confirmed|cancelled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	memberID, err := strconv.ParseInt(vars["memberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /members/{id}/sessions - Invalid member ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	var status *domain.SessionStatus
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		s := domain.SessionStatus(statusStr)
		if !domain.ValidSessionStatus(s) {
			h.logger.Warn("GET /members/{id}/sessions - Invalid status: %s", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &s
	}

	result, err := h.service.GetMemberSessions(r.Context(), memberID, status)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("GET /members/{id}/sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /members/{id}/sessions - Failed to get sessions: member_id=%d, error=%v",
				memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /members/{id}/sessions - Sessions retrieved: member_id=%d, count=%d",
		memberID, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(memberID, result))
}

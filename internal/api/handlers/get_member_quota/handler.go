package get_member_quota

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitStudio-SessionService/internal/api/handlers"
	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/internal/service/quota"
)

const (
	msgInvalidMemberID = "некорректный ID клиента"
	msgMissingType     = "тип сессии обязателен"
	msgInvalidType     = "некорректный тип сессии"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoActivePackage = "нет активного пакета на указанную дату"
	msgInvalidInput    = "некорректные данные запроса"
)

type Handler struct {
	ledger QuotaLedger
	logger Logger
}

func NewHandler(ledger QuotaLedger, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Handle GET /api/v1/members/{memberId}/quota
// Query params: type (required, personal|group|self), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	memberID, err := strconv.ParseInt(vars["memberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /members/{id}/quota - Invalid member ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	typeStr := r.URL.Query().Get("type")
	if typeStr == "" {
		h.logger.Warn("GET /members/{id}/quota - Missing session type")
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	sessionType := domain.SessionType(typeStr)
	if !domain.ValidSessionType(sessionType) {
		h.logger.Warn("GET /members/{id}/quota - Invalid session type: %s", typeStr)
		handlers.RespondBadRequest(w, msgInvalidType)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /members/{id}/quota - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /members/{id}/quota - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	snapshot, err := h.ledger.Usage(r.Context(), memberID, sessionType, date)
	if err != nil {
		switch {
		case errors.Is(err, quota.ErrNoActivePackage):
			h.logger.Warn("GET /members/{id}/quota - No active package: member_id=%d, type=%s, date=%s",
				memberID, sessionType, dateStr)
			handlers.RespondNotFound(w, msgNoActivePackage)

		case errors.Is(err, quota.ErrInvalidInput):
			h.logger.Warn("GET /members/{id}/quota - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /members/{id}/quota - Failed to get quota: member_id=%d, type=%s, date=%s, error=%v",
				memberID, sessionType, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /members/{id}/quota - Quota retrieved: member_id=%d, type=%s, used=%d, total=%d",
		memberID, sessionType, snapshot.Used, snapshot.Total)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(memberID, sessionType, snapshot))
}

package request_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/FitStudio-SessionService/internal/api/handlers"
	requestSession "github.com/m04kA/FitStudio-SessionService/internal/usecase/request_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgNoActivePackage    = "нет активного пакета, покрывающего выбранную дату"
	msgQuotaExceeded      = "квота по этому типу занятий исчерпана"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase RequestSessionUseCase
	logger  Logger
}

func NewHandler(useCase RequestSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RequestSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, requestSession.ErrNoActivePackage):
			h.logger.Warn("POST /sessions - No active package: member_id=%d", req.MemberID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoActivePackage)

		case errors.Is(err, requestSession.ErrQuotaExceeded):
			h.logger.Warn("POST /sessions - Quota exceeded: member_id=%d", req.MemberID)
			handlers.RespondConflict(w, msgQuotaExceeded)

		case errors.Is(err, requestSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions - Failed to create session request: member_id=%d, error=%v",
				req.MemberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session requested successfully: session_id=%d, member_id=%d",
		result.ID, req.MemberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package reserve_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/FitStudio-SessionService/internal/api/handlers"
	reserveSession "github.com/m04kA/FitStudio-SessionService/internal/usecase/reserve_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgNoActivePackage    = "нет активного пакета, покрывающего выбранную дату"
	msgQuotaExceeded      = "квота по этому типу занятий исчерпана"
	msgSlotConflict       = "слот уже занят подтверждённой записью"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase ReserveSessionUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/reserve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/reserve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sessions/reserve - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveSession.ErrNoActivePackage):
			h.logger.Warn("POST /sessions/reserve - No active package: member_id=%d", req.MemberID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoActivePackage)

		case errors.Is(err, reserveSession.ErrQuotaExceeded):
			h.logger.Warn("POST /sessions/reserve - Quota exceeded: member_id=%d", req.MemberID)
			handlers.RespondConflict(w, msgQuotaExceeded)

		case errors.Is(err, reserveSession.ErrSlotConflict):
			h.logger.Warn("POST /sessions/reserve - Slot conflict: trainer_id=%d, time=%s",
				req.TrainerID, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, reserveSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions/reserve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions/reserve - Failed to reserve session: member_id=%d, error=%v",
				req.MemberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/reserve - Session reserved successfully: session_id=%d, member_id=%d",
		result.ID, req.MemberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

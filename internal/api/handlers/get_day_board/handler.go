package get_day_board

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitStudio-SessionService/internal/api/handlers"
	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	getDayBoard "github.com/m04kA/FitStudio-SessionService/internal/usecase/get_day_board"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRole      = "некорректная роль, ожидается trainer или member"
	msgInvalidInput     = "некорректные данные запроса"
)

type Handler struct {
	useCase GetDayBoardUseCase
	logger  Logger
}

func NewHandler(useCase GetDayBoardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/board
// Query params: date (required, YYYY-MM-DD), role (optional, trainer|member, default trainer)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/board - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /trainers/{id}/board - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Роль определяет набор доступных действий над слотами
	role := domain.RoleTrainer
	if roleStr := r.URL.Query().Get("role"); roleStr != "" {
		role = domain.CallerRole(roleStr)
		if role != domain.RoleTrainer && role != domain.RoleMember {
			h.logger.Warn("GET /trainers/{id}/board - Invalid role: %s", roleStr)
			handlers.RespondBadRequest(w, msgInvalidRole)
			return
		}
	}

	useCaseReq, err := ToUseCaseRequest(trainerID, dateStr, role)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/board - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayBoard.ErrInvalidInput):
			h.logger.Warn("GET /trainers/{id}/board - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /trainers/{id}/board - Failed to build board: trainer_id=%d, date=%s, error=%v",
				trainerID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/board - Board built successfully: trainer_id=%d, date=%s, slots_count=%d",
		trainerID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

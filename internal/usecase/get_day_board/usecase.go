package get_day_board

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/internal/service/quota"
)

// UseCase use case доски расписания тренера на день
//
// Для каждого слота сетки собирает все его сессии, строит SlotView
// (показываемая сессия, конкурирующие заявки, история отмен), добавляет
// квотные аннотации и доступные действия
type UseCase struct {
	sessionRepo  SessionRepository
	ledger       QuotaLedger
	memberClient MemberServiceClient
	schedule     Schedule
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	ledger QuotaLedger,
	memberClient MemberServiceClient,
	schedule Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		ledger:       ledger,
		memberClient: memberClient,
		schedule:     schedule,
		logger:       logger,
	}
}

// Execute выполняет use case загрузки доски
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayBoard: trainer=%d, date=%s, role=%s",
		req.TrainerID, req.Date.Format(domain.DateFormat), req.Role)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayBoard: validation failed: %v", err)
		return nil, err
	}

	// 1. Сетка слотов дня
	gridSlots, err := generateTimeSlots(uc.schedule)
	if err != nil {
		uc.logger.Error("GetDayBoard: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 2. Все сессии тренера на день, включая отменённые (нужны для истории)
	daySessions, err := uc.sessionRepo.GetWithFilter(ctx, domain.SessionFilter{
		TrainerID: &req.TrainerID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetDayBoard: failed to get sessions: %v", err)
		return nil, fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
	}

	// 3. Группируем по слотам и строим представление каждого слота
	groups := groupBySlot(gridSlots, daySessions)

	slots := make([]BoardSlot, 0, len(gridSlots))
	for _, slotTime := range gridSlots {
		view := domain.BuildSlotView(groups[slotTime])

		boardSlot := BoardSlot{
			StartTime:        slotTime,
			PendingCount:     view.PendingCount,
			CancelledHistory: make([]SessionView, 0, len(view.CancelledHistory)),
			Actions:          domain.AvailableActions(view, req.Role),
		}

		if view.DisplayedSession != nil {
			sv := uc.sessionView(ctx, view.DisplayedSession, true)
			boardSlot.Displayed = &sv
		}

		for _, cancelled := range view.CancelledHistory {
			boardSlot.CancelledHistory = append(boardSlot.CancelledHistory, uc.sessionView(ctx, cancelled, false))
		}

		slots = append(slots, boardSlot)
	}

	uc.logger.Info("GetDayBoard: built %d slots for trainer=%d, date=%s",
		len(slots), req.TrainerID, req.Date.Format(domain.DateFormat))

	return &Response{
		TrainerID: req.TrainerID,
		Date:      req.Date,
		Slots:     slots,
	}, nil
}

// sessionView собирает представление сессии для доски
// Имя клиента и квота заполняются по принципу graceful degradation:
// их отсутствие не валит загрузку доски
func (uc *UseCase) sessionView(ctx context.Context, s *domain.Session, withQuota bool) SessionView {
	view := SessionView{
		ID:                 s.ID,
		MemberID:           s.MemberID,
		Type:               string(s.Type),
		Status:             string(s.Status),
		CancellationReason: s.CancellationReason,
	}

	if member, err := uc.memberClient.GetMemberWithGracefulDegradation(ctx, s.MemberID); err == nil {
		view.MemberName = member.DisplayName
	}

	if withQuota {
		view.Quota = uc.quotaView(ctx, s)
	}

	return view
}

// quotaView снимает квотную аннотацию для сессии
// nil, если на дату сессии нет активного пакета (клиент мог записаться,
// когда пакет ещё действовал)
func (uc *UseCase) quotaView(ctx context.Context, s *domain.Session) *QuotaView {
	usage, err := uc.ledger.Usage(ctx, s.MemberID, s.Type, s.SessionDate)
	if err != nil {
		if !errors.Is(err, quota.ErrNoActivePackage) {
			uc.logger.Error("GetDayBoard: failed to get quota for member=%d: %v", s.MemberID, err)
		}
		return nil
	}

	view := &QuotaView{
		Used:  usage.Used,
		Total: usage.Total,
	}

	if s.IsConfirmed() {
		rank, err := uc.ledger.RankOf(ctx, s)
		if err != nil {
			uc.logger.Error("GetDayBoard: failed to get rank for session=%d: %v", s.ID, err)
		} else {
			view.Rank = rank
		}
	}

	return view
}

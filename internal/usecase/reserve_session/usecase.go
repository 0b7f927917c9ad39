package reserve_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/internal/service/quota"
)

// UseCase use case прямого бронирования сессии тренером
//
// Эквивалент "создать заявку и сразу подтвердить", выполненный как одна
// операция: проверка пакета, проверка конфликтов слота и вставка идут
// в одной сериализуемой транзакции. Частичный сбой между созданием и
// подтверждением не может оставить осиротевшую заявку в статусе requested
type UseCase struct {
	sessionRepo     SessionRepository
	ledger          QuotaLedger
	policy          ConflictPolicy
	txManager       TransactionManager
	enforceQuotaCap bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	ledger QuotaLedger,
	policy ConflictPolicy,
	txManager TransactionManager,
	enforceQuotaCap bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:     sessionRepo,
		ledger:          ledger,
		policy:          policy,
		txManager:       txManager,
		enforceQuotaCap: enforceQuotaCap,
		logger:          logger,
	}
}

// Execute выполняет use case прямого бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSession: member=%d, trainer=%d, type=%s, date=%s, time=%s",
		req.MemberID, req.TrainerID, req.Type, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSession: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Session
	var snapshot domain.QuotaSnapshot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Проверяем покрытие активным пакетом и снимаем срез квоты
		usage, err := uc.ledger.Usage(txCtx, req.MemberID, req.Type, req.Date)
		if err != nil {
			if errors.Is(err, quota.ErrNoActivePackage) {
				uc.logger.Warn("ReserveSession: no active package for member=%d, type=%s, date=%s",
					req.MemberID, req.Type, req.Date.Format(domain.DateFormat))
				return ErrNoActivePackage
			}
			uc.logger.Error("ReserveSession: failed to resolve quota: %v", err)
			return fmt.Errorf("%w: failed to resolve quota: %v", ErrInternal, err)
		}

		// 2. Жёсткий лимит квоты - только в строгом режиме
		// По умолчанию бронирование сверх квоты допускается
		if uc.enforceQuotaCap && usage.Exhausted() {
			uc.logger.Warn("ReserveSession: quota exhausted for member=%d, type=%s (%d/%d)",
				req.MemberID, req.Type, usage.Used, usage.Total)
			return ErrQuotaExceeded
		}

		// 3. Собираем сессии слота с блокировкой (FOR UPDATE) и проверяем конфликты
		slotSessions, err := uc.sessionRepo.GetWithFilter(txCtx, domain.SessionFilter{
			TrainerID: &req.TrainerID,
			StartDate: &req.Date,
			EndDate:   &req.Date,
			StartTime: &req.StartTime,
		})
		if err != nil {
			uc.logger.Error("ReserveSession: failed to get slot sessions: %v", err)
			return fmt.Errorf("%w: failed to get slot sessions: %v", ErrInternal, err)
		}

		candidate := &domain.Session{
			TrainerID:   req.TrainerID,
			MemberID:    req.MemberID,
			SessionDate: req.Date,
			StartTime:   req.StartTime,
			Type:        req.Type,
			Status:      domain.StatusConfirmed,
		}

		if !uc.policy.CanConfirm(candidate, slotSessions) {
			uc.logger.Warn("ReserveSession: slot conflict for trainer=%d, date=%s, time=%s",
				req.TrainerID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotConflict
		}

		// 4. Вставляем сразу подтверждённую сессию
		created, err := uc.sessionRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("ReserveSession: failed to create session: %v", err)
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		result = created
		snapshot = usage
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveSession: successfully reserved session id=%d", result.ID)
	return fromDomain(result, snapshot), nil
}

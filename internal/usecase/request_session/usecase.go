package request_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/internal/service/quota"
)

// UseCase use case создания заявки на тренировочную сессию
// Создаёт сессию в статусе requested после проверки, что клиента
// покрывает активный пакет нужного типа на запрошенную дату
type UseCase struct {
	sessionRepo     SessionRepository
	ledger          QuotaLedger
	txManager       TransactionManager
	enforceQuotaCap bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// enforceQuotaCap включает жёсткий лимит квоты при записи; по умолчанию
// выключен - заявка сверх квоты допустима, студия разбирается с ней сама
func NewUseCase(
	sessionRepo SessionRepository,
	ledger QuotaLedger,
	txManager TransactionManager,
	enforceQuotaCap bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:     sessionRepo,
		ledger:          ledger,
		txManager:       txManager,
		enforceQuotaCap: enforceQuotaCap,
		logger:          logger,
	}
}

// Execute выполняет use case создания заявки
// Проверка пакета и вставка выполняются в сериализуемой транзакции,
// чтобы строгий режим квоты не обгоняли конкурентные записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestSession: member=%d, trainer=%d, type=%s, date=%s, time=%s",
		req.MemberID, req.TrainerID, req.Type, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestSession: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Session
	var snapshot domain.QuotaSnapshot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Проверяем покрытие активным пакетом; заодно получаем срез квоты
		usage, err := uc.ledger.Usage(txCtx, req.MemberID, req.Type, req.Date)
		if err != nil {
			if errors.Is(err, quota.ErrNoActivePackage) {
				uc.logger.Warn("RequestSession: no active package for member=%d, type=%s, date=%s",
					req.MemberID, req.Type, req.Date.Format(domain.DateFormat))
				return ErrNoActivePackage
			}
			uc.logger.Error("RequestSession: failed to resolve quota: %v", err)
			return fmt.Errorf("%w: failed to resolve quota: %v", ErrInternal, err)
		}

		if uc.enforceQuotaCap && usage.Exhausted() {
			uc.logger.Warn("RequestSession: quota exhausted for member=%d, type=%s (%d/%d)",
				req.MemberID, req.Type, usage.Used, usage.Total)
			return ErrQuotaExceeded
		}

		session := &domain.Session{
			TrainerID:   req.TrainerID,
			MemberID:    req.MemberID,
			SessionDate: req.Date,
			StartTime:   req.StartTime,
			Type:        req.Type,
			Status:      domain.StatusRequested,
		}

		created, err := uc.sessionRepo.Create(txCtx, session)
		if err != nil {
			uc.logger.Error("RequestSession: failed to create session: %v", err)
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		result = created
		snapshot = usage
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RequestSession: successfully created session id=%d", result.ID)
	return fromDomain(result, snapshot), nil
}

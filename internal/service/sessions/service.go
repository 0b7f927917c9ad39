package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	sessionRepo "github.com/m04kA/FitStudio-SessionService/internal/infra/storage/session"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

// Service сервис жизненного цикла тренировочных сессий
// Владеет переходами статусов: requested -> confirmed,
// requested -> cancelled, confirmed -> cancelled
type Service struct {
	sessionRepo SessionRepository
	policy      *ConflictPolicy
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(sessionRepo SessionRepository, policy *ConflictPolicy, logger Logger) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		policy:      policy,
		logger:      logger,
	}
}

// GetByID получает сессию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%d not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: repository error for session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return session, nil
}

// Confirm подтверждает запрошенную сессию
// Допустим только переход requested -> confirmed; подтверждение проходит
// через ConflictPolicy по конкурентам слота
func (s *Service) Confirm(ctx context.Context, id int64) (*domain.Session, error) {
	s.logger.Info("Confirm: confirming session id=%d", id)

	session, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.IsCancelled() {
		s.logger.Warn("Confirm: session id=%d is already cancelled", id)
		return nil, ErrAlreadyCancelled
	}
	if !session.CanBeConfirmed() {
		s.logger.Warn("Confirm: session id=%d cannot be confirmed, status=%s", id, session.Status)
		return nil, ErrInvalidTransition
	}

	// Собираем конкурентов слота для политики конфликтов
	slotSessions, err := s.slotSessions(ctx, session.TrainerID, session.SessionDate, session.StartTime)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanConfirm(session, slotSessions) {
		s.logger.Warn("Confirm: slot conflict for session id=%d (trainer=%d, date=%s, time=%s)",
			id, session.TrainerID, session.SessionDate.Format(domain.DateFormat), session.StartTime)
		return nil, ErrSlotConflict
	}

	if err := s.sessionRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Confirm: repository error for session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: successfully confirmed session id=%d", id)
	return updated, nil
}

// Cancel отменяет сессию с указанием причины
// Допустимо из requested и confirmed; запись сохраняется для истории
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*domain.Session, error) {
	s.logger.Info("Cancel: cancelling session id=%d", id)

	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	session, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.CanBeCancelled() {
		s.logger.Warn("Cancel: session id=%d is already cancelled", id)
		return nil, ErrAlreadyCancelled
	}

	if err := s.sessionRepo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Cancel: repository error for session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled session id=%d", id)
	return updated, nil
}

// ListSlotSessions возвращает все сессии слота (включая отменённые)
// Используется, когда на слот претендует несколько заявок и тренеру
// нужно разобрать их по одной
func (s *Service) ListSlotSessions(ctx context.Context, trainerID int64, date time.Time, slotTime types.TimeString) ([]*domain.Session, error) {
	if trainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}
	if err := slotTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid slot time: %v", ErrInvalidInput, err)
	}

	return s.slotSessions(ctx, trainerID, date, slotTime)
}

// GetMemberSessions возвращает сессии клиента, опционально по статусу
func (s *Service) GetMemberSessions(ctx context.Context, memberID int64, status *domain.SessionStatus) ([]*domain.Session, error) {
	if memberID <= 0 {
		return nil, fmt.Errorf("%w: memberID must be positive", ErrInvalidInput)
	}
	if status != nil && !domain.ValidSessionStatus(*status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
	}

	filter := domain.SessionFilter{
		MemberID: &memberID,
		Status:   status,
	}

	sessions, err := s.sessionRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetMemberSessions: repository error for member=%d: %v", memberID, err)
		return nil, fmt.Errorf("%w: GetMemberSessions - repository error: %v", ErrInternal, err)
	}

	return sessions, nil
}

// slotSessions возвращает все сессии одного слота (тренер, дата, время)
func (s *Service) slotSessions(ctx context.Context, trainerID int64, date time.Time, slotTime types.TimeString) ([]*domain.Session, error) {
	filter := domain.SessionFilter{
		TrainerID: &trainerID,
		StartDate: &date,
		EndDate:   &date,
		StartTime: &slotTime,
	}

	sessions, err := s.sessionRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("slotSessions: repository error for trainer=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: slotSessions - repository error: %v", ErrInternal, err)
	}

	return sessions, nil
}

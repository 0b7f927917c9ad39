package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// Ledger вычисляет расход квоты и хронологический ранг подтверждённых сессий
//
// Значения не кэшируются: каждый вызов пересчитывает их из текущего набора
// подтверждённых сессий. Счётчик, живущий отдельно от истории, - главный
// источник рассинхрона в системах записи, поэтому used и rank всегда
// выводятся заново из хранилища
type Ledger struct {
	resolver    *Resolver
	sessionRepo SessionRepository
	logger      Logger
}

// NewLedger создает новый экземпляр квотной книги
func NewLedger(resolver *Resolver, sessionRepo SessionRepository, logger Logger) *Ledger {
	return &Ledger{
		resolver:    resolver,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Usage возвращает срез квоты клиента по типу сессий на дату:
// total из активных пакетов, used - количество подтверждённых сессий
// этого типа, чьи даты попадают в окно пакета (границы включительно)
func (l *Ledger) Usage(ctx context.Context, memberID int64, sessionType domain.SessionType, date time.Time) (domain.QuotaSnapshot, error) {
	total, window, err := l.resolver.QuotaTotals(ctx, memberID, sessionType, date)
	if err != nil {
		return domain.QuotaSnapshot{}, err
	}

	confirmed, err := l.confirmedInWindow(ctx, memberID, sessionType, window)
	if err != nil {
		return domain.QuotaSnapshot{}, err
	}

	return domain.QuotaSnapshot{
		Used:   len(confirmed),
		Total:  total,
		Window: window,
	}, nil
}

// RankOf возвращает порядковый номер подтверждённой сессии среди
// подтверждённых сессий того же клиента, типа и окна пакета
//
// Ранг 1-based, упорядочение по (дата, время) по возрастанию.
// Совпадения даты и времени (которых в нормальных данных не бывает)
// разрешаются по updated_at, затем по id
func (l *Ledger) RankOf(ctx context.Context, s *domain.Session) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: session is required", ErrInvalidInput)
	}
	if !s.IsConfirmed() {
		return 0, ErrSessionNotConfirmed
	}

	_, window, err := l.resolver.QuotaTotals(ctx, s.MemberID, s.Type, s.SessionDate)
	if err != nil {
		return 0, err
	}

	confirmed, err := l.confirmedInWindow(ctx, s.MemberID, s.Type, window)
	if err != nil {
		return 0, err
	}

	// Репозиторий отдаёт сессии уже в ранговом порядке:
	// (session_date, start_time, updated_at, id) по возрастанию
	for i, c := range confirmed {
		if c.ID == s.ID {
			return i + 1, nil
		}
	}

	l.logger.Warn("RankOf: confirmed session id=%d not found in window of member=%d", s.ID, s.MemberID)
	return 0, fmt.Errorf("%w: RankOf - session id=%d not in confirmed set", ErrInternal, s.ID)
}

// confirmedInWindow возвращает подтверждённые сессии клиента по типу в окне квоты
func (l *Ledger) confirmedInWindow(ctx context.Context, memberID int64, sessionType domain.SessionType, window domain.QuotaWindow) ([]*domain.Session, error) {
	status := domain.StatusConfirmed
	filter := domain.SessionFilter{
		MemberID:  &memberID,
		Type:      &sessionType,
		Status:    &status,
		StartDate: &window.Start,
		EndDate:   &window.End,
	}

	sessions, err := l.sessionRepo.GetWithFilter(ctx, filter)
	if err != nil {
		l.logger.Error("confirmedInWindow: repository error for member=%d: %v", memberID, err)
		return nil, fmt.Errorf("%w: confirmedInWindow - repository error: %v", ErrInternal, err)
	}

	return sessions, nil
}

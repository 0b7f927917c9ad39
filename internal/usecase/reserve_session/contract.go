package reserve_session

import (
	"context"
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
	GetWithFilter(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error)
}

// QuotaLedger интерфейс квотной книги
type QuotaLedger interface {
	Usage(ctx context.Context, memberID int64, sessionType domain.SessionType, date time.Time) (domain.QuotaSnapshot, error)
}

// ConflictPolicy интерфейс политики разрешения конфликтов слота
type ConflictPolicy interface {
	CanConfirm(candidate *domain.Session, slotSessions []*domain.Session) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

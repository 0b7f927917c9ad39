package request_session

import (
	"context"
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
}

// QuotaLedger интерфейс квотной книги
// Покрытие активным пакетом проверяется через Usage: квотная книга сама
// резолвит пакеты и возвращает quota.ErrNoActivePackage, если их нет
type QuotaLedger interface {
	Usage(ctx context.Context, memberID int64, sessionType domain.SessionType, date time.Time) (domain.QuotaSnapshot, error)
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

package quota

import (
	"context"
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// PackageRepository интерфейс репозитория пакетов тренировок
type PackageRepository interface {
	GetActiveByMemberAndDate(ctx context.Context, memberID int64, date time.Time) ([]*domain.TrainingPackage, error)
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetWithFilter(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

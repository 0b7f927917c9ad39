package get_day_board

import (
	"context"
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/internal/integrations/memberservice"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetWithFilter(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error)
}

// QuotaLedger интерфейс квотной книги
type QuotaLedger interface {
	Usage(ctx context.Context, memberID int64, sessionType domain.SessionType, date time.Time) (domain.QuotaSnapshot, error)
	RankOf(ctx context.Context, s *domain.Session) (int, error)
}

// MemberServiceClient интерфейс клиента справочника клиентов
type MemberServiceClient interface {
	GetMemberWithGracefulDegradation(ctx context.Context, memberID int64) (*memberservice.Member, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Schedule сетка слотов рабочего дня студии
// Слоты идут с фиксированным шагом от открытия до закрытия
type Schedule struct {
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
}

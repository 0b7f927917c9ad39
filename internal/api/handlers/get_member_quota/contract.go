package get_member_quota

import (
	"context"
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

type QuotaLedger interface {
	Usage(ctx context.Context, memberID int64, sessionType domain.SessionType, date time.Time) (domain.QuotaSnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_slot_sessions

import (
	"context"
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

type SessionService interface {
	ListSlotSessions(ctx context.Context, trainerID int64, date time.Time, slotTime types.TimeString) ([]*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_member_sessions

import (
	"context"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

type SessionService interface {
	GetMemberSessions(ctx context.Context, memberID int64, status *domain.SessionStatus) ([]*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

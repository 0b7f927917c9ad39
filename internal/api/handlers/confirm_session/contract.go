package confirm_session

import (
	"context"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

type SessionService interface {
	Confirm(ctx context.Context, id int64) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

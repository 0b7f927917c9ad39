package reserve_session

import (
	"context"

	reserveSession "github.com/m04kA/FitStudio-SessionService/internal/usecase/reserve_session"
)

type ReserveSessionUseCase interface {
	Execute(ctx context.Context, req *reserveSession.Request) (*reserveSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_day_board

import (
	"context"

	getDayBoard "github.com/m04kA/FitStudio-SessionService/internal/usecase/get_day_board"
)

type GetDayBoardUseCase interface {
	Execute(ctx context.Context, req *getDayBoard.Request) (*getDayBoard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

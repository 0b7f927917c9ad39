package get_day_board

import (
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	getDayBoard "github.com/m04kA/FitStudio-SessionService/internal/usecase/get_day_board"
)

// DayBoardResponse HTTP response model
type DayBoardResponse struct {
	TrainerID int64       `json:"trainerId"`
	Date      string      `json:"date"`
	Slots     []BoardSlot `json:"slots"`
}

// BoardSlot модель слота доски
type BoardSlot struct {
	StartTime        string        `json:"startTime"`
	Displayed        *SessionView  `json:"displayed,omitempty"`
	PendingCount     int           `json:"pendingCount"`
	CancelledHistory []SessionView `json:"cancelledHistory,omitempty"`
	Actions          []string      `json:"actions"`
}

// SessionView модель сессии на доске
type SessionView struct {
	ID                 int64      `json:"id"`
	MemberID           int64      `json:"memberId"`
	MemberName         string     `json:"memberName,omitempty"`
	SessionType        string     `json:"sessionType"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	Quota              *QuotaView `json:"quota,omitempty"`
}

// QuotaView квотная аннотация сессии
type QuotaView struct {
	Used  int `json:"used"`
	Total int `json:"total"`
	Rank  int `json:"rank,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayBoard.Response) *DayBoardResponse {
	slots := make([]BoardSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		actions := make([]string, len(slot.Actions))
		for j, action := range slot.Actions {
			actions[j] = string(action)
		}

		boardSlot := BoardSlot{
			StartTime:    slot.StartTime.String(),
			PendingCount: slot.PendingCount,
			Actions:      actions,
		}

		if slot.Displayed != nil {
			view := toSessionView(*slot.Displayed)
			boardSlot.Displayed = &view
		}

		if len(slot.CancelledHistory) > 0 {
			boardSlot.CancelledHistory = make([]SessionView, len(slot.CancelledHistory))
			for j, cancelled := range slot.CancelledHistory {
				boardSlot.CancelledHistory[j] = toSessionView(cancelled)
			}
		}

		slots[i] = boardSlot
	}

	return &DayBoardResponse{
		TrainerID: resp.TrainerID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}

func toSessionView(view getDayBoard.SessionView) SessionView {
	result := SessionView{
		ID:                 view.ID,
		MemberID:           view.MemberID,
		MemberName:         view.MemberName,
		SessionType:        view.Type,
		Status:             view.Status,
		CancellationReason: view.CancellationReason,
	}

	if view.Quota != nil {
		result.Quota = &QuotaView{
			Used:  view.Quota.Used,
			Total: view.Quota.Total,
			Rank:  view.Quota.Rank,
		}
	}

	return result
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(trainerID int64, dateStr string, role domain.CallerRole) (*getDayBoard.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDayBoard.Request{
		TrainerID: trainerID,
		Date:      date,
		Role:      role,
	}, nil
}

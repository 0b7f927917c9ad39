package get_day_board

import (
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

// Request модель запроса доски расписания тренера на день
type Request struct {
	TrainerID int64             // ID тренера
	Date      time.Time         // Дата (без времени)
	Role      domain.CallerRole // Роль вызывающего (для вычисления доступных действий)
}

// Response модель ответа с доской расписания
type Response struct {
	TrainerID int64
	Date      time.Time
	Slots     []BoardSlot
}

// BoardSlot один слот доски расписания
type BoardSlot struct {
	StartTime types.TimeString

	// Displayed показываемая сессия слота (nil - слот пуст)
	// Выбирается по приоритету confirmed > requested > cancelled,
	// при равном статусе - последняя обновлённая
	Displayed *SessionView

	// PendingCount количество конкурирующих заявок, не показанных как основная
	PendingCount int

	// CancelledHistory отменённые сессии слота для истории
	CancelledHistory []SessionView

	// Actions действия, доступные вызывающему над этим слотом
	Actions []domain.SlotAction
}

// SessionView сессия в представлении доски
type SessionView struct {
	ID                 int64
	MemberID           int64
	MemberName         string // Пустая строка при недоступности MemberService
	Type               string
	Status             string
	CancellationReason *string

	// Quota срез квоты клиента по типу этой сессии
	// nil, если на дату сессии не нашлось активного пакета
	Quota *QuotaView
}

// QuotaView квотная аннотация сессии
type QuotaView struct {
	Used  int
	Total int
	// Rank хронологический номер подтверждённой сессии в окне пакета (1-based)
	// 0 для неподтверждённых сессий
	Rank int
}

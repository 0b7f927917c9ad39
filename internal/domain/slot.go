package domain

// SlotView агрегированное представление одного слота доски расписания
// Заменяет набор разрозненных флагов: всё представление выводится
// одной чистой функцией из списка сессий слота
type SlotView struct {
	// DisplayedSession сессия, показываемая в слоте
	// Выбирается по приоритету статусов: confirmed > requested > cancelled
	DisplayedSession *Session

	// PendingCount количество запрошенных сессий, не показанных как основная
	// (конкурирующие заявки на тот же слот)
	PendingCount int

	// CancelledHistory отменённые сессии слота, для истории
	CancelledHistory []*Session
}

// IsEmpty возвращает true, если в слоте нет ни одной сессии
func (v SlotView) IsEmpty() bool {
	return v.DisplayedSession == nil
}

// IsContested возвращает true, если на слот есть конкурирующие заявки
func (v SlotView) IsContested() bool {
	return v.PendingCount > 0
}

// statusPriority приоритет показа статусов на доске
var statusPriority = map[SessionStatus]int{
	StatusConfirmed: 3,
	StatusRequested: 2,
	StatusCancelled: 1,
}

// BuildSlotView строит представление слота из всех его сессий
//
// Правила выбора показываемой сессии:
//  1. Приоритет статусов: confirmed > requested > cancelled
//  2. При равном статусе побеждает последняя обновлённая (updated_at)
//
// PendingCount считает запрошенные сессии, которые не стали показываемой.
// CancelledHistory собирает все отменённые сессии слота.
func BuildSlotView(sessions []*Session) SlotView {
	view := SlotView{
		CancelledHistory: make([]*Session, 0),
	}

	for _, s := range sessions {
		if s.IsCancelled() {
			view.CancelledHistory = append(view.CancelledHistory, s)
		}
		if displayWins(s, view.DisplayedSession) {
			view.DisplayedSession = s
		}
	}

	for _, s := range sessions {
		if s.IsRequested() && s != view.DisplayedSession {
			view.PendingCount++
		}
	}

	return view
}

// displayWins возвращает true, если candidate должна показываться вместо current
func displayWins(candidate, current *Session) bool {
	if current == nil {
		return true
	}

	cp, op := statusPriority[candidate.Status], statusPriority[current.Status]
	if cp != op {
		return cp > op
	}

	return candidate.UpdatedAt.After(current.UpdatedAt)
}

// CallerRole роль вызывающего для вычисления доступных действий
type CallerRole string

const (
	RoleTrainer CallerRole = "trainer"
	RoleMember  CallerRole = "member"
)

// SlotAction действие, доступное над слотом
type SlotAction string

const (
	ActionReserve SlotAction = "reserve"
	ActionConfirm SlotAction = "confirm"
	ActionCancel  SlotAction = "cancel"
	ActionEdit    SlotAction = "edit"
)

// AvailableActions возвращает набор действий, доступных над слотом
// Чистая функция от представления слота и роли вызывающего
func AvailableActions(view SlotView, role CallerRole) []SlotAction {
	displayed := view.DisplayedSession

	// Пустой слот или только отменённые сессии - слот свободен для записи
	if displayed == nil || displayed.IsCancelled() {
		return []SlotAction{ActionReserve}
	}

	switch {
	case displayed.IsRequested() && role == RoleTrainer:
		return []SlotAction{ActionConfirm, ActionCancel}
	case displayed.IsRequested():
		return []SlotAction{ActionCancel}
	case displayed.IsConfirmed() && role == RoleTrainer:
		return []SlotAction{ActionCancel, ActionEdit}
	default:
		return []SlotAction{ActionCancel}
	}
}

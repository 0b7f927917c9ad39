package sessions

import "github.com/m04kA/FitStudio-SessionService/internal/domain"

// ConflictPolicy решает, допустимо ли подтверждение сессии при конкурентах
// в том же слоте (тренер, дата, время)
//
// Два режима, выбор фиксируется конфигом [reservation] exclusive_slots:
//
//   - permissive (по умолчанию): подтверждение разрешено, даже если слот уже
//     держит подтверждённую сессию. Конкурента никто не отменяет - доска
//     показывает одну сессию по приоритету, остальные остаются в истории
//   - exclusive: подтверждение отклоняется, пока в слоте есть другая
//     активная подтверждённая сессия
type ConflictPolicy struct {
	exclusive bool
}

// NewConflictPolicy создает политику разрешения конфликтов слота
func NewConflictPolicy(exclusive bool) *ConflictPolicy {
	return &ConflictPolicy{exclusive: exclusive}
}

// Exclusive возвращает true, если включён режим эксклюзивных слотов
func (p *ConflictPolicy) Exclusive() bool {
	return p.exclusive
}

// CanConfirm возвращает true, если candidate можно подтвердить
// при данном наборе сессий слота. Чистая функция, без побочных эффектов
func (p *ConflictPolicy) CanConfirm(candidate *domain.Session, slotSessions []*domain.Session) bool {
	if !p.exclusive {
		return true
	}

	for _, s := range slotSessions {
		if s.ID == candidate.ID {
			continue
		}
		if s.IsConfirmed() {
			return false
		}
	}

	return true
}

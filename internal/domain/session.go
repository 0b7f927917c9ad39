package domain

import (
	"time"

	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

// SessionStatus статус тренировочной сессии
type SessionStatus string

const (
	StatusRequested SessionStatus = "requested"
	StatusConfirmed SessionStatus = "confirmed"
	StatusCancelled SessionStatus = "cancelled"
)

// SessionType тип тренировочной сессии
// Каждый тип списывается из отдельной квоты пакета
type SessionType string

const (
	TypePersonal SessionType = "personal" // персональная тренировка 1:1
	TypeGroup    SessionType = "group"    // групповая тренировка
	TypeSelf     SessionType = "self"     // самостоятельное занятие
)

// Session тренировочная сессия в расписании тренера
// Физически никогда не удаляется - отмена это смена статуса,
// история остаётся для аудита
type Session struct {
	ID          int64
	TrainerID   int64
	MemberID    int64
	SessionDate time.Time
	StartTime   types.TimeString
	Type        SessionType
	Status      SessionStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRequested возвращает true, если сессия ожидает подтверждения
func (s *Session) IsRequested() bool {
	return s.Status == StatusRequested
}

// IsConfirmed возвращает true, если сессия подтверждена
func (s *Session) IsConfirmed() bool {
	return s.Status == StatusConfirmed
}

// IsCancelled возвращает true, если сессия отменена
func (s *Session) IsCancelled() bool {
	return s.Status == StatusCancelled
}

// IsActive возвращает true, если сессия не отменена
func (s *Session) IsActive() bool {
	return s.Status != StatusCancelled
}

// CanBeConfirmed возвращает true, если сессию можно подтвердить
// Подтверждается только запрошенная сессия
func (s *Session) CanBeConfirmed() bool {
	return s.Status == StatusRequested
}

// CanBeCancelled возвращает true, если сессию можно отменить
// Отмена возможна из requested и confirmed; cancelled - терминальный статус
func (s *Session) CanBeCancelled() bool {
	return s.Status == StatusRequested || s.Status == StatusConfirmed
}

// CanTransitionTo проверяет допустимость перехода статуса
// Разрешены только: requested -> confirmed, requested -> cancelled, confirmed -> cancelled
func (s *Session) CanTransitionTo(target SessionStatus) bool {
	switch target {
	case StatusConfirmed:
		return s.CanBeConfirmed()
	case StatusCancelled:
		return s.CanBeCancelled()
	default:
		return false
	}
}

// SlotKey ключ слота расписания: (тренер, дата, время)
// Не хранится в БД, вычисляется из сессии
type SlotKey struct {
	TrainerID int64
	Date      time.Time
	Time      types.TimeString
}

// Slot возвращает ключ слота, который занимает сессия
func (s *Session) Slot() SlotKey {
	return SlotKey{
		TrainerID: s.TrainerID,
		Date:      s.SessionDate,
		Time:      s.StartTime,
	}
}

// SessionFilter фильтр для выборки сессий из хранилища
type SessionFilter struct {
	TrainerID *int64            // Фильтр по тренеру (опционально)
	MemberID  *int64            // Фильтр по клиенту (опционально)
	StartDate *time.Time        // Начало периода включительно (опционально)
	EndDate   *time.Time        // Конец периода включительно (опционально)
	Type      *SessionType      // Фильтр по типу сессии (опционально)
	Status    *SessionStatus    // Фильтр по статусу (опционально)
	StartTime *types.TimeString // Фильтр по времени слота (опционально)
}

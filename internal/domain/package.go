package domain

import "time"

// PackageStatus статус купленного пакета тренировок
type PackageStatus string

const (
	PackageActive PackageStatus = "active"
	PackageClosed PackageStatus = "closed"
)

// TrainingPackage купленный пакет тренировок с квотами по типам сессий
// Создаётся внешним процессом продажи; этот сервис пакеты только читает
type TrainingPackage struct {
	ID       int64
	MemberID int64

	// Квоты по типам сессий (количество занятий, входящих в пакет)
	PersonalTotal int
	GroupTotal    int
	SelfTotal     int

	StartDate time.Time
	EndDate   time.Time
	Status    PackageStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalFor возвращает квоту пакета для указанного типа сессий
func (p *TrainingPackage) TotalFor(sessionType SessionType) int {
	switch sessionType {
	case TypePersonal:
		return p.PersonalTotal
	case TypeGroup:
		return p.GroupTotal
	case TypeSelf:
		return p.SelfTotal
	default:
		return 0
	}
}

// Covers возвращает true, если дата попадает в окно действия пакета
// Обе границы включительно
func (p *TrainingPackage) Covers(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(p.StartDate)) && !d.After(truncateToDay(p.EndDate))
}

// IsActive возвращает true, если пакет активен
func (p *TrainingPackage) IsActive() bool {
	return p.Status == PackageActive
}

// QuotaWindow окно действия квоты: объединение окон активных пакетов клиента
// При нескольких пересекающихся пакетах берётся min(start) и max(end),
// а квоты суммируются - это документированное решение, а не инвариант данных
type QuotaWindow struct {
	Start time.Time
	End   time.Time
}

// Contains возвращает true, если дата попадает в окно, границы включительно
func (w QuotaWindow) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(w.Start)) && !d.After(truncateToDay(w.End))
}

// IsZero возвращает true, если окно не задано
func (w QuotaWindow) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// QuotaSnapshot моментальный срез квоты клиента по типу сессий
// Вычисляется при каждом запросе из текущего набора подтверждённых сессий,
// не кэшируется и нигде не хранится
type QuotaSnapshot struct {
	Used   int
	Total  int
	Window QuotaWindow
}

// Remaining возвращает остаток квоты (может быть отрицательным:
// жёсткий лимит при записи по умолчанию не применяется)
func (q QuotaSnapshot) Remaining() int {
	return q.Total - q.Used
}

// Exhausted возвращает true, если квота исчерпана
func (q QuotaSnapshot) Exhausted() bool {
	return q.Used >= q.Total
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

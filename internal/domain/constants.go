package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default schedule grid values
const (
	DefaultDayOpenTime         = "08:00"
	DefaultDayCloseTime        = "22:00"
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 15
	MaxSlotDurationMinutes      = 240
	MaxCancellationReasonLength = 500
)

// AllSessionTypes список всех типов сессий
var AllSessionTypes = []SessionType{
	TypePersonal,
	TypeGroup,
	TypeSelf,
}

// AllSessionStatuses список всех статусов сессий
var AllSessionStatuses = []SessionStatus{
	StatusRequested,
	StatusConfirmed,
	StatusCancelled,
}

// ActiveStatuses статусы неотменённых сессий
// Используется при подсчёте занятости слотов
var ActiveStatuses = []SessionStatus{
	StatusRequested,
	StatusConfirmed,
}

// ValidSessionType возвращает true для известного типа сессии
func ValidSessionType(t SessionType) bool {
	for _, valid := range AllSessionTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// ValidSessionStatus возвращает true для известного статуса сессии
func ValidSessionStatus(s SessionStatus) bool {
	for _, valid := range AllSessionStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

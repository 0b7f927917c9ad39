package request_session

import (
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

// Request модель запроса на создание заявки на сессию
type Request struct {
	MemberID  int64              // ID клиента
	TrainerID int64              // ID тренера
	Type      domain.SessionType // Тип сессии (personal/group/self)
	Date      time.Time          // Дата сессии (без времени)
	StartTime types.TimeString   // Время начала слота (например, "10:00")
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID        int64
	MemberID  int64
	TrainerID int64
	Type      string
	Date      time.Time
	StartTime types.TimeString
	Status    string

	// Срез квоты на момент создания заявки (для показа клиенту)
	QuotaUsed  int
	QuotaTotal int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain собирает Response из созданной сессии и среза квоты
func fromDomain(s *domain.Session, quota domain.QuotaSnapshot) *Response {
	return &Response{
		ID:         s.ID,
		MemberID:   s.MemberID,
		TrainerID:  s.TrainerID,
		Type:       string(s.Type),
		Date:       s.SessionDate,
		StartTime:  s.StartTime,
		Status:     string(s.Status),
		QuotaUsed:  quota.Used,
		QuotaTotal: quota.Total,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

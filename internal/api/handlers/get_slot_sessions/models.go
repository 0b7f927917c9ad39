package get_slot_sessions

import (
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// SlotSessionsResponse HTTP response model
type SlotSessionsResponse struct {
	TrainerID int64             `json:"trainerId"`
	Date      string            `json:"date"`
	StartTime string            `json:"startTime"`
	Sessions  []SessionResponse `json:"sessions"`
}

// SessionResponse модель сессии слота
type SessionResponse struct {
	ID                 int64   `json:"id"`
	MemberID           int64   `json:"memberId"`
	SessionType        string  `json:"sessionType"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain конвертирует сессии слота в HTTP response
func FromDomain(trainerID int64, date time.Time, slotTime string, sessions []*domain.Session) *SlotSessionsResponse {
	result := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		result[i] = SessionResponse{
			ID:                 s.ID,
			MemberID:           s.MemberID,
			SessionType:        string(s.Type),
			Status:             string(s.Status),
			CancellationReason: s.CancellationReason,
			CreatedAt:          s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:          s.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &SlotSessionsResponse{
		TrainerID: trainerID,
		Date:      date.Format(domain.DateFormat),
		StartTime: slotTime,
		Sessions:  result,
	}
}

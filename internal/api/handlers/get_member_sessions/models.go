package get_member_sessions

import (
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// MemberSessionsResponse HTTP response model
type MemberSessionsResponse struct {
	MemberID int64             `json:"memberId"`
	Sessions []SessionResponse `json:"sessions"`
}

// SessionResponse модель сессии клиента
type SessionResponse struct {
	ID                 int64   `json:"id"`
	TrainerID          int64   `json:"trainerId"`
	SessionType        string  `json:"sessionType"`
	SessionDate        string  `json:"sessionDate"`
	StartTime          string  `json:"startTime"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain конвертирует сессии клиента в HTTP response
func FromDomain(memberID int64, sessions []*domain.Session) *MemberSessionsResponse {
	result := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		result[i] = SessionResponse{
			ID:                 s.ID,
			TrainerID:          s.TrainerID,
			SessionType:        string(s.Type),
			SessionDate:        s.SessionDate.Format(domain.DateFormat),
			StartTime:          s.StartTime.String(),
			Status:             string(s.Status),
			CancellationReason: s.CancellationReason,
			CreatedAt:          s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:          s.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &MemberSessionsResponse{
		MemberID: memberID,
		Sessions: result,
	}
}

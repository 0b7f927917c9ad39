package cancel_session

import (
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/pkg/ptr"
)

// CancelSessionRequest HTTP request model
type CancelSessionRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID                 int64   `json:"id"`
	MemberID           int64   `json:"memberId"`
	TrainerID          int64   `json:"trainerId"`
	SessionType        string  `json:"sessionType"`
	SessionDate        string  `json:"sessionDate"`
	StartTime          string  `json:"startTime"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(s *domain.Session) *SessionResponse {
	resp := &SessionResponse{
		ID:                 s.ID,
		MemberID:           s.MemberID,
		TrainerID:          s.TrainerID,
		SessionType:        string(s.Type),
		SessionDate:        s.SessionDate.Format(domain.DateFormat),
		StartTime:          s.StartTime.String(),
		Status:             string(s.Status),
		CancellationReason: s.CancellationReason,
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          s.UpdatedAt.Format(time.RFC3339),
	}

	if s.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(s.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

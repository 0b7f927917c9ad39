package get_member_quota

import (
	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// QuotaResponse HTTP response model
type QuotaResponse struct {
	MemberID    int64  `json:"memberId"`
	SessionType string `json:"sessionType"`
	Used        int    `json:"used"`
	Total       int    `json:"total"`
	Remaining   int    `json:"remaining"`
	WindowStart string `json:"windowStart"`
	WindowEnd   string `json:"windowEnd"`
}

// FromDomain конвертирует квотный срез в HTTP response
func FromDomain(memberID int64, sessionType domain.SessionType, snapshot domain.QuotaSnapshot) *QuotaResponse {
	return &QuotaResponse{
		MemberID:    memberID,
		SessionType: string(sessionType),
		Used:        snapshot.Used,
		Total:       snapshot.Total,
		Remaining:   snapshot.Remaining(),
		WindowStart: snapshot.Window.Start.Format(domain.DateFormat),
		WindowEnd:   snapshot.Window.End.Format(domain.DateFormat),
	}
}

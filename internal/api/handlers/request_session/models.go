package request_session

import (
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	requestSession "github.com/m04kA/FitStudio-SessionService/internal/usecase/request_session"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

// RequestSessionRequest HTTP request model
type RequestSessionRequest struct {
	MemberID    int64  `json:"memberId"`
	TrainerID   int64  `json:"trainerId"`
	SessionType string `json:"sessionType"` // personal | group | self
	SessionDate string `json:"sessionDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID          int64  `json:"id"`
	MemberID    int64  `json:"memberId"`
	TrainerID   int64  `json:"trainerId"`
	SessionType string `json:"sessionType"`
	SessionDate string `json:"sessionDate"`
	StartTime   string `json:"startTime"`
	Status      string `json:"status"`
	QuotaUsed   int    `json:"quotaUsed"`
	QuotaTotal  int    `json:"quotaTotal"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RequestSessionRequest) ToUseCaseRequest() (*requestSession.Request, error) {
	sessionDate, err := time.Parse(domain.DateFormat, r.SessionDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &requestSession.Request{
		MemberID:  r.MemberID,
		TrainerID: r.TrainerID,
		Type:      domain.SessionType(r.SessionType),
		Date:      sessionDate,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:          resp.ID,
		MemberID:    resp.MemberID,
		TrainerID:   resp.TrainerID,
		SessionType: resp.Type,
		SessionDate: resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Status:      resp.Status,
		QuotaUsed:   resp.QuotaUsed,
		QuotaTotal:  resp.QuotaTotal,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}

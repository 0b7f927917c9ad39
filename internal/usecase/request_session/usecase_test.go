package request_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/internal/service/quota"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// txManagerMock выполняет функцию без реальной транзакции
type txManagerMock struct{}

func (txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// sessionRepoMock фиксирует созданные сессии
type sessionRepoMock struct {
	created []*domain.Session
	nextID  int64
}

func (m *sessionRepoMock) Create(_ context.Context, s *domain.Session) (*domain.Session, error) {
	m.nextID++
	copied := *s
	copied.ID = m.nextID
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	m.created = append(m.created, &copied)
	return &copied, nil
}

// ledgerMock квотная книга с фиксированным срезом
type ledgerMock struct {
	snapshot domain.QuotaSnapshot
	err      error
}

func (m *ledgerMock) Usage(context.Context, int64, domain.SessionType, time.Time) (domain.QuotaSnapshot, error) {
	if m.err != nil {
		return domain.QuotaSnapshot{}, m.err
	}
	return m.snapshot, nil
}

func validRequest() *Request {
	return &Request{
		MemberID:  10,
		TrainerID: 1,
		Type:      domain.TypePersonal,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates requested session with quota snapshot", func(t *testing.T) {
		repo := &sessionRepoMock{}
		ledger := &ledgerMock{snapshot: domain.QuotaSnapshot{Used: 3, Total: 8}}
		uc := NewUseCase(repo, ledger, txManagerMock{}, false, nopLogger{})

		resp, err := uc.Execute(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusRequested), resp.Status)
		assert.Equal(t, 3, resp.QuotaUsed)
		assert.Equal(t, 8, resp.QuotaTotal)
		require.Len(t, repo.created, 1)
		assert.Equal(t, domain.StatusRequested, repo.created[0].Status)
	})

	t.Run("no active package creates nothing", func(t *testing.T) {
		repo := &sessionRepoMock{}
		ledger := &ledgerMock{err: quota.ErrNoActivePackage}
		uc := NewUseCase(repo, ledger, txManagerMock{}, false, nopLogger{})

		_, err := uc.Execute(ctx, validRequest())

		assert.ErrorIs(t, err, ErrNoActivePackage)
		assert.Empty(t, repo.created)
	})

	t.Run("exhausted quota allowed in default mode", func(t *testing.T) {
		repo := &sessionRepoMock{}
		ledger := &ledgerMock{snapshot: domain.QuotaSnapshot{Used: 8, Total: 8}}
		uc := NewUseCase(repo, ledger, txManagerMock{}, false, nopLogger{})

		resp, err := uc.Execute(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, 8, resp.QuotaUsed)
		require.Len(t, repo.created, 1)
	})

	t.Run("exhausted quota rejected with enforce_quota_cap", func(t *testing.T) {
		repo := &sessionRepoMock{}
		ledger := &ledgerMock{snapshot: domain.QuotaSnapshot{Used: 8, Total: 8}}
		uc := NewUseCase(repo, ledger, txManagerMock{}, true, nopLogger{})

		_, err := uc.Execute(ctx, validRequest())

		assert.ErrorIs(t, err, ErrQuotaExceeded)
		assert.Empty(t, repo.created)
	})

	t.Run("validation rejects bad input", func(t *testing.T) {
		uc := NewUseCase(&sessionRepoMock{}, &ledgerMock{}, txManagerMock{}, false, nopLogger{})

		tests := []struct {
			name   string
			mutate func(r *Request)
		}{
			{name: "zero member id", mutate: func(r *Request) { r.MemberID = 0 }},
			{name: "zero trainer id", mutate: func(r *Request) { r.TrainerID = 0 }},
			{name: "unknown type", mutate: func(r *Request) { r.Type = "yoga" }},
			{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
			{name: "empty start time", mutate: func(r *Request) { r.StartTime = "" }},
			{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "10am" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validRequest()
				tt.mutate(req)

				_, err := uc.Execute(context.Background(), req)

				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

package reserve_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/internal/service/quota"
	"github.com/m04kA/FitStudio-SessionService/internal/service/sessions"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type txManagerMock struct{}

func (txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// sessionRepoMock хранит существующие сессии слота и фиксирует созданные
type sessionRepoMock struct {
	slotSessions []*domain.Session
	created      []*domain.Session
	nextID       int64
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

func (m *sessionRepoMock) GetWithFilter(context.Context, domain.SessionFilter) ([]*domain.Session, error) {
	return m.slotSessions, nil
}

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

	t.Run("reserves session directly as confirmed", func(t *testing.T) {
		repo := &sessionRepoMock{}
		ledger := &ledgerMock{snapshot: domain.QuotaSnapshot{Used: 3, Total: 8}}
		uc := NewUseCase(repo, ledger, sessions.NewConflictPolicy(false), txManagerMock{}, false, nopLogger{})

		resp, err := uc.Execute(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		// Срез квоты уже учитывает только что подтверждённую сессию
		assert.Equal(t, 4, resp.QuotaUsed)
		assert.Equal(t, 8, resp.QuotaTotal)
		require.Len(t, repo.created, 1)
		assert.Equal(t, domain.StatusConfirmed, repo.created[0].Status)
	})

	t.Run("no active package creates nothing", func(t *testing.T) {
		repo := &sessionRepoMock{}
		uc := NewUseCase(repo, &ledgerMock{err: quota.ErrNoActivePackage},
			sessions.NewConflictPolicy(false), txManagerMock{}, false, nopLogger{})

		_, err := uc.Execute(ctx, validRequest())

		assert.ErrorIs(t, err, ErrNoActivePackage)
		assert.Empty(t, repo.created)
	})

	t.Run("over-quota reservation allowed in default mode", func(t *testing.T) {
		repo := &sessionRepoMock{}
		ledger := &ledgerMock{snapshot: domain.QuotaSnapshot{Used: 8, Total: 8}}
		uc := NewUseCase(repo, ledger, sessions.NewConflictPolicy(false), txManagerMock{}, false, nopLogger{})

		resp, err := uc.Execute(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, 9, resp.QuotaUsed)
		require.Len(t, repo.created, 1)
	})

	t.Run("over-quota reservation rejected with enforce_quota_cap", func(t *testing.T) {
		repo := &sessionRepoMock{}
		ledger := &ledgerMock{snapshot: domain.QuotaSnapshot{Used: 8, Total: 8}}
		uc := NewUseCase(repo, ledger, sessions.NewConflictPolicy(false), txManagerMock{}, true, nopLogger{})

		_, err := uc.Execute(ctx, validRequest())

		assert.ErrorIs(t, err, ErrQuotaExceeded)
		assert.Empty(t, repo.created)
	})

	t.Run("exclusive policy rejects occupied slot", func(t *testing.T) {
		repo := &sessionRepoMock{slotSessions: []*domain.Session{
			{ID: 99, Status: domain.StatusConfirmed},
		}}
		ledger := &ledgerMock{snapshot: domain.QuotaSnapshot{Used: 0, Total: 8}}
		uc := NewUseCase(repo, ledger, sessions.NewConflictPolicy(true), txManagerMock{}, false, nopLogger{})

		_, err := uc.Execute(ctx, validRequest())

		assert.ErrorIs(t, err, ErrSlotConflict)
		assert.Empty(t, repo.created)
	})

	t.Run("permissive policy allows occupied slot", func(t *testing.T) {
		repo := &sessionRepoMock{slotSessions: []*domain.Session{
			{ID: 99, Status: domain.StatusConfirmed},
		}}
		ledger := &ledgerMock{snapshot: domain.QuotaSnapshot{Used: 0, Total: 8}}
		uc := NewUseCase(repo, ledger, sessions.NewConflictPolicy(false), txManagerMock{}, false, nopLogger{})

		_, err := uc.Execute(ctx, validRequest())

		require.NoError(t, err)
		require.Len(t, repo.created, 1)
	})

	t.Run("validation rejects bad input", func(t *testing.T) {
		uc := NewUseCase(&sessionRepoMock{}, &ledgerMock{}, sessions.NewConflictPolicy(false),
			txManagerMock{}, false, nopLogger{})

		req := validRequest()
		req.Type = "yoga"

		_, err := uc.Execute(ctx, req)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

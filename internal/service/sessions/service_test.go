package sessions

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	sessionRepo "github.com/m04kA/FitStudio-SessionService/internal/infra/storage/session"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// sessionRepoMock in-memory репозиторий сессий
type sessionRepoMock struct {
	sessions map[int64]*domain.Session
}

func newSessionRepoMock(sessions ...*domain.Session) *sessionRepoMock {
	m := &sessionRepoMock{sessions: make(map[int64]*domain.Session)}
	for _, s := range sessions {
		m.sessions[s.ID] = s
	}
	return m
}

func (m *sessionRepoMock) GetByID(_ context.Context, id int64) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *sessionRepoMock) GetWithFilter(_ context.Context, filter domain.SessionFilter) ([]*domain.Session, error) {
	var result []*domain.Session
	for _, s := range m.sessions {
		if filter.TrainerID != nil && s.TrainerID != *filter.TrainerID {
			continue
		}
		if filter.MemberID != nil && s.MemberID != *filter.MemberID {
			continue
		}
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && s.SessionDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && s.SessionDate.After(*filter.EndDate) {
			continue
		}
		if filter.StartTime != nil && s.StartTime != *filter.StartTime {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
}

func (m *sessionRepoMock) UpdateStatus(_ context.Context, id int64, status domain.SessionStatus) error {
	s, ok := m.sessions[id]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	return nil
}

func (m *sessionRepoMock) Cancel(_ context.Context, id int64, reason string) error {
	s, ok := m.sessions[id]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	now := time.Now()
	s.Status = domain.StatusCancelled
	s.CancellationReason = &reason
	s.CancelledAt = &now
	s.UpdatedAt = now
	return nil
}

func testSession(id int64, status domain.SessionStatus) *domain.Session {
	return &domain.Session{
		ID:          id,
		TrainerID:   1,
		MemberID:    10,
		SessionDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00"),
		Type:        domain.TypePersonal,
		Status:      status,
	}
}

func TestService_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms requested session", func(t *testing.T) {
		repo := newSessionRepoMock(testSession(1, domain.StatusRequested))
		svc := NewService(repo, NewConflictPolicy(false), nopLogger{})

		result, err := svc.Confirm(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, result.Status)
	})

	t.Run("session not found", func(t *testing.T) {
		svc := NewService(newSessionRepoMock(), NewConflictPolicy(false), nopLogger{})

		_, err := svc.Confirm(ctx, 42)

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("cancelled session cannot be confirmed", func(t *testing.T) {
		repo := newSessionRepoMock(testSession(1, domain.StatusCancelled))
		svc := NewService(repo, NewConflictPolicy(false), nopLogger{})

		_, err := svc.Confirm(ctx, 1)

		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("confirmed session cannot be confirmed again", func(t *testing.T) {
		repo := newSessionRepoMock(testSession(1, domain.StatusConfirmed))
		svc := NewService(repo, NewConflictPolicy(false), nopLogger{})

		_, err := svc.Confirm(ctx, 1)

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("permissive policy allows second confirmation in slot", func(t *testing.T) {
		repo := newSessionRepoMock(
			testSession(1, domain.StatusRequested),
			testSession(2, domain.StatusConfirmed),
		)
		svc := NewService(repo, NewConflictPolicy(false), nopLogger{})

		result, err := svc.Confirm(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, result.Status)
	})

	t.Run("exclusive policy rejects occupied slot", func(t *testing.T) {
		repo := newSessionRepoMock(
			testSession(1, domain.StatusRequested),
			testSession(2, domain.StatusConfirmed),
		)
		svc := NewService(repo, NewConflictPolicy(true), nopLogger{})

		_, err := svc.Confirm(ctx, 1)

		assert.ErrorIs(t, err, ErrSlotConflict)
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels requested session with reason", func(t *testing.T) {
		repo := newSessionRepoMock(testSession(1, domain.StatusRequested))
		svc := NewService(repo, NewConflictPolicy(false), nopLogger{})

		result, err := svc.Cancel(ctx, 1, "клиент заболел")

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, result.Status)
		require.NotNil(t, result.CancellationReason)
		assert.Equal(t, "клиент заболел", *result.CancellationReason)
		assert.NotNil(t, result.CancelledAt)
	})

	t.Run("cancels confirmed session", func(t *testing.T) {
		repo := newSessionRepoMock(testSession(1, domain.StatusConfirmed))
		svc := NewService(repo, NewConflictPolicy(false), nopLogger{})

		result, err := svc.Cancel(ctx, 1, "")

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, result.Status)
	})

	t.Run("second cancel fails", func(t *testing.T) {
		repo := newSessionRepoMock(testSession(1, domain.StatusCancelled))
		svc := NewService(repo, NewConflictPolicy(false), nopLogger{})

		_, err := svc.Cancel(ctx, 1, "повторная отмена")

		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("reason too long", func(t *testing.T) {
		repo := newSessionRepoMock(testSession(1, domain.StatusRequested))
		svc := NewService(repo, NewConflictPolicy(false), nopLogger{})

		_, err := svc.Cancel(ctx, 1, strings.Repeat("a", domain.MaxCancellationReasonLength+1))

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetMemberSessions(t *testing.T) {
	ctx := context.Background()

	repo := newSessionRepoMock(
		testSession(1, domain.StatusRequested),
		testSession(2, domain.StatusConfirmed),
		testSession(3, domain.StatusCancelled),
	)
	svc := NewService(repo, NewConflictPolicy(false), nopLogger{})

	t.Run("all sessions without status filter", func(t *testing.T) {
		result, err := svc.GetMemberSessions(ctx, 10, nil)

		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := domain.StatusConfirmed
		result, err := svc.GetMemberSessions(ctx, 10, &status)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(2), result[0].ID)
	})

	t.Run("invalid status", func(t *testing.T) {
		status := domain.SessionStatus("pending")
		_, err := svc.GetMemberSessions(ctx, 10, &status)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid member id", func(t *testing.T) {
		_, err := svc.GetMemberSessions(ctx, -1, nil)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_ListSlotSessions(t *testing.T) {
	ctx := context.Background()

	repo := newSessionRepoMock(
		testSession(1, domain.StatusConfirmed),
		testSession(2, domain.StatusRequested),
		testSession(3, domain.StatusCancelled),
	)
	svc := NewService(repo, NewConflictPolicy(false), nopLogger{})

	t.Run("returns all slot sessions including cancelled", func(t *testing.T) {
		result, err := svc.ListSlotSessions(ctx, 1,
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), types.TimeString("10:00"))

		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("invalid slot time", func(t *testing.T) {
		_, err := svc.ListSlotSessions(ctx, 1,
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), types.TimeString("25:99"))

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

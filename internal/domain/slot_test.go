package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotSession(id int64, status SessionStatus, updatedAt time.Time) *Session {
	return &Session{
		ID:        id,
		Status:    status,
		UpdatedAt: updatedAt,
	}
}

func TestBuildSlotView(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty slot", func(t *testing.T) {
		view := BuildSlotView(nil)

		assert.Nil(t, view.DisplayedSession)
		assert.True(t, view.IsEmpty())
		assert.Equal(t, 0, view.PendingCount)
		assert.Empty(t, view.CancelledHistory)
	})

	t.Run("confirmed wins over requested", func(t *testing.T) {
		requested := slotSession(1, StatusRequested, base.Add(time.Hour))
		confirmed := slotSession(2, StatusConfirmed, base)

		view := BuildSlotView([]*Session{requested, confirmed})

		require.NotNil(t, view.DisplayedSession)
		assert.Equal(t, int64(2), view.DisplayedSession.ID)
		assert.Equal(t, 1, view.PendingCount)
		assert.True(t, view.IsContested())
	})

	t.Run("requested wins over cancelled", func(t *testing.T) {
		cancelled := slotSession(1, StatusCancelled, base.Add(time.Hour))
		requested := slotSession(2, StatusRequested, base)

		view := BuildSlotView([]*Session{cancelled, requested})

		require.NotNil(t, view.DisplayedSession)
		assert.Equal(t, int64(2), view.DisplayedSession.ID)
		assert.Equal(t, 0, view.PendingCount)
		assert.Len(t, view.CancelledHistory, 1)
	})

	t.Run("equal status resolved by updated_at", func(t *testing.T) {
		older := slotSession(1, StatusRequested, base)
		newer := slotSession(2, StatusRequested, base.Add(time.Minute))

		view := BuildSlotView([]*Session{older, newer})

		require.NotNil(t, view.DisplayedSession)
		assert.Equal(t, int64(2), view.DisplayedSession.ID)
		assert.Equal(t, 1, view.PendingCount)
	})

	t.Run("only cancelled sessions", func(t *testing.T) {
		first := slotSession(1, StatusCancelled, base)
		second := slotSession(2, StatusCancelled, base.Add(time.Minute))

		view := BuildSlotView([]*Session{first, second})

		require.NotNil(t, view.DisplayedSession)
		assert.Equal(t, int64(2), view.DisplayedSession.ID)
		assert.Len(t, view.CancelledHistory, 2)
		assert.Equal(t, 0, view.PendingCount)
	})

	t.Run("contested slot counts all losing requests", func(t *testing.T) {
		confirmed := slotSession(1, StatusConfirmed, base)
		reqA := slotSession(2, StatusRequested, base)
		reqB := slotSession(3, StatusRequested, base.Add(time.Minute))
		cancelled := slotSession(4, StatusCancelled, base)

		view := BuildSlotView([]*Session{confirmed, reqA, reqB, cancelled})

		require.NotNil(t, view.DisplayedSession)
		assert.Equal(t, int64(1), view.DisplayedSession.ID)
		assert.Equal(t, 2, view.PendingCount)
		assert.Len(t, view.CancelledHistory, 1)
	})
}

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		name      string
		displayed *Session
		role      CallerRole
		want      []SlotAction
	}{
		{
			name:      "empty slot for trainer",
			displayed: nil,
			role:      RoleTrainer,
			want:      []SlotAction{ActionReserve},
		},
		{
			name:      "cancelled displayed is free slot",
			displayed: &Session{Status: StatusCancelled},
			role:      RoleMember,
			want:      []SlotAction{ActionReserve},
		},
		{
			name:      "requested for trainer",
			displayed: &Session{Status: StatusRequested},
			role:      RoleTrainer,
			want:      []SlotAction{ActionConfirm, ActionCancel},
		},
		{
			name:      "requested for member",
			displayed: &Session{Status: StatusRequested},
			role:      RoleMember,
			want:      []SlotAction{ActionCancel},
		},
		{
			name:      "confirmed for trainer",
			displayed: &Session{Status: StatusConfirmed},
			role:      RoleTrainer,
			want:      []SlotAction{ActionCancel, ActionEdit},
		},
		{
			name:      "confirmed for member",
			displayed: &Session{Status: StatusConfirmed},
			role:      RoleMember,
			want:      []SlotAction{ActionCancel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := SlotView{DisplayedSession: tt.displayed}
			assert.Equal(t, tt.want, AvailableActions(view, tt.role))
		})
	}
}

package sessions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

func TestConflictPolicy_CanConfirm(t *testing.T) {
	candidate := &domain.Session{ID: 1, Status: domain.StatusRequested}

	tests := []struct {
		name         string
		exclusive    bool
		slotSessions []*domain.Session
		want         bool
	}{
		{
			name:      "permissive allows empty slot",
			exclusive: false,
			want:      true,
		},
		{
			name:      "permissive allows double booking",
			exclusive: false,
			slotSessions: []*domain.Session{
				{ID: 2, Status: domain.StatusConfirmed},
			},
			want: true,
		},
		{
			name:      "exclusive allows empty slot",
			exclusive: true,
			want:      true,
		},
		{
			name:      "exclusive rejects confirmed competitor",
			exclusive: true,
			slotSessions: []*domain.Session{
				{ID: 2, Status: domain.StatusConfirmed},
			},
			want: false,
		},
		{
			name:      "exclusive ignores requested competitors",
			exclusive: true,
			slotSessions: []*domain.Session{
				{ID: 2, Status: domain.StatusRequested},
				{ID: 3, Status: domain.StatusRequested},
			},
			want: true,
		},
		{
			name:      "exclusive ignores cancelled competitor",
			exclusive: true,
			slotSessions: []*domain.Session{
				{ID: 2, Status: domain.StatusCancelled},
			},
			want: true,
		},
		{
			name:      "exclusive ignores the candidate itself",
			exclusive: true,
			slotSessions: []*domain.Session{
				{ID: 1, Status: domain.StatusConfirmed},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := NewConflictPolicy(tt.exclusive)
			assert.Equal(t, tt.want, policy.CanConfirm(candidate, tt.slotSessions))
		})
	}
}

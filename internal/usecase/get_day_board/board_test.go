package get_day_board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("hourly grid for full day", func(t *testing.T) {
		slots, err := generateTimeSlots(Schedule{
			OpenTime:            types.TimeString("08:00"),
			CloseTime:           types.TimeString("22:00"),
			SlotDurationMinutes: 60,
		})

		require.NoError(t, err)
		require.Len(t, slots, 14)
		assert.Equal(t, types.TimeString("08:00"), slots[0])
		assert.Equal(t, types.TimeString("21:00"), slots[13])
	})

	t.Run("last slot must fit before close", func(t *testing.T) {
		slots, err := generateTimeSlots(Schedule{
			OpenTime:            types.TimeString("09:00"),
			CloseTime:           types.TimeString("11:30"),
			SlotDurationMinutes: 60,
		})

		require.NoError(t, err)
		// 10:30-11:30 влезает, 11:30-12:30 нет
		assert.Equal(t, []types.TimeString{"09:00", "10:00"}, slots)
	})

	t.Run("ninety minute slots", func(t *testing.T) {
		slots, err := generateTimeSlots(Schedule{
			OpenTime:            types.TimeString("08:00"),
			CloseTime:           types.TimeString("12:30"),
			SlotDurationMinutes: 90,
		})

		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"08:00", "09:30", "11:00"}, slots)
	})
}

func TestGroupBySlot(t *testing.T) {
	grid := []types.TimeString{"08:00", "09:00", "10:00"}

	t.Run("sessions land on their grid slot", func(t *testing.T) {
		sessions := []*domain.Session{
			{ID: 1, StartTime: types.TimeString("08:00")},
			{ID: 2, StartTime: types.TimeString("10:00")},
		}

		groups := groupBySlot(grid, sessions)

		require.Len(t, groups[types.TimeString("08:00")], 1)
		assert.Empty(t, groups[types.TimeString("09:00")])
		require.Len(t, groups[types.TimeString("10:00")], 1)
	})

	t.Run("off-grid session attaches to previous slot", func(t *testing.T) {
		sessions := []*domain.Session{
			{ID: 1, StartTime: types.TimeString("09:30")},
		}

		groups := groupBySlot(grid, sessions)

		require.Len(t, groups[types.TimeString("09:00")], 1)
		assert.Equal(t, int64(1), groups[types.TimeString("09:00")][0].ID)
	})

	t.Run("session before first slot attaches to first slot", func(t *testing.T) {
		sessions := []*domain.Session{
			{ID: 1, StartTime: types.TimeString("07:15")},
		}

		groups := groupBySlot(grid, sessions)

		require.Len(t, groups[types.TimeString("08:00")], 1)
		assert.Equal(t, int64(1), groups[types.TimeString("08:00")][0].ID)
		assert.Empty(t, groups[types.TimeString("09:00")])
		assert.Empty(t, groups[types.TimeString("10:00")])
	})

	t.Run("empty grid keeps no sessions", func(t *testing.T) {
		groups := groupBySlot(nil, []*domain.Session{
			{ID: 1, StartTime: types.TimeString("09:00")},
		})

		assert.Empty(t, groups)
	})
}

func TestNearestGridSlot(t *testing.T) {
	grid := []types.TimeString{"08:00", "09:00", "10:00"}

	assert.Equal(t, types.TimeString("09:00"), nearestGridSlot(grid, types.TimeString("09:45")))
	assert.Equal(t, types.TimeString("10:00"), nearestGridSlot(grid, types.TimeString("10:00")))
	assert.Equal(t, types.TimeString("10:00"), nearestGridSlot(grid, types.TimeString("23:00")))
	assert.True(t, nearestGridSlot(grid, types.TimeString("07:00")).IsZero())
}

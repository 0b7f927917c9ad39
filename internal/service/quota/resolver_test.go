package quota

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolver_QuotaTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("single active package", func(t *testing.T) {
		repo := &packageRepoMock{packages: []*domain.TrainingPackage{
			{
				ID:            1,
				MemberID:      10,
				PersonalTotal: 8,
				GroupTotal:    12,
				StartDate:     date(2025, 3, 1),
				EndDate:       date(2025, 3, 31),
				Status:        domain.PackageActive,
			},
		}}
		resolver := NewResolver(repo, nopLogger{})

		total, window, err := resolver.QuotaTotals(ctx, 10, domain.TypePersonal, date(2025, 3, 15))

		require.NoError(t, err)
		assert.Equal(t, 8, total)
		assert.Equal(t, date(2025, 3, 1), window.Start)
		assert.Equal(t, date(2025, 3, 31), window.End)
	})

	t.Run("overlapping packages sum totals and widen window", func(t *testing.T) {
		repo := &packageRepoMock{packages: []*domain.TrainingPackage{
			{
				ID:            1,
				MemberID:      10,
				PersonalTotal: 8,
				StartDate:     date(2025, 3, 1),
				EndDate:       date(2025, 3, 31),
				Status:        domain.PackageActive,
			},
			{
				ID:            2,
				MemberID:      10,
				PersonalTotal: 4,
				StartDate:     date(2025, 3, 20),
				EndDate:       date(2025, 4, 20),
				Status:        domain.PackageActive,
			},
		}}
		resolver := NewResolver(repo, nopLogger{})

		total, window, err := resolver.QuotaTotals(ctx, 10, domain.TypePersonal, date(2025, 3, 25))

		require.NoError(t, err)
		assert.Equal(t, 12, total)
		assert.Equal(t, date(2025, 3, 1), window.Start)
		assert.Equal(t, date(2025, 4, 20), window.End)
	})

	t.Run("no package covers date", func(t *testing.T) {
		repo := &packageRepoMock{packages: []*domain.TrainingPackage{
			{
				ID:            1,
				MemberID:      10,
				PersonalTotal: 8,
				StartDate:     date(2025, 3, 1),
				EndDate:       date(2025, 3, 31),
				Status:        domain.PackageActive,
			},
		}}
		resolver := NewResolver(repo, nopLogger{})

		_, _, err := resolver.QuotaTotals(ctx, 10, domain.TypePersonal, date(2025, 5, 1))

		assert.ErrorIs(t, err, ErrNoActivePackage)
	})

	t.Run("closed package is ignored", func(t *testing.T) {
		repo := &packageRepoMock{packages: []*domain.TrainingPackage{
			{
				ID:            1,
				MemberID:      10,
				PersonalTotal: 8,
				StartDate:     date(2025, 3, 1),
				EndDate:       date(2025, 3, 31),
				Status:        domain.PackageClosed,
			},
		}}
		resolver := NewResolver(repo, nopLogger{})

		_, _, err := resolver.QuotaTotals(ctx, 10, domain.TypePersonal, date(2025, 3, 15))

		assert.ErrorIs(t, err, ErrNoActivePackage)
	})

	t.Run("unknown session type", func(t *testing.T) {
		resolver := NewResolver(&packageRepoMock{}, nopLogger{})

		_, _, err := resolver.QuotaTotals(ctx, 10, domain.SessionType("yoga"), date(2025, 3, 15))

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestResolver_ActivePackagesFor(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid member id", func(t *testing.T) {
		resolver := NewResolver(&packageRepoMock{}, nopLogger{})

		_, err := resolver.ActivePackagesFor(ctx, 0, date(2025, 3, 15))

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("foreign packages are not returned", func(t *testing.T) {
		repo := &packageRepoMock{packages: []*domain.TrainingPackage{
			{
				ID:        1,
				MemberID:  99,
				StartDate: date(2025, 3, 1),
				EndDate:   date(2025, 3, 31),
				Status:    domain.PackageActive,
			},
		}}
		resolver := NewResolver(repo, nopLogger{})

		pkgs, err := resolver.ActivePackagesFor(ctx, 10, date(2025, 3, 15))

		require.NoError(t, err)
		assert.Empty(t, pkgs)
	})
}

package quota

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// packageRepoMock in-memory репозиторий пакетов
type packageRepoMock struct {
	packages []*domain.TrainingPackage
	err      error
}

func (m *packageRepoMock) GetActiveByMemberAndDate(_ context.Context, memberID int64, date time.Time) ([]*domain.TrainingPackage, error) {
	if m.err != nil {
		return nil, m.err
	}

	var result []*domain.TrainingPackage
	for _, pkg := range m.packages {
		if pkg.MemberID == memberID && pkg.IsActive() && pkg.Covers(date) {
			result = append(result, pkg)
		}
	}
	return result, nil
}

// sessionRepoMock in-memory репозиторий сессий
// Повторяет ранговый порядок реального репозитория:
// (session_date, start_time, updated_at, id) по возрастанию
type sessionRepoMock struct {
	sessions []*domain.Session
	err      error
}

func (m *sessionRepoMock) GetWithFilter(_ context.Context, filter domain.SessionFilter) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}

	var result []*domain.Session
	for _, s := range m.sessions {
		if filter.MemberID != nil && s.MemberID != *filter.MemberID {
			continue
		}
		if filter.Type != nil && s.Type != *filter.Type {
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
		result = append(result, s)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.SessionDate.Equal(b.SessionDate) {
			return a.SessionDate.Before(b.SessionDate)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime.IsBefore(b.StartTime)
		}
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
		return a.ID < b.ID
	})

	return result, nil
}

package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// Resolver определяет, какие купленные пакеты покрывают клиента на дату,
// и отдаёт суммарные квоты по типам сессий вместе с окном действия
//
// Чтение без побочных эффектов; пакеты этим сервисом не изменяются
type Resolver struct {
	packageRepo PackageRepository
	logger      Logger
}

// NewResolver создает новый экземпляр резолвера пакетов
func NewResolver(packageRepo PackageRepository, logger Logger) *Resolver {
	return &Resolver{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// ActivePackagesFor возвращает активные пакеты клиента, чьё окно покрывает дату
// Пустой список означает, что запись на эту дату невозможна
func (r *Resolver) ActivePackagesFor(ctx context.Context, memberID int64, date time.Time) ([]*domain.TrainingPackage, error) {
	if memberID <= 0 {
		return nil, fmt.Errorf("%w: memberID must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	pkgs, err := r.packageRepo.GetActiveByMemberAndDate(ctx, memberID, date)
	if err != nil {
		r.logger.Error("ActivePackagesFor: repository error for member=%d: %v", memberID, err)
		return nil, fmt.Errorf("%w: ActivePackagesFor - repository error: %v", ErrInternal, err)
	}

	return pkgs, nil
}

// QuotaTotals возвращает суммарную квоту клиента по типу сессий и окно действия
//
// Обычно на дату активен ровно один пакет, но данные это не гарантируют.
// При нескольких пересекающихся пакетах квоты суммируются, а окно
// расширяется до (min start, max end) - документированное решение
func (r *Resolver) QuotaTotals(ctx context.Context, memberID int64, sessionType domain.SessionType, date time.Time) (int, domain.QuotaWindow, error) {
	if !domain.ValidSessionType(sessionType) {
		return 0, domain.QuotaWindow{}, fmt.Errorf("%w: unknown session type %q", ErrInvalidInput, sessionType)
	}

	pkgs, err := r.ActivePackagesFor(ctx, memberID, date)
	if err != nil {
		return 0, domain.QuotaWindow{}, err
	}

	if len(pkgs) == 0 {
		r.logger.Warn("QuotaTotals: no active package for member=%d on %s", memberID, date.Format(domain.DateFormat))
		return 0, domain.QuotaWindow{}, ErrNoActivePackage
	}

	total := 0
	window := domain.QuotaWindow{Start: pkgs[0].StartDate, End: pkgs[0].EndDate}

	for _, pkg := range pkgs {
		total += pkg.TotalFor(sessionType)

		if pkg.StartDate.Before(window.Start) {
			window.Start = pkg.StartDate
		}
		if pkg.EndDate.After(window.End) {
			window.End = pkg.EndDate
		}
	}

	return total, window, nil
}

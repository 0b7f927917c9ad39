package packages

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/pkg/dbmetrics"
	"github.com/m04kA/FitStudio-SessionService/pkg/psqlbuilder"
)

var packageColumns = []string{
	"id",
	"member_id",
	"personal_total",
	"group_total",
	"self_total",
	"start_date",
	"end_date",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения пакетов тренировок
// Пакеты создаются внешним процессом продажи, этот сервис их только читает
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пакет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TrainingPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("training_packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	pkg, err := scanPackage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan package: %v", ErrScanRow, err)
	}

	return pkg, nil
}

// GetActiveByMemberAndDate получает активные пакеты клиента, чьё окно действия
// покрывает указанную дату (обе границы включительно)
// Пустой результат означает, что запись на эту дату невозможна
func (r *Repository) GetActiveByMemberAndDate(ctx context.Context, memberID int64, date time.Time) ([]*domain.TrainingPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("training_packages").
		Where(squirrel.Eq{"member_id": memberID}).
		Where(squirrel.Eq{"status": domain.PackageActive}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		OrderBy("start_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByMemberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByMemberAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPackages(rows)
}

// GetByMember получает все пакеты клиента (включая закрытые)
func (r *Repository) GetByMember(ctx context.Context, memberID int64) ([]*domain.TrainingPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("training_packages").
		Where(squirrel.Eq{"member_id": memberID}).
		OrderBy("start_date DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByMember - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMember - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPackages(rows)
}

// scanPackage сканирует одну строку в domain.TrainingPackage
func scanPackage(scan func(dest ...interface{}) error) (*domain.TrainingPackage, error) {
	var pkg domain.TrainingPackage
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&pkg.ID,
		&pkg.MemberID,
		&pkg.PersonalTotal,
		&pkg.GroupTotal,
		&pkg.SelfTotal,
		&pkg.StartDate,
		&pkg.EndDate,
		&pkg.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return &pkg, nil
}

// scanPackages сканирует результаты запроса в слайс пакетов
func scanPackages(rows *sql.Rows) ([]*domain.TrainingPackage, error) {
	result := make([]*domain.TrainingPackage, 0)

	for rows.Next() {
		pkg, err := scanPackage(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPackages - scan row: %v", ErrScanRow, err)
		}
		result = append(result, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPackages - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

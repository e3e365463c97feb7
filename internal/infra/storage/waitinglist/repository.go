package waitinglist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/pgerrors"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/psqlbuilder"
)

const constraintDateTypeFK = "waiting_list_date_type_fkey"

var entryColumns = []string{"id", "date_type", "email", "token", "entered", "lang"}

// Repository репозиторий листа ожидания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория листа ожидания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает запись или возвращает существующую для (email, date_type)
// created = false, если запись уже была; её токен и entered не меняются
func (r *Repository) Upsert(ctx context.Context, entry *domain.WaitingListEntry) (*domain.WaitingListEntry, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("waiting_list").
		Columns("date_type", "email", "token", "lang").
		Values(entry.DateType, entry.Email, entry.Token, entry.Lang).
		Suffix("ON CONFLICT (email, date_type) DO NOTHING RETURNING id, entered").
		ToSql()

	if err != nil {
		return nil, false, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.Entered)
	switch {
	case err == nil:
		return entry, true, nil
	case err == sql.ErrNoRows:
		// запись уже существует
		existing, err := r.GetByEmail(ctx, entry.Email, entry.DateType)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	case pgerrors.IsForeignKeyViolation(err, constraintDateTypeFK):
		return nil, false, ErrDateTypeNotFound
	default:
		return nil, false, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
}

// GetByToken получает запись по токену
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.WaitingListEntry, error) {
	return r.getOne(ctx, "GetByToken", squirrel.Eq{"token": token})
}

// GetByEmail получает запись по (email, date_type)
func (r *Repository) GetByEmail(ctx context.Context, email, dateType string) (*domain.WaitingListEntry, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": email, "date_type": dateType})
}

// ListByDateType получает все записи типа в порядке подписки
func (r *Repository) ListByDateType(ctx context.Context, dateType string) ([]*domain.WaitingListEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("waiting_list").
		Where(squirrel.Eq{"date_type": dateType}).
		OrderBy("entered ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.WaitingListEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDateType - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDateType - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// DeleteByToken удаляет запись по токену
func (r *Repository) DeleteByToken(ctx context.Context, token string) error {
	affected, err := r.delete(ctx, "DeleteByToken", squirrel.Eq{"token": token})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteByEmail удаляет запись (email, date_type), если она есть
func (r *Repository) DeleteByEmail(ctx context.Context, email, dateType string) error {
	_, err := r.delete(ctx, "DeleteByEmail", squirrel.Eq{"email": email, "date_type": dateType})
	return err
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.WaitingListEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("waiting_list").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	entry, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan entry: %v", ErrScanRow, op, err)
	}

	return entry, nil
}

func (r *Repository) delete(ctx context.Context, op string, where squirrel.Eq) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("waiting_list").
		Where(where).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.WaitingListEntry, error) {
	var entry domain.WaitingListEntry
	err := row.Scan(
		&entry.ID,
		&entry.DateType,
		&entry.Email,
		&entry.Token,
		&entry.Entered,
		&entry.Lang,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

package announcement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/psqlbuilder"
)

var columns = []string{"position", "lang", "content", "updated_at"}

// Repository репозиторий объявлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает объявление позиции на языке lang
func (r *Repository) Get(ctx context.Context, position, lang string) (*domain.Announcement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("announcements").
		Where(squirrel.Eq{"position": position, "lang": lang}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	announcement, err := scanAnnouncement(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAnnouncementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan announcement: %v", ErrScanRow, err)
	}

	return announcement, nil
}

// List получает все объявления, упорядоченные по позиции и языку
func (r *Repository) List(ctx context.Context) ([]*domain.Announcement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("announcements").
		OrderBy("position ASC", "lang ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	announcements := make([]*domain.Announcement, 0)
	for rows.Next() {
		announcement, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		announcements = append(announcements, announcement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return announcements, nil
}

// Upsert создает или заменяет текст объявления
func (r *Repository) Upsert(ctx context.Context, position, lang, content string) (*domain.Announcement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("announcements").
		Columns("position", "lang", "content").
		Values(position, lang, content).
		Suffix("ON CONFLICT (position, lang) DO UPDATE SET content = EXCLUDED.content, updated_at = now() " +
			"RETURNING position, lang, content, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	announcement, err := scanAnnouncement(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return announcement, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAnnouncement(row rowScanner) (*domain.Announcement, error) {
	var a domain.Announcement
	if err := row.Scan(&a.Position, &a.Lang, &a.Content, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

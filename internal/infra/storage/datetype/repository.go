package datetype

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/psqlbuilder"
)

// positionBooking голоса, доступные в форме бронирования
const positionBooking = "booking"

// Repository репозиторий типов слотов, их переводов и голосов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает тип с названием на языке lang
// Если перевода нет, DisplayName пустой
func (r *Repository) Get(ctx context.Context, value, lang string) (*domain.DateType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := dateTypesSelect(lang).
		Where(squirrel.Eq{"dt.value": value}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	dateType, err := scanDateType(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDateTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan date type: %v", ErrScanRow, err)
	}

	return dateType, nil
}

// List получает указанные типы с названиями на языке lang
func (r *Repository) List(ctx context.Context, values []string, lang string) ([]*domain.DateType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := dateTypesSelect(lang).
		Where(squirrel.Eq{"dt.value": values}).
		OrderBy("dt.value ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dateTypes := make([]*domain.DateType, 0)
	for rows.Next() {
		dateType, err := scanDateType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		dateTypes = append(dateTypes, dateType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return dateTypes, nil
}

// UpdateDeadline обновляет абсолютный дедлайн подачи заявок (nil убирает дедлайн)
func (r *Repository) UpdateDeadline(ctx context.Context, value string, deadline *time.Time) (*domain.DateType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("date_types").
		Set("application_deadline", deadline).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"value": value}).
		Suffix("RETURNING value, application_deadline").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDeadline - build update query: %v", ErrBuildQuery, err)
	}

	var dateType domain.DateType
	var applicationDeadline sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&dateType.Value, &applicationDeadline)

	if err == sql.ErrNoRows {
		return nil, ErrDateTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDeadline - execute update: %v", ErrExecQuery, err)
	}

	if applicationDeadline.Valid {
		dateType.ApplicationDeadline = &applicationDeadline.Time
	}

	return &dateType, nil
}

// ListVoices получает голоса формы бронирования типа с названиями на языке lang
func (r *Repository) ListVoices(ctx context.Context, dateType, lang string) ([]*domain.Voice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := voicesSelect(lang).
		Where(squirrel.Eq{"v.date_type": dateType, "v.position": positionBooking}).
		OrderBy("v.sort_order ASC", "v.value ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListVoices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVoices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	voices := make([]*domain.Voice, 0)
	for rows.Next() {
		voice, _, err := scanVoice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListVoices - scan row: %v", ErrScanRow, err)
		}
		voices = append(voices, voice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVoices - rows error: %v", ErrScanRow, err)
	}

	return voices, nil
}

// GetVoice получает голос типа с названием на языке lang
// Отсутствие перевода считается нарушением целостности данных: ErrTranslationMissing
func (r *Repository) GetVoice(ctx context.Context, dateType, value, lang string) (*domain.Voice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := voicesSelect(lang).
		Where(squirrel.Eq{"v.date_type": dateType, "v.value": value, "v.position": positionBooking}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetVoice - build select query: %v", ErrBuildQuery, err)
	}

	voice, translated, err := scanVoice(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVoice - scan voice: %v", ErrScanRow, err)
	}
	if !translated {
		return nil, fmt.Errorf("%w: voice=%s lang=%s", ErrTranslationMissing, value, lang)
	}

	return voice, nil
}

func dateTypesSelect(lang string) squirrel.SelectBuilder {
	return psqlbuilder.Select("dt.value", "dtt.display_name", "dt.application_deadline").
		From("date_types dt").
		LeftJoin("date_types_translations dtt ON dtt.date_type = dt.value AND dtt.lang = ?", lang)
}

func voicesSelect(lang string) squirrel.SelectBuilder {
	return psqlbuilder.Select("v.value", "v.date_type", "vt.display_name").
		From("voices v").
		LeftJoin("voices_translations vt ON vt.voice_id = v.id AND vt.lang = ?", lang)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDateType(row rowScanner) (*domain.DateType, error) {
	var dateType domain.DateType
	var displayName sql.NullString
	var applicationDeadline sql.NullTime

	if err := row.Scan(&dateType.Value, &displayName, &applicationDeadline); err != nil {
		return nil, err
	}

	dateType.DisplayName = displayName.String
	if applicationDeadline.Valid {
		dateType.ApplicationDeadline = &applicationDeadline.Time
	}

	return &dateType, nil
}

func scanVoice(row rowScanner) (*domain.Voice, bool, error) {
	var voice domain.Voice
	var displayName sql.NullString

	if err := row.Scan(&voice.Value, &voice.DateType, &displayName); err != nil {
		return nil, false, err
	}

	voice.DisplayName = displayName.String
	return &voice, displayName.Valid, nil
}

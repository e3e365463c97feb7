package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/pgerrors"
	"github.com/m04kA/SMC-RehearsalBooking/pkg/psqlbuilder"
)

const (
	constraintDateUnique  = "bookings_date_id_key"
	constraintTokenUnique = "bookings_token_key"
	constraintDateFK      = "bookings_date_id_fkey"

	// voiceSubquery голос ищется среди голосов формы бронирования типа слота
	voiceSubquery = "(SELECT id FROM voices WHERE value = ? AND date_type = ? AND position = 'booking')"
)

var bookedSlotColumns = []string{
	"b.id",
	"b.date_id",
	"b.email",
	"b.person_name",
	"b.notes",
	"v.value",
	"b.token",
	"b.lang",
	"b.created_at",
	"d.id",
	"d.from_date",
	"d.to_date",
	"d.room_id",
	"r.room_number",
	"d.date_type",
	"vt.display_name",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// UNIQUE(date_id) гарантирует не более одного бронирования на слот:
// проигравший в гонке получает ErrSlotAlreadyBooked
func (r *Repository) Create(ctx context.Context, booking *domain.Booking, dateType string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"date_id",
			"email",
			"person_name",
			"notes",
			"voice_id",
			"token",
			"lang",
		).
		Values(
			booking.SlotID,
			booking.Email,
			booking.PersonName,
			booking.Notes,
			squirrel.Expr(voiceSubquery, booking.Voice, dateType),
			booking.Token,
			booking.Lang,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		switch {
		case pgerrors.IsUniqueViolation(err, constraintDateUnique):
			return nil, ErrSlotAlreadyBooked
		case pgerrors.IsUniqueViolation(err, constraintTokenUnique):
			return nil, ErrDuplicateToken
		case pgerrors.IsForeignKeyViolation(err, constraintDateFK):
			return nil, ErrSlotNotFound
		case pgerrors.IsNotNullViolation(err):
			return nil, ErrVoiceNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByToken получает бронирование со слотом по токену
// Название голоса берётся на языке бронирования
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.BookedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookedSlotsSelect().
		LeftJoin("voices_translations vt ON vt.voice_id = v.id AND vt.lang = b.lang").
		Where(squirrel.Eq{"b.token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	booked, err := scanBookedSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan booking: %v", ErrScanRow, err)
	}

	return booked, nil
}

// ListBySlotIDs получает бронирования указанных слотов
// Используется при отмене слотов администратором
func (r *Repository) ListBySlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.BookedSlot, error) {
	if len(slotIDs) == 0 {
		return []*domain.BookedSlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookedSlotsSelect().
		LeftJoin("voices_translations vt ON vt.voice_id = v.id AND vt.lang = b.lang").
		Where(squirrel.Eq{"b.date_id": slotIDs}).
		OrderBy("d.from_date ASC", "r.room_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySlotIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookedSlots(rows)
}

// ListByDateType получает все бронирования типа для отчёта администратора
// Название голоса берётся на языке lang
func (r *Repository) ListByDateType(ctx context.Context, dateType, lang string) ([]*domain.BookedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookedSlotsSelect().
		LeftJoin("voices_translations vt ON vt.voice_id = v.id AND vt.lang = ?", lang).
		Where(squirrel.Eq{"d.date_type": dateType}).
		OrderBy("d.from_date ASC", "r.room_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookedSlots(rows)
}

// DeleteUpcomingByToken удаляет бронирование по токену, если слот начинается позже now
// Проверка времени и удаление выполняются одним запросом
// ErrBookingNotFound, если удалять нечего (нет бронирования или слот уже начался)
func (r *Repository) DeleteUpcomingByToken(ctx context.Context, token string, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"token": token}).
		Where("date_id IN (SELECT id FROM dates WHERE from_date > ?)", now).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteUpcomingByToken - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteUpcomingByToken - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteUpcomingByToken - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func bookedSlotsSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookedSlotColumns...).
		From("bookings b").
		Join("dates d ON d.id = b.date_id").
		Join("rooms r ON r.id = d.room_id").
		Join("voices v ON v.id = b.voice_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookedSlot(row rowScanner) (*domain.BookedSlot, error) {
	var booked domain.BookedSlot
	var createdAt sql.NullTime
	var voiceName sql.NullString

	err := row.Scan(
		&booked.Booking.ID,
		&booked.Booking.SlotID,
		&booked.Booking.Email,
		&booked.Booking.PersonName,
		&booked.Booking.Notes,
		&booked.Booking.Voice,
		&booked.Booking.Token,
		&booked.Booking.Lang,
		&createdAt,
		&booked.Slot.ID,
		&booked.Slot.From,
		&booked.Slot.To,
		&booked.Slot.RoomID,
		&booked.Slot.RoomNumber,
		&booked.Slot.DateType,
		&voiceName,
	)
	if err != nil {
		return nil, err
	}

	booked.Booking.CreatedAt = createdAt.Time
	booked.VoiceName = voiceName.String

	return &booked, nil
}

// scanBookedSlots сканирует результаты запроса в слайс бронирований
func scanBookedSlots(rows *sql.Rows) ([]*domain.BookedSlot, error) {
	bookings := make([]*domain.BookedSlot, 0)

	for rows.Next() {
		booked, err := scanBookedSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookedSlots - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booked)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

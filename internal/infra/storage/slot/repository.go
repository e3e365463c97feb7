package slot

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

const (
	constraintRoomFK    = "dates_room_id_fkey"
	constraintFromGtTo  = "dates_from_before_to"
	slotOrder           = "d.from_date ASC, d.date_type ASC, r.room_number ASC"
	slotWithRoomJoin    = "rooms r ON r.id = d.room_id"
	bookingLeftJoinCond = "bookings b ON b.date_id = d.id"
)

var slotColumns = []string{
	"d.id",
	"d.from_date",
	"d.to_date",
	"d.room_id",
	"r.room_number",
	"d.date_type",
}

// Repository репозиторий для работы со слотами (таблица dates)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет слот и заполняет его ID
// Пакетная вставка выполняется вызывающим кодом в одной транзакции
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("dates").
		Columns("from_date", "to_date", "room_id", "date_type").
		Values(slot.From, slot.To, slot.RoomID, slot.DateType).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID)
	if err != nil {
		switch {
		case pgerrors.IsForeignKeyViolation(err, constraintRoomFK):
			return nil, ErrRoomNotFound
		case pgerrors.IsCheckViolation(err, constraintFromGtTo):
			return nil, ErrInvalidRange
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// GetByID получает слот по ID (независимо от того, забронирован ли он)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("dates d").
		Join(slotWithRoomJoin).
		Where(squirrel.Eq{"d.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// IsBooked проверяет, есть ли у слота бронирование
func (r *Repository) IsBooked(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"date_id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsBooked - build select query: %v", ErrBuildQuery, err)
	}

	var booked bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&booked); err != nil {
		return false, fmt.Errorf("%w: IsBooked - scan: %v", ErrScanRow, err)
	}

	return booked, nil
}

// ListUnbooked получает все слоты типа без бронирования
// Порядок: from, date_type, room_number
func (r *Repository) ListUnbooked(ctx context.Context, dateType string) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("dates d").
		Join(slotWithRoomJoin).
		LeftJoin(bookingLeftJoinCond).
		Where(squirrel.Eq{"d.date_type": dateType}).
		Where("b.id IS NULL").
		OrderBy(slotOrder).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUnbooked - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUnbooked - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// LockByIDs блокирует строки слотов (FOR UPDATE) до конца транзакции
// Новое бронирование на заблокированный слот ждёт её завершения
// Возвращает ID существующих слотов
func (r *Repository) LockByIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("dates").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		Suffix("FOR UPDATE").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LockByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LockByIDs - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locked := make([]int64, 0, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: LockByIDs - scan row: %v", ErrScanRow, err)
		}
		locked = append(locked, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LockByIDs - rows error: %v", ErrScanRow, err)
	}

	return locked, nil
}

// DeleteByIDs удаляет слоты, бронирования удаляются каскадно
// Возвращает количество удалённых слотов
func (r *Repository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("dates").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	err := row.Scan(
		&slot.ID,
		&slot.From,
		&slot.To,
		&slot.RoomID,
		&slot.RoomNumber,
		&slot.DateType,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

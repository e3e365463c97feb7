package room

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms (room_number) VALUES ($1) RETURNING id")).
		WithArgs("A1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery("INSERT INTO rooms").
		WithArgs("A1").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "rooms_room_number_key"})

	room, err := repo.Create(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), room.ID)

	_, err = repo.Create(context.Background(), "A1")
	assert.ErrorIs(t, err, ErrRoomExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByNumber(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, room_number FROM rooms WHERE room_number = $1")).
		WithArgs("A1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number"}).AddRow(int64(7), "A1"))
	mock.ExpectQuery("FROM rooms").
		WithArgs("B2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number"}))

	room, err := repo.GetByNumber(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), room.ID)

	_, err = repo.GetByNumber(context.Background(), "B2")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
					WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unknown",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM rooms").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrRoomNotFound,
		},
		{
			name: "referenced by dates",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM rooms").
					WillReturnError(&pq.Error{Code: "23503", Constraint: "dates_room_id_fkey"})
			},
			wantErr: ErrRoomInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMock(t)
			tt.setup(mock)

			err := repo.Delete(context.Background(), 7)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

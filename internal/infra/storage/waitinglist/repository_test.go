package waitinglist

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func newEntry(token string) *domain.WaitingListEntry {
	return &domain.WaitingListEntry{DateType: "choir", Email: "anna@example.org", Token: token, Lang: "de"}
}

func TestRepository_Upsert_Created(t *testing.T) {
	repo, mock := newMock(t)
	entered := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO waiting_list (date_type,email,token,lang) VALUES ($1,$2,$3,$4) "+
			"ON CONFLICT (email, date_type) DO NOTHING RETURNING id, entered")).
		WithArgs("choir", "anna@example.org", "token-1", "de").
		WillReturnRows(sqlmock.NewRows([]string{"id", "entered"}).AddRow(int64(3), entered))

	entry, created, err := repo.Upsert(context.Background(), newEntry("token-1"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "token-1", entry.Token)
	assert.Equal(t, entered, entry.Entered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_ExistingKeepsToken(t *testing.T) {
	repo, mock := newMock(t)
	entered := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO waiting_list").
		WillReturnRows(sqlmock.NewRows([]string{"id", "entered"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM waiting_list WHERE date_type = $1 AND email = $2")).
		WithArgs("choir", "anna@example.org").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(int64(3), "choir", "anna@example.org", "token-1", entered, "de"))

	entry, created, err := repo.Upsert(context.Background(), newEntry("token-2"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "token-1", entry.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_UnknownDateType(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("INSERT INTO waiting_list").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "waiting_list_date_type_fkey"})

	_, _, err := repo.Upsert(context.Background(), newEntry("token-1"))
	assert.ErrorIs(t, err, ErrDateTypeNotFound)
}

func TestRepository_DeleteByToken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM waiting_list WHERE token = $1")).
		WithArgs("token-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByToken(context.Background(), "token-1")
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteByEmail_NoRowsIsFine(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM waiting_list WHERE date_type = $1 AND email = $2")).
		WithArgs("choir", "anna@example.org").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteByEmail(context.Background(), "anna@example.org", "choir"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByDateType(t *testing.T) {
	repo, mock := newMock(t)
	entered := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE date_type = $1 ORDER BY entered ASC, id ASC")).
		WithArgs("choir").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(int64(1), "choir", "a@example.org", "t1", entered, "de").
			AddRow(int64(2), "choir", "b@example.org", "t2", entered, "en"))

	entries, err := repo.ListByDateType(context.Background(), "choir")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "en", entries[1].Lang)
}

package bookings

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
)

type fakeBookings []*domain.BookedSlot

func (f fakeBookings) ListByDateType(_ context.Context, dateType, _ string) ([]*domain.BookedSlot, error) {
	var out []*domain.BookedSlot
	for _, b := range f {
		if b.Slot.DateType == dateType {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeDateTypes struct{}

func (fakeDateTypes) Get(_ context.Context, value, _ string) (*domain.DateType, error) {
	if value != domain.DateTypeChoir {
		return nil, dateTypeRepo.ErrDateTypeNotFound
	}
	return &domain.DateType{Value: value, DisplayName: "Chor"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	from := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	repo := fakeBookings{
		{
			Booking:   domain.Booking{ID: 1, Email: "a@example.com", PersonName: "Alex", Voice: "soprano", Lang: "de", CreatedAt: from.Add(-48 * time.Hour)},
			Slot:      domain.Slot{ID: 5, From: from, To: from.Add(20 * time.Minute), RoomNumber: "101", DateType: domain.DateTypeChoir},
			VoiceName: "Sopran",
		},
		{
			Booking: domain.Booking{ID: 2, Email: "b@example.com", PersonName: "Sam", Voice: "bass", Lang: "en"},
			Slot:    domain.Slot{ID: 6, From: from.Add(time.Hour), To: from.Add(80 * time.Minute), RoomNumber: "102", DateType: domain.DateTypeChoir},
		},
	}
	s := NewService(repo, fakeDateTypes{}, i18n.MustNew(), time.FixedZone("CEST", 2*60*60), nopLogger{})
	s.timeProvider = func() time.Time { return from }
	return s
}

func TestService_ListBookings(t *testing.T) {
	s := newTestService()

	resp, err := s.ListBookings(context.Background(), domain.DateTypeChoir, "de")

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "Sopran", resp.Bookings[0].VoiceName)
	assert.Equal(t, int64(6), resp.Bookings[1].SlotID)

	_, err = s.ListBookings(context.Background(), "brass", "de")
	assert.ErrorIs(t, err, ErrDateTypeNotFound)
}

func TestService_ExportBookings(t *testing.T) {
	s := newTestService()

	resp, err := s.ExportBookings(context.Background(), domain.DateTypeChoir, "de")
	require.NoError(t, err)
	assert.Equal(t, "bookings-choir-2024-05-02.xlsx", resp.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(resp.Content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Chor"}, f.GetSheetList())

	rows, err := f.GetRows("Chor")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Tag", rows[0][0])
	assert.Equal(t, []string{"02.05.2024", "10:00", "10:20", "101", "Alex", "a@example.com", "Sopran", "", "30.04.2024 10:00"}, rows[1])
	assert.Equal(t, "bass", rows[2][6], "falls back to the voice value without translation")
}

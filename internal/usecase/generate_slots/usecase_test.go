package generate_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	roomRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/room"
)

type fakeRooms struct {
	rooms map[string]*domain.Room
	err   error
}

func (f *fakeRooms) GetByNumber(_ context.Context, roomNumber string) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	room, ok := f.rooms[roomNumber]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeDateTypes map[string]*domain.DateType

func (f fakeDateTypes) Get(_ context.Context, value, _ string) (*domain.DateType, error) {
	dt, ok := f[value]
	if !ok {
		return nil, dateTypeRepo.ErrDateTypeNotFound
	}
	return dt, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(rooms *fakeRooms) *UseCase {
	return NewUseCase(rooms, fakeDateTypes{
		domain.DateTypeChoir: {Value: domain.DateTypeChoir},
	}, nopLogger{})
}

func defaultRooms() *fakeRooms {
	return &fakeRooms{rooms: map[string]*domain.Room{"101": {ID: 1, RoomNumber: "101"}}}
}

func TestBuildCandidates(t *testing.T) {
	from := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	candidates, err := BuildCandidates(from, to, 20, "101", domain.DateTypeChoir)

	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, from, candidates[0].From)
	assert.Equal(t, to, candidates[2].To)
	for i, c := range candidates {
		assert.Nil(t, c.ID)
		assert.True(t, c.IsValid())
		assert.Equal(t, 20*time.Minute, c.To.Sub(c.From))
		assert.Equal(t, "101", c.RoomNumber)
		if i > 0 {
			assert.Equal(t, candidates[i-1].To, c.From, "candidates must be contiguous")
		}
	}
}

func TestBuildCandidates_Errors(t *testing.T) {
	from := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		to       time.Time
		interval int
		wantErr  error
	}{
		{name: "zero interval", to: from.Add(time.Hour), interval: 0, wantErr: ErrInvalidInterval},
		{name: "negative interval", to: from.Add(time.Hour), interval: -5, wantErr: ErrInvalidInterval},
		{name: "equal bounds", to: from, interval: 10, wantErr: ErrWrongDateOrder},
		{name: "reversed bounds", to: from.Add(-time.Hour), interval: 10, wantErr: ErrWrongDateOrder},
		{name: "not divisible", to: from.Add(50 * time.Minute), interval: 20, wantErr: ErrIntervalNotEven},
		{name: "one over the limit", to: from.Add(1001 * time.Minute), interval: 1, wantErr: ErrTooManyDates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCandidates(from, tt.to, tt.interval, "101", domain.DateTypeChoir)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestBuildCandidates_ExactLimit(t *testing.T) {
	from := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	candidates, err := BuildCandidates(from, from.Add(domain.MaxGeneratedSlots*time.Minute), 1, "101", domain.DateTypeChoir)

	require.NoError(t, err)
	assert.Len(t, candidates, domain.MaxGeneratedSlots)
}

func TestUseCase_Execute(t *testing.T) {
	from := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(defaultRooms())

	resp, err := uc.Execute(context.Background(), &Request{
		From:            from,
		To:              from.Add(time.Hour),
		IntervalMinutes: 20,
		RoomNumber:      "101",
		DateType:        domain.DateTypeChoir,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Candidates, 3)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	from := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	base := Request{From: from, To: from.Add(time.Hour), IntervalMinutes: 20, RoomNumber: "101", DateType: domain.DateTypeChoir}

	unknownRoom := base
	unknownRoom.RoomNumber = "999"
	noDateType := base
	noDateType.DateType = ""
	unknownDateType := base
	unknownDateType.DateType = "brass"
	badRange := base
	badRange.To = from

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "unknown room", req: unknownRoom, wantErr: ErrRoomNotFound},
		{name: "no date type", req: noDateType, wantErr: ErrDateTypeNotSelected},
		{name: "unknown date type", req: unknownDateType, wantErr: ErrDateTypeNotSelected},
		{name: "bad range", req: badRange, wantErr: ErrWrongDateOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(defaultRooms())
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeRooms{err: errors.New("connection refused")})

	_, err := uc.Execute(context.Background(), &Request{RoomNumber: "101", DateType: domain.DateTypeChoir, IntervalMinutes: 10})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, domain.KindOf(err))
}

package confirm_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	roomRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/room"
	slotRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/slot"
)

// fakeStore хранит слоты и откатывает их при ошибке в транзакции
type fakeStore struct {
	slots  []*domain.Slot
	nextID int64
	rooms  map[string]*domain.Room
	failAt int // номер вызова Create, на котором вернуть ошибку FK (0 = никогда)
	calls  int
}

func (s *fakeStore) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	s.calls++
	if s.failAt != 0 && s.calls == s.failAt {
		return nil, slotRepo.ErrRoomNotFound
	}
	s.nextID++
	stored := *slot
	stored.ID = s.nextID
	s.slots = append(s.slots, &stored)
	return &stored, nil
}

func (s *fakeStore) GetByNumber(_ context.Context, roomNumber string) (*domain.Room, error) {
	room, ok := s.rooms[roomNumber]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

func (s *fakeStore) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := len(s.slots)
	if err := fn(ctx); err != nil {
		s.slots = s.slots[:snapshot]
		return err
	}
	return nil
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

func newTestUseCase(store *fakeStore) *UseCase {
	return NewUseCase(store, store, fakeDateTypes{
		domain.DateTypeChoir: {Value: domain.DateTypeChoir},
	}, store, nopLogger{})
}

func newStore() *fakeStore {
	return &fakeStore{rooms: map[string]*domain.Room{"101": {ID: 7, RoomNumber: "101"}}}
}

func candidates(n int) []*domain.SlotCandidate {
	from := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	out := make([]*domain.SlotCandidate, 0, n)
	for i := 0; i < n; i++ {
		start := from.Add(time.Duration(i) * 20 * time.Minute)
		out = append(out, &domain.SlotCandidate{
			From:       start,
			To:         start.Add(20 * time.Minute),
			RoomNumber: "101",
			DateType:   domain.DateTypeChoir,
		})
	}
	return out
}

func TestSelectCandidates(t *testing.T) {
	c := candidates(3)

	assert.Equal(t, []*domain.SlotCandidate{c[0], c[2]}, SelectCandidates(c, []bool{true, false, true}))
	assert.Equal(t, []*domain.SlotCandidate{c[1]}, SelectCandidates(c, []bool{false, true}))
	assert.Equal(t, []*domain.SlotCandidate{c[0]}, SelectCandidates(c[:1], []bool{true, true, true}))
	assert.Empty(t, SelectCandidates(c, nil))
}

func TestUseCase_Execute(t *testing.T) {
	store := newStore()
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Candidates: candidates(3),
		Selected:   []bool{true, false, true},
	})

	require.NoError(t, err)
	require.Len(t, resp.Created, 2)
	assert.Len(t, store.slots, 2)
	for _, s := range resp.Created {
		assert.NotZero(t, s.ID)
		assert.Equal(t, int64(7), s.RoomID)
	}
}

func TestUseCase_Execute_InvalidBufferedState(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.SlotCandidate)
	}{
		{name: "reversed interval", mutate: func(c *domain.SlotCandidate) { c.From, c.To = c.To, c.From }},
		{name: "empty interval", mutate: func(c *domain.SlotCandidate) { c.To = c.From }},
		{name: "already persisted", mutate: func(c *domain.SlotCandidate) { c.ID = int64Ptr(5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			uc := newTestUseCase(store)
			c := candidates(3)
			tt.mutate(c[2])

			_, err := uc.Execute(context.Background(), &Request{Candidates: c, Selected: []bool{true, true, true}})

			assert.ErrorIs(t, err, ErrInvalidBufferedState)
			assert.Equal(t, domain.KindIntegrity, domain.KindOf(err))
			assert.Empty(t, store.slots)
		})
	}
}

func TestUseCase_Execute_UnselectedInvalidCandidateIgnored(t *testing.T) {
	store := newStore()
	uc := newTestUseCase(store)
	c := candidates(2)
	c[1].ID = int64Ptr(1)

	resp, err := uc.Execute(context.Background(), &Request{Candidates: c, Selected: []bool{true, false}})

	require.NoError(t, err)
	assert.Len(t, resp.Created, 1)
}

func TestUseCase_Execute_AllOrNothing(t *testing.T) {
	store := newStore()
	store.failAt = 3
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{Candidates: candidates(4), Selected: []bool{true, true, true, true}})

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Empty(t, store.slots)
}

func TestUseCase_Execute_UnknownRoomAndDateType(t *testing.T) {
	store := newStore()
	uc := newTestUseCase(store)

	c := candidates(1)
	c[0].RoomNumber = "999"
	_, err := uc.Execute(context.Background(), &Request{Candidates: c, Selected: []bool{true}})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	c = candidates(1)
	c[0].DateType = "brass"
	_, err = uc.Execute(context.Background(), &Request{Candidates: c, Selected: []bool{true}})
	assert.ErrorIs(t, err, ErrDateTypeNotSelected)

	assert.Empty(t, store.slots)
}

func TestUseCase_Execute_BatchLimit(t *testing.T) {
	store := newStore()
	uc := newTestUseCase(store)

	n := domain.MaxGeneratedSlots + 1
	selected := make([]bool, n)
	for i := range selected {
		selected[i] = true
	}

	_, err := uc.Execute(context.Background(), &Request{Candidates: candidates(n), Selected: selected})

	assert.ErrorIs(t, err, ErrInvalidBufferedState)
	assert.Zero(t, store.calls)

	resp, err := uc.Execute(context.Background(), &Request{Candidates: candidates(n - 1), Selected: selected[:n-1]})
	require.NoError(t, err)
	assert.Len(t, resp.Created, domain.MaxGeneratedSlots)
}

func int64Ptr(v int64) *int64 { return &v }

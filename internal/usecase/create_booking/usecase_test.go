package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/booking"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	"github.com/m04kA/SMC-RehearsalBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-RehearsalBooking/internal/usecase/get_available_slots"
)

type fakeAvailability struct {
	resp *get_available_slots.GetResponse
	err  error
}

func (f *fakeAvailability) GetAvailable(_ context.Context, req *get_available_slots.GetRequest) (*get_available_slots.GetResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.resp.Slot.ID != req.SlotID {
		return nil, domain.ErrDateGone
	}
	return f.resp, nil
}

// fakeStore бронирования и лист ожидания с откатом при ошибке в транзакции
type fakeStore struct {
	bookings     []*domain.Booking
	waitingList  map[string]bool // email -> subscribed
	createErr    error
	deleteErr    error
	inTx         bool
	deletedEmail string
}

func (s *fakeStore) Create(_ context.Context, b *domain.Booking, _ string) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	for _, existing := range s.bookings {
		if existing.SlotID == b.SlotID {
			return nil, bookingRepo.ErrSlotAlreadyBooked
		}
	}
	stored := *b
	stored.ID = int64(len(s.bookings) + 1)
	s.bookings = append(s.bookings, &stored)
	return &stored, nil
}

func (s *fakeStore) DeleteByEmail(_ context.Context, email, _ string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.waitingList, email)
	s.deletedEmail = email
	return nil
}

func (s *fakeStore) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := len(s.bookings)
	s.inTx = true
	defer func() { s.inTx = false }()
	if err := fn(ctx); err != nil {
		s.bookings = s.bookings[:snapshot]
		return err
	}
	return nil
}

type fakeVoices struct{}

func (fakeVoices) GetVoice(_ context.Context, dateType, value, lang string) (*domain.Voice, error) {
	if dateType != domain.DateTypeChoir {
		return nil, dateTypeRepo.ErrVoiceNotFound
	}
	switch value {
	case "soprano":
		return &domain.Voice{Value: value, DateType: dateType, DisplayName: "Sopran"}, nil
	case "alto":
		if lang == domain.LangEnglish {
			return nil, dateTypeRepo.ErrTranslationMissing
		}
		return &domain.Voice{Value: value, DateType: dateType, DisplayName: "Alt"}, nil
	}
	return nil, dateTypeRepo.ErrVoiceNotFound
}

type recordingMailer struct {
	sent []mailer.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type countingMetrics struct {
	created    int
	mailFailed int
}

func (m *countingMetrics) BookingCreated(string) { m.created++ }
func (m *countingMetrics) MailFailed(string)     { m.mailFailed++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testZone = time.FixedZone("CEST", 2*60*60)

type fixture struct {
	uc      *UseCase
	store   *fakeStore
	mailer  *recordingMailer
	metrics *countingMetrics
	avail   *fakeAvailability
}

func newFixture(entry *domain.WaitingListEntry) *fixture {
	from := time.Date(2024, 5, 2, 8, 20, 0, 0, time.UTC)
	f := &fixture{
		store:   &fakeStore{waitingList: map[string]bool{"a@example.com": true}},
		mailer:  &recordingMailer{},
		metrics: &countingMetrics{},
		avail: &fakeAvailability{resp: &get_available_slots.GetResponse{
			Slot: &domain.Slot{
				ID:         2,
				From:       from,
				To:         from.Add(20 * time.Minute),
				RoomNumber: "101",
				DateType:   domain.DateTypeChoir,
			},
			DateType: &domain.DateType{Value: domain.DateTypeChoir},
			Entry:    entry,
		}},
	}
	f.uc = NewUseCase(f.avail, f.store, fakeVoices{}, f.store, f.store, f.mailer, f.metrics,
		testZone, "https://example.org", nopLogger{})
	f.uc.newToken = func() string { return "booking-token" }
	return f
}

func validRequest() *Request {
	return &Request{
		SlotID:     2,
		Email:      "a@example.com",
		PersonName: "Alex Doe",
		Notes:      "first time",
		Voice:      "soprano",
		Lang:       domain.LangGerman,
	}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.MailSent)
	assert.Equal(t, "booking-token", resp.Booking.Token)
	assert.Equal(t, "Sopran", resp.VoiceName)
	require.Len(t, f.store.bookings, 1)
	assert.Equal(t, "a@example.com", f.store.deletedEmail)
	assert.False(t, f.store.waitingList["a@example.com"])
	assert.Equal(t, 1, f.metrics.created)

	require.Len(t, f.mailer.sent, 1)
	msg := f.mailer.sent[0]
	assert.Equal(t, mailer.TemplateBooking, msg.Template)
	assert.Equal(t, mailer.SubjectBooking, msg.SubjectKey)
	assert.Equal(t, "02.05.2024", msg.Data["day"])
	assert.Equal(t, "10:20", msg.Data["from"])
	assert.Equal(t, "10:40", msg.Data["to"])
	assert.Equal(t, "101", msg.Data["room_number"])
	assert.Equal(t, "Sopran", msg.Data["voice"])
	assert.Equal(t, "https://example.org/booking/delete/booking-token", msg.Data["link"])
}

func TestUseCase_Execute_SecondBookingConflicts(t *testing.T) {
	f := newFixture(nil)
	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.Email = "b@example.com"
	_, err = f.uc.Execute(context.Background(), second)

	assert.ErrorIs(t, err, ErrDateTaken)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Len(t, f.store.bookings, 1)
}

func TestUseCase_Execute_DateGone(t *testing.T) {
	f := newFixture(nil)
	req := validRequest()
	req.SlotID = 99

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateGone)
	assert.Empty(t, f.store.bookings)
	assert.Empty(t, f.mailer.sent)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "invalid email", mutate: func(r *Request) { r.Email = "nope" }, wantErr: ErrInvalidEmail},
		{name: "empty name", mutate: func(r *Request) { r.PersonName = "   " }, wantErr: ErrInvalidPersonName},
		{name: "no voice", mutate: func(r *Request) { r.Voice = "" }, wantErr: ErrVoiceNotSelected},
		{name: "voice of another date type", mutate: func(r *Request) { r.Voice = "violin" }, wantErr: ErrVoiceMismatch},
		{name: "voice without translation", mutate: func(r *Request) {
			r.Voice = "alto"
			r.Lang = domain.LangEnglish
		}, wantErr: ErrVoiceTranslationMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(nil)
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.store.bookings)
		})
	}
}

func TestUseCase_Execute_WaitingListTokenEmailMismatch(t *testing.T) {
	f := newFixture(&domain.WaitingListEntry{Email: "other@example.com", DateType: domain.DateTypeChoir})

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDateGone)
	assert.Empty(t, f.store.bookings)
}

func TestUseCase_Execute_WaitingListTokenEmailMatch(t *testing.T) {
	f := newFixture(&domain.WaitingListEntry{Email: "a@example.com", DateType: domain.DateTypeChoir})

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, f.store.bookings, 1)
}

func TestUseCase_Execute_MailFailureKeepsBooking(t *testing.T) {
	f := newFixture(nil)
	f.mailer.err = errors.New("smtp: 421 service not available")

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.MailSent)
	assert.Len(t, f.store.bookings, 1)
	assert.Equal(t, 1, f.metrics.mailFailed)
}

func TestUseCase_Execute_RollbackOnWaitingListFailure(t *testing.T) {
	f := newFixture(nil)
	f.store.deleteErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.store.bookings)
	assert.Empty(t, f.mailer.sent)
	assert.Zero(t, f.metrics.created)
}
